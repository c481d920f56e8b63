package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"userboard/internal/app"
	"userboard/internal/repository"
	"userboard/internal/transport/http/handler"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewMemoryUserRepository()
	postRepo := repository.NewMemoryPostRepository()
	userService := app.NewUserService(userRepo, postRepo)
	postService := app.NewPostService(postRepo, userRepo)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	router := gin.New()
	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)
	router.POST("/link-id", userHandler.LinkID)
	router.GET("/user-details/:user_id", userHandler.Details)
	router.DELETE("/delete-user/:user_id", userHandler.Delete)
	router.POST("/posts/", postHandler.Create)
	router.GET("/users/:user_id/posts/", postHandler.ListByUser)
	router.GET("/posts/:post_id", postHandler.Get)
	router.PUT("/posts/:post_id", postHandler.Update)
	router.DELETE("/posts/:post_id", postHandler.Delete)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	recorder := doRequest(t, router, http.MethodPost, "/register", gin.H{
		"username": "alice",
		"email":    email,
		"password": "secret-password",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	userID, ok := body["user_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, userID)
	return userID
}

func createPost(t *testing.T, router *gin.Engine, userID, title, content string) string {
	t.Helper()
	recorder := doRequest(t, router, http.MethodPost, "/posts/", gin.H{
		"user_id": userID,
		"title":   title,
		"content": content,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	postID, ok := body["post_id"].(string)
	require.True(t, ok)
	return postID
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupRouter()

	userID := registerUser(t, router, "alice@example.com")
	_, err := primitive.ObjectIDFromHex(userID)
	assert.NoError(t, err)
}

func TestRegisterConflict(t *testing.T) {
	router := setupRouter()

	registerUser(t, router, "alice@example.com")

	recorder := doRequest(t, router, http.MethodPost, "/register", gin.H{
		"username": "another-alice",
		"email":    "alice@example.com",
		"password": "other-password",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Email already registered", body["message"])
}

func TestRegisterMissingFields(t *testing.T) {
	router := setupRouter()

	recorder := doRequest(t, router, http.MethodPost, "/register", gin.H{
		"username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router := setupRouter()

	userID := registerUser(t, router, "alice@example.com")

	recorder := doRequest(t, router, http.MethodPost, "/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, userID, body["user_id"])
}

func TestLoginBadCredentials(t *testing.T) {
	router := setupRouter()

	registerUser(t, router, "alice@example.com")

	recorder := doRequest(t, router, http.MethodPost, "/login", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLinkIDEndpoint(t *testing.T) {
	router := setupRouter()

	userID := registerUser(t, router, "alice@example.com")

	recorder := doRequest(t, router, http.MethodPost, "/link-id", gin.H{
		"user_id":   userID,
		"linked_id": "ext-42",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ID linked successfully", decodeBody(t, recorder)["message"])

	details := doRequest(t, router, http.MethodGet, "/user-details/"+userID, nil)
	require.Equal(t, http.StatusOK, details.Code)
	userInfo := decodeBody(t, details)["user_info"].(map[string]any)
	assert.Equal(t, "ext-42", userInfo["linked_id"])
}

func TestLinkIDMissingUser(t *testing.T) {
	router := setupRouter()

	recorder := doRequest(t, router, http.MethodPost, "/link-id", gin.H{
		"user_id":   primitive.NewObjectID().Hex(),
		"linked_id": "ext-42",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUserDetailsEndpoint(t *testing.T) {
	router := setupRouter()

	userID := registerUser(t, router, "alice@example.com")
	createPost(t, router, userID, "first", "content")

	recorder := doRequest(t, router, http.MethodGet, "/user-details/"+userID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	userInfo := body["user_info"].(map[string]any)
	assert.Equal(t, userID, userInfo["id"])
	assert.Equal(t, "alice@example.com", userInfo["email"])
	assert.NotContains(t, userInfo, "password")

	posts := body["posts"].([]any)
	require.Len(t, posts, 1)
	assert.Equal(t, userID, posts[0].(map[string]any)["user_id"])
}

func TestUserDetailsMalformedID(t *testing.T) {
	router := setupRouter()

	recorder := doRequest(t, router, http.MethodGet, "/user-details/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteUserEndpointCascades(t *testing.T) {
	router := setupRouter()

	userID := registerUser(t, router, "alice@example.com")
	postID := createPost(t, router, userID, "first", "content")

	recorder := doRequest(t, router, http.MethodDelete, "/delete-user/"+userID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "User and related data deleted successfully", decodeBody(t, recorder)["message"])

	details := doRequest(t, router, http.MethodGet, "/user-details/"+userID, nil)
	assert.Equal(t, http.StatusNotFound, details.Code)

	post := doRequest(t, router, http.MethodGet, "/posts/"+postID, nil)
	assert.Equal(t, http.StatusNotFound, post.Code)
}

func TestCreatePostUnknownUser(t *testing.T) {
	router := setupRouter()

	recorder := doRequest(t, router, http.MethodPost, "/posts/", gin.H{
		"user_id": primitive.NewObjectID().Hex(),
		"title":   "title",
		"content": "content",
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPostLifecycle(t *testing.T) {
	router := setupRouter()

	userID := registerUser(t, router, "alice@example.com")
	postID := createPost(t, router, userID, "first post", "hello world")

	recorder := doRequest(t, router, http.MethodGet, "/posts/"+postID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "first post", body["title"])
	assert.Equal(t, "hello world", body["content"])
	assert.Equal(t, userID, body["user_id"])

	update := doRequest(t, router, http.MethodPut, "/posts/"+postID, gin.H{
		"title":   "updated",
		"content": "new content",
	})
	require.Equal(t, http.StatusOK, update.Code)
	assert.Equal(t, "Post updated successfully", decodeBody(t, update)["message"])

	recorder = doRequest(t, router, http.MethodGet, "/posts/"+postID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body = decodeBody(t, recorder)
	assert.Equal(t, "updated", body["title"])
	assert.Equal(t, userID, body["user_id"])

	listed := doRequest(t, router, http.MethodGet, "/users/"+userID+"/posts/", nil)
	require.Equal(t, http.StatusOK, listed.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &posts))
	require.Len(t, posts, 1)

	deleted := doRequest(t, router, http.MethodDelete, "/posts/"+postID, nil)
	require.Equal(t, http.StatusOK, deleted.Code)
	assert.Equal(t, "Post deleted successfully", decodeBody(t, deleted)["message"])

	recorder = doRequest(t, router, http.MethodGet, "/posts/"+postID, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetPostMalformedID(t *testing.T) {
	router := setupRouter()

	recorder := doRequest(t, router, http.MethodGet, "/posts/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListPostsUnknownUser(t *testing.T) {
	router := setupRouter()

	recorder := doRequest(t, router, http.MethodGet, "/users/"+primitive.NewObjectID().Hex()+"/posts/", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
