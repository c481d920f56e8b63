package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"userboard/internal/app"
	"userboard/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type CreatePostRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CreatePostResponse struct {
	PostID string `json:"post_id"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	postID, err := h.postService.Create(c.Request.Context(), app.CreatePostInput{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create post failed")
		}
		return
	}

	c.JSON(http.StatusOK, CreatePostResponse{PostID: postID})
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, response.CodePostNotFound, "Post not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch post failed")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListByUser(c *gin.Context) {
	posts, err := h.postService.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list posts failed")
		}
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	err := h.postService.Update(c.Request.Context(), c.Param("post_id"), req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, response.CodePostNotFound, "Post not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "update post failed")
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Post updated successfully"})
}

func (h *PostHandler) Delete(c *gin.Context) {
	err := h.postService.Delete(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, response.CodePostNotFound, "Post not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete post failed")
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}
