package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"userboard/internal/app"
	"userboard/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LinkIDRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	LinkedID string `json:"linked_id" binding:"required"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	userID, err := h.userService.Register(c.Request.Context(), app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrEmailExists):
			response.Error(c, http.StatusBadRequest, response.CodeEmailExists, "Email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "register failed")
		}
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{UserID: userID})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	userID, err := h.userService.Login(c.Request.Context(), app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidCredentials, "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "login failed")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", UserID: userID})
}

func (h *UserHandler) LinkID(c *gin.Context) {
	var req LinkIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	err := h.userService.LinkID(c.Request.Context(), req.UserID, req.LinkedID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "link id failed")
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "ID linked successfully"})
}

func (h *UserHandler) Details(c *gin.Context) {
	details, err := h.userService.Details(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch user details failed")
		}
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *UserHandler) Delete(c *gin.Context) {
	err := h.userService.Delete(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidID):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete user failed")
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User and related data deleted successfully"})
}
