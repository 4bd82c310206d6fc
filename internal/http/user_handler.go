package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profile-votes/internal/service"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
	}
}

type createUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateUser maneja POST /users.
//
// @Summary Create a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body createUserRequest true "User data"
// @Success 201 {object} domain.User
// @Failure 400 {object} errorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	user, err := h.userServ.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.logger, err, "could not create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers maneja GET /users.
//
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500 {object} errorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userServ.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "could not list users")
		return
	}
	c.JSON(http.StatusOK, users)
}
