package handler

import (
	"net/http"

	"exercise-tracker/internal/services"
	"exercise-tracker/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
	render  httpdto.Renderer
}

func NewUserHandler(service *services.UserService, render httpdto.Renderer) *UserHandler {
	return &UserHandler{service: service, render: render}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req httpdto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.render.User(u))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.render.UserSlice(users))
}
