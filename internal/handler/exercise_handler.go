package handler

import (
	"net/http"

	"exercise-tracker/internal/services"
	"exercise-tracker/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	service *services.ExerciseService
	render  httpdto.Renderer
}

func NewExerciseHandler(service *services.ExerciseService, render httpdto.Renderer) *ExerciseHandler {
	return &ExerciseHandler{service: service, render: render}
}

func (h *ExerciseHandler) Log(c *gin.Context) {
	var req httpdto.LogExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	logged, err := h.service.LogExercise(c.Request.Context(), c.Param("id"), services.LogExerciseInput{
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.render.LoggedExercise(logged))
}

func (h *ExerciseHandler) FetchLog(c *gin.Context) {
	var req httpdto.FetchLogRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	log, err := h.service.FetchLog(c.Request.Context(), c.Param("id"), services.LogQuery{
		From:  req.From,
		To:    req.To,
		Limit: req.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.render.UserLog(log))
}
