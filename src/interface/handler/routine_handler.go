package handler

import (
	"net/http"

	"next-app/src/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RoutineHandler handles HTTP requests for daily routine operations
type RoutineHandler struct {
	routineUsecase usecase.RoutineUsecase
	logger         *logrus.Logger
}

// NewRoutineHandler creates a new routine handler
func NewRoutineHandler(routineUsecase usecase.RoutineUsecase, logger *logrus.Logger) *RoutineHandler {
	return &RoutineHandler{
		routineUsecase: routineUsecase,
		logger:         logger,
	}
}

// ListRoutines returns all routines; listing triggers the daily reset check
func (h *RoutineHandler) ListRoutines(c *gin.Context) {
	items, err := h.routineUsecase.ListRoutines(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("例行任务列表获取失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, RoutineListResponseDTO{Success: true, Items: items})
}

// AddRoutine adds a routine; empty or whitespace-only text is rejected
func (h *RoutineHandler) AddRoutine(c *gin.Context) {
	var req AddRoutineRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("添加例行任务的请求体解析失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	item, err := h.routineUsecase.AddRoutine(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("routine_id", item.ID).Info("例行任务已添加")
	c.JSON(http.StatusOK, RoutineItemResponseDTO{Success: true, Item: item})
}

// ToggleRoutine flips a routine's completed_today flag
func (h *RoutineHandler) ToggleRoutine(c *gin.Context) {
	id := c.Param("id")

	if err := h.routineUsecase.ToggleRoutine(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("routine_id", id).Error("例行任务状态切换失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}

// RemoveRoutine deletes a routine by id
func (h *RoutineHandler) RemoveRoutine(c *gin.Context) {
	id := c.Param("id")

	if err := h.routineUsecase.RemoveRoutine(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("routine_id", id).Error("例行任务删除失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("routine_id", id).Info("例行任务已删除")
	c.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}
