package handler

import (
	"errors"
	"net/http"

	"next-app/src/usecase"
	"next-app/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TodoHandler handles HTTP requests for todo operations
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
	validator   *validator.CustomValidator
	logger      *logrus.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoUsecase usecase.TodoUsecase, cv *validator.CustomValidator, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
		validator:   cv,
		logger:      logger,
	}
}

// ListTodos returns all todos, optionally filtered by tab
func (h *TodoHandler) ListTodos(c *gin.Context) {
	tab := c.Query("tab")

	items, err := h.todoUsecase.ListTodos(c.Request.Context(), tab)
	if err != nil {
		h.logger.WithError(err).Error("待办列表获取失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TodoListResponseDTO{Items: items})
}

// CreateTodo creates a new todo
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req CreateTodoRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("创建待办的请求体解析失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}
	if err := h.validator.Validate(req); err != nil {
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	item, err := h.todoUsecase.CreateTodo(c.Request.Context(), usecase.CreateTodoRequest{
		Text:     req.Text,
		Content:  req.Content,
		Tab:      req.Tab,
		Quadrant: req.Quadrant,
		Tags:     req.Tags,
		Assignee: req.Assignee,
		DueDate:  req.DueDate,
		Progress: req.Progress,
	})
	if err != nil {
		h.logger.WithError(err).Error("待办创建失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("todo_id", item.ID).Info("待办已创建")
	c.JSON(http.StatusOK, TodoItemResponseDTO{Success: true, Item: item})
}

// UpdateTodo applies a partial update; unknown ids get 404
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id := c.Param("id")

	var req UpdateTodoRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).WithField("todo_id", id).Warn("更新待办的请求体解析失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}
	if err := h.validator.Validate(req); err != nil {
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	item, err := h.todoUsecase.UpdateTodo(c.Request.Context(), id, usecase.UpdateTodoRequest{
		Text:      req.Text,
		Content:   req.Content,
		Tab:       req.Tab,
		Quadrant:  req.Quadrant,
		Tags:      req.Tags,
		Assignee:  req.Assignee,
		DueDate:   req.DueDate,
		Progress:  req.Progress,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponseDTO{Error: "Not found"})
			return
		}
		h.logger.WithError(err).WithField("todo_id", id).Error("待办更新失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("todo_id", id).Info("待办已更新")
	c.JSON(http.StatusOK, TodoItemResponseDTO{Success: true, Item: item})
}

// DeleteTodo soft-deletes a todo (moves it to the recycle bin)
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")

	if err := h.todoUsecase.SoftDeleteTodo(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("todo_id", id).Error("待办删除失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("todo_id", id).Info("待办已移入回收站")
	c.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}

// RestoreTodo restores a soft-deleted todo
func (h *TodoHandler) RestoreTodo(c *gin.Context) {
	id := c.Param("id")

	if err := h.todoUsecase.RestoreTodo(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("todo_id", id).Error("待办恢复失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("todo_id", id).Info("待办已恢复")
	c.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}

// PermanentDeleteTodo removes a todo from the collection for good
func (h *TodoHandler) PermanentDeleteTodo(c *gin.Context) {
	id := c.Param("id")

	if err := h.todoUsecase.PermanentDeleteTodo(c.Request.Context(), id); err != nil {
		h.logger.WithError(err).WithField("todo_id", id).Error("待办永久删除失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("todo_id", id).Info("待办已永久删除")
	c.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}

// BatchUpdateTodos applies tab/quadrant changes from drag-and-drop reordering
func (h *TodoHandler) BatchUpdateTodos(c *gin.Context) {
	var req BatchUpdateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("批量更新的请求体解析失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	updates := make([]usecase.BatchTodoUpdate, len(req.Updates))
	for i, u := range req.Updates {
		updates[i] = usecase.BatchTodoUpdate{
			ID:       u.ID,
			Tab:      u.Tab,
			Quadrant: u.Quadrant,
		}
	}

	if err := h.todoUsecase.BatchUpdateTodos(c.Request.Context(), updates); err != nil {
		h.logger.WithError(err).Error("待办批量更新失败")
		c.JSON(http.StatusOK, ErrorResponseDTO{Error: err.Error()})
		return
	}

	h.logger.WithField("count", len(updates)).Info("待办批量更新完成")
	c.JSON(http.StatusOK, SuccessResponseDTO{Success: true})
}
