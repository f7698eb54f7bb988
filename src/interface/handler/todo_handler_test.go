package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"next-app/src/domain"
	"next-app/src/interface/handler"
	"next-app/src/usecase"
	"next-app/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTodoUsecase 是 usecase.TodoUsecase 的 mock 实现
type MockTodoUsecase struct {
	mock.Mock
}

func (m *MockTodoUsecase) ListTodos(ctx context.Context, tab string) ([]domain.Todo, error) {
	args := m.Called(ctx, tab)
	return args.Get(0).([]domain.Todo), args.Error(1)
}

func (m *MockTodoUsecase) CreateTodo(ctx context.Context, req usecase.CreateTodoRequest) (*domain.Todo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoUsecase) UpdateTodo(ctx context.Context, id string, req usecase.UpdateTodoRequest) (*domain.Todo, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *MockTodoUsecase) SoftDeleteTodo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoUsecase) RestoreTodo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoUsecase) PermanentDeleteTodo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoUsecase) BatchUpdateTodos(ctx context.Context, updates []usecase.BatchTodoUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func setupTodoRouter(mockUsecase *MockTodoUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	todoHandler := handler.NewTodoHandler(mockUsecase, validator.NewCustomValidator(), logrus.New())

	todos := r.Group("/api/todos")
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.PUT("/batch", todoHandler.BatchUpdateTodos)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
		todos.POST("/:id/restore", todoHandler.RestoreTodo)
		todos.DELETE("/:id/permanent", todoHandler.PermanentDeleteTodo)
	}

	return r
}

func TestTodoHandler_ListTodos(t *testing.T) {
	mockUsecase := new(MockTodoUsecase)
	mockUsecase.On("ListTodos", mock.Anything, "week").Return([]domain.Todo{
		{ID: "abcd1234", Text: "准备周会", Tab: domain.TabWeek},
	}, nil)

	r := setupTodoRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/todos?tab=week", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []domain.Todo `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "abcd1234", resp.Items[0].ID)

	mockUsecase.AssertExpectations(t)
}

func TestTodoHandler_CreateTodo(t *testing.T) {
	mockUsecase := new(MockTodoUsecase)
	mockUsecase.On("CreateTodo", mock.Anything, mock.AnythingOfType("usecase.CreateTodoRequest")).Return(&domain.Todo{
		ID:       "abcd1234",
		Text:     "写周报",
		Tab:      domain.TabToday,
		Quadrant: domain.QuadrantImportantNotUrgent,
	}, nil)

	r := setupTodoRouter(mockUsecase)

	body, _ := json.Marshal(map[string]any{"text": "写周报"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	item := resp["item"].(map[string]any)
	assert.Equal(t, "abcd1234", item["id"])

	mockUsecase.AssertExpectations(t)
}

func TestTodoHandler_CreateTodo_InvalidProgress(t *testing.T) {
	mockUsecase := new(MockTodoUsecase)
	r := setupTodoRouter(mockUsecase)

	body, _ := json.Marshal(map[string]any{"text": "越界", "progress": 150})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// 校验失败也返回 200，由 body 里的 success 标记
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])

	mockUsecase.AssertNotCalled(t, "CreateTodo", mock.Anything, mock.Anything)
}

func TestTodoHandler_UpdateTodo_NotFound(t *testing.T) {
	mockUsecase := new(MockTodoUsecase)
	mockUsecase.On("UpdateTodo", mock.Anything, "missing1", mock.AnythingOfType("usecase.UpdateTodoRequest")).
		Return(nil, usecase.ErrTodoNotFound)

	r := setupTodoRouter(mockUsecase)

	body, _ := json.Marshal(map[string]any{"progress": 50})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/todos/missing1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Not found", resp["error"])

	mockUsecase.AssertExpectations(t)
}

func TestTodoHandler_UpdateTodo(t *testing.T) {
	mockUsecase := new(MockTodoUsecase)
	mockUsecase.On("UpdateTodo", mock.Anything, "abcd1234", mock.AnythingOfType("usecase.UpdateTodoRequest")).
		Return(&domain.Todo{ID: "abcd1234", Progress: 100, Completed: true}, nil)

	r := setupTodoRouter(mockUsecase)

	body, _ := json.Marshal(map[string]any{"progress": 100})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/todos/abcd1234", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	item := resp["item"].(map[string]any)
	assert.Equal(t, true, item["completed"])

	mockUsecase.AssertExpectations(t)
}

func TestTodoHandler_DeleteRestorePermanent(t *testing.T) {
	mockUsecase := new(MockTodoUsecase)
	mockUsecase.On("SoftDeleteTodo", mock.Anything, "abcd1234").Return(nil)
	mockUsecase.On("RestoreTodo", mock.Anything, "abcd1234").Return(nil)
	mockUsecase.On("PermanentDeleteTodo", mock.Anything, "abcd1234").Return(nil)

	r := setupTodoRouter(mockUsecase)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/todos/abcd1234"},
		{http.MethodPost, "/api/todos/abcd1234/restore"},
		{http.MethodDelete, "/api/todos/abcd1234/permanent"},
	}

	for _, tt := range requests {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tt.method, tt.path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, tt.path)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"], tt.path)
	}

	mockUsecase.AssertExpectations(t)
}

func TestTodoHandler_BatchUpdateTodos(t *testing.T) {
	mockUsecase := new(MockTodoUsecase)
	mockUsecase.On("BatchUpdateTodos", mock.Anything, mock.MatchedBy(func(updates []usecase.BatchTodoUpdate) bool {
		return len(updates) == 2 && updates[0].ID == "abcd1234" && updates[1].ID == "unknown1"
	})).Return(nil)

	r := setupTodoRouter(mockUsecase)

	body, _ := json.Marshal(map[string]any{
		"updates": []map[string]any{
			{"id": "abcd1234", "tab": "month"},
			{"id": "unknown1", "quadrant": "important-urgent"},
		},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/todos/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	mockUsecase.AssertExpectations(t)
}
