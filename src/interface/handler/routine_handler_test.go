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

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRoutineUsecase 是 usecase.RoutineUsecase 的 mock 实现
type MockRoutineUsecase struct {
	mock.Mock
}

func (m *MockRoutineUsecase) ListRoutines(ctx context.Context) ([]domain.Routine, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Routine), args.Error(1)
}

func (m *MockRoutineUsecase) AddRoutine(ctx context.Context, text string) (*domain.Routine, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *MockRoutineUsecase) ToggleRoutine(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoutineUsecase) RemoveRoutine(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRoutineRouter(mockUsecase *MockRoutineUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	routineHandler := handler.NewRoutineHandler(mockUsecase, logrus.New())

	routines := r.Group("/api/routines")
	{
		routines.GET("", routineHandler.ListRoutines)
		routines.POST("", routineHandler.AddRoutine)
		routines.POST("/:id/toggle", routineHandler.ToggleRoutine)
		routines.DELETE("/:id", routineHandler.RemoveRoutine)
	}

	return r
}

func TestRoutineHandler_ListRoutines(t *testing.T) {
	mockUsecase := new(MockRoutineUsecase)
	mockUsecase.On("ListRoutines", mock.Anything).Return([]domain.Routine{
		{ID: "abcd1234", Text: "晨跑", CompletedToday: true},
	}, nil)

	r := setupRoutineRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/routines", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	items := resp["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "晨跑", items[0].(map[string]any)["text"])

	mockUsecase.AssertExpectations(t)
}

func TestRoutineHandler_AddRoutine(t *testing.T) {
	mockUsecase := new(MockRoutineUsecase)
	mockUsecase.On("AddRoutine", mock.Anything, "背单词").Return(&domain.Routine{
		ID:   "abcd1234",
		Text: "背单词",
	}, nil)

	r := setupRoutineRouter(mockUsecase)

	body, _ := json.Marshal(map[string]any{"text": "背单词"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/routines", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	mockUsecase.AssertExpectations(t)
}

func TestRoutineHandler_AddRoutine_EmptyText(t *testing.T) {
	mockUsecase := new(MockRoutineUsecase)
	mockUsecase.On("AddRoutine", mock.Anything, "   ").Return(nil, usecase.ErrEmptyRoutineText)

	r := setupRoutineRouter(mockUsecase)

	body, _ := json.Marshal(map[string]any{"text": "   "})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/routines", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// 业务失败同样用 200 + success:false 表达
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "任务内容不能为空", resp["error"])

	mockUsecase.AssertExpectations(t)
}

func TestRoutineHandler_ToggleRoutine(t *testing.T) {
	mockUsecase := new(MockRoutineUsecase)
	mockUsecase.On("ToggleRoutine", mock.Anything, "abcd1234").Return(nil)

	r := setupRoutineRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/routines/abcd1234/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	mockUsecase.AssertExpectations(t)
}

func TestRoutineHandler_RemoveRoutine(t *testing.T) {
	mockUsecase := new(MockRoutineUsecase)
	mockUsecase.On("RemoveRoutine", mock.Anything, "abcd1234").Return(nil)

	r := setupRoutineRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/routines/abcd1234", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	mockUsecase.AssertExpectations(t)
}
