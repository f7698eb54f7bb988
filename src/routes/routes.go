package routes

import (
	"next-app/src/interface/handler"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all API routes
func SetupRoutes(r *gin.Engine, todoHandler *handler.TodoHandler, routineHandler *handler.RoutineHandler, quoteHandler *handler.QuoteHandler, systemHandler *handler.SystemHandler) {
	api := r.Group("/api")

	// 待办的基本 CRUD、回收站操作与拖拽批量更新
	todos := api.Group("/todos")
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.PUT("/batch", todoHandler.BatchUpdateTodos)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
		todos.POST("/:id/restore", todoHandler.RestoreTodo)
		todos.DELETE("/:id/permanent", todoHandler.PermanentDeleteTodo)
	}

	// 每日例行任务
	routines := api.Group("/routines")
	{
		routines.GET("", routineHandler.ListRoutines)
		routines.POST("", routineHandler.AddRoutine)
		routines.POST("/:id/toggle", routineHandler.ToggleRoutine)
		routines.DELETE("/:id", routineHandler.RemoveRoutine)
	}

	api.GET("/quote/random", quoteHandler.RandomQuote)
	api.GET("/health", systemHandler.Health)
	api.GET("/weather", systemHandler.Weather)

	// 认证已禁用，仅保留兼容旧前端的空端点
	auth := api.Group("/auth")
	{
		auth.GET("/status", systemHandler.AuthStatus)
		auth.POST("/logout", systemHandler.AuthLogout)
	}

	platform := api.Group("/platform")
	{
		platform.GET("/current", systemHandler.CurrentPlatform)
		platform.POST("/switch", systemHandler.SwitchPlatform)
	}
}
