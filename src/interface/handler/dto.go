package handler

import (
	"next-app/src/domain"
)

// CreateTodoRequestDTO represents HTTP request for creating a todo.
// Unspecified fields take documented defaults in the usecase layer.
type CreateTodoRequestDTO struct {
	Text     string   `json:"text" validate:"max=500,safe_text"`
	Content  string   `json:"content" validate:"safe_text"`
	Tab      string   `json:"tab"`
	Quadrant string   `json:"quadrant"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=50"`
	Assignee string   `json:"assignee" validate:"max=100,safe_text"`
	DueDate  *string  `json:"due_date" validate:"omitempty,date_string"`
	Progress int      `json:"progress" validate:"min=0,max=100"`
}

// UpdateTodoRequestDTO represents HTTP request for a partial todo update
type UpdateTodoRequestDTO struct {
	Text      *string  `json:"text,omitempty" validate:"omitempty,max=500,safe_text"`
	Content   *string  `json:"content,omitempty" validate:"omitempty,safe_text"`
	Tab       *string  `json:"tab,omitempty"`
	Quadrant  *string  `json:"quadrant,omitempty"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,dive,max=50"`
	Assignee  *string  `json:"assignee,omitempty" validate:"omitempty,max=100,safe_text"`
	DueDate   *string  `json:"due_date,omitempty" validate:"omitempty,date_string"`
	Progress  *int     `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	Completed *bool    `json:"completed,omitempty"`
}

// BatchTodoUpdateDTO represents one entry of a batch update request
type BatchTodoUpdateDTO struct {
	ID       string  `json:"id"`
	Tab      *string `json:"tab,omitempty"`
	Quadrant *string `json:"quadrant,omitempty"`
}

// BatchUpdateRequestDTO represents HTTP request for a batch tab/quadrant update
type BatchUpdateRequestDTO struct {
	Updates []BatchTodoUpdateDTO `json:"updates"`
}

// AddRoutineRequestDTO represents HTTP request for adding a routine
type AddRoutineRequestDTO struct {
	Text string `json:"text"`
}

// SwitchPlatformRequestDTO represents HTTP request for switching the platform
type SwitchPlatformRequestDTO struct {
	Platform string `json:"platform"`
}

// TodoListResponseDTO represents HTTP response for the todo list
type TodoListResponseDTO struct {
	Items []domain.Todo `json:"items"`
}

// TodoItemResponseDTO represents HTTP response carrying one todo
type TodoItemResponseDTO struct {
	Success bool         `json:"success"`
	Item    *domain.Todo `json:"item"`
}

// RoutineListResponseDTO represents HTTP response for the routine list
type RoutineListResponseDTO struct {
	Success bool             `json:"success"`
	Items   []domain.Routine `json:"items"`
}

// RoutineItemResponseDTO represents HTTP response carrying one routine
type RoutineItemResponseDTO struct {
	Success bool            `json:"success"`
	Item    *domain.Routine `json:"item"`
}

// SuccessResponseDTO represents HTTP response for mutations without a body
type SuccessResponseDTO struct {
	Success bool `json:"success"`
}

// ErrorResponseDTO represents HTTP error response.
// Callers inspect the body; most failures still ship with HTTP 200.
type ErrorResponseDTO struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// QuoteResponseDTO represents HTTP response for a random quote
type QuoteResponseDTO struct {
	Quote string `json:"quote"`
}
