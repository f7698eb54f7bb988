package domain

// Routine represents a daily recurring task
type Routine struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	CompletedToday bool   `json:"completed_today"`
	CreatedAt      string `json:"created_at"`
}

// RoutineDocument is the whole on-disk routines collection.
// LastResetDate records the local date of the last daily reset.
type RoutineDocument struct {
	Items         []Routine `json:"items"`
	LastResetDate string    `json:"last_reset_date"`
}
