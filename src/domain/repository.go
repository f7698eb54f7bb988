package domain

import "context"

// TodoRepository defines the interface for the todos document store.
// Load is fail-open: a missing, unreadable, or unparsable file yields
// the empty default document, never an error the caller must branch on.
type TodoRepository interface {
	Load(ctx context.Context) (*TodoDocument, error)
	Save(ctx context.Context, doc *TodoDocument) error
}

// RoutineRepository defines the interface for the routines document store
type RoutineRepository interface {
	Load(ctx context.Context) (*RoutineDocument, error)
	Save(ctx context.Context, doc *RoutineDocument) error
}
