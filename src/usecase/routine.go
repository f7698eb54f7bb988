package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"next-app/src/domain"
)

var (
	ErrEmptyRoutineText = errors.New("任务内容不能为空")
)

// RoutineUsecase defines the interface for daily recurring tasks
type RoutineUsecase interface {
	ListRoutines(ctx context.Context) ([]domain.Routine, error)
	AddRoutine(ctx context.Context, text string) (*domain.Routine, error)
	ToggleRoutine(ctx context.Context, id string) error
	RemoveRoutine(ctx context.Context, id string) error
}

type routineUsecase struct {
	repo domain.RoutineRepository
	mu   sync.Mutex
}

// NewRoutineUsecase creates a new routine usecase
func NewRoutineUsecase(repo domain.RoutineRepository) RoutineUsecase {
	return &routineUsecase{
		repo: repo,
	}
}

// loadWithReset loads the collection and, when the local date has changed
// since the recorded last reset, clears every item's completed_today flag
// and persists immediately. The reset thus runs at most once per day.
func (u *routineUsecase) loadWithReset(ctx context.Context) (*domain.RoutineDocument, error) {
	doc, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	if doc.LastResetDate != today {
		for i := range doc.Items {
			doc.Items[i].CompletedToday = false
		}
		doc.LastResetDate = today
		if err := u.repo.Save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// ListRoutines returns all routines after the daily reset check
func (u *routineUsecase) ListRoutines(ctx context.Context) ([]domain.Routine, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.loadWithReset(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// AddRoutine creates a routine; the text must be non-empty after trimming
func (u *routineUsecase) AddRoutine(ctx context.Context, text string) (*domain.Routine, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyRoutineText
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.loadWithReset(ctx)
	if err != nil {
		return nil, err
	}

	item := domain.Routine{
		ID:             domain.NewID(),
		Text:           text,
		CompletedToday: false,
		CreatedAt:      time.Now().Format(time.RFC3339),
	}
	doc.Items = append(doc.Items, item)
	if err := u.repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &item, nil
}

// ToggleRoutine flips completed_today; no-op when the id is unknown
func (u *routineUsecase) ToggleRoutine(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.loadWithReset(ctx)
	if err != nil {
		return err
	}

	for i := range doc.Items {
		if doc.Items[i].ID == id {
			doc.Items[i].CompletedToday = !doc.Items[i].CompletedToday
			break
		}
	}
	return u.repo.Save(ctx, doc)
}

// RemoveRoutine deletes a routine by id; no-op when absent
func (u *routineUsecase) RemoveRoutine(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.loadWithReset(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Routine, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	doc.Items = kept
	return u.repo.Save(ctx, doc)
}
