package usecase

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"next-app/src/domain"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
)

// CreateTodoRequest represents input for creating a todo
type CreateTodoRequest struct {
	Text     string
	Content  string
	Tab      string
	Quadrant string
	Tags     []string
	Assignee string
	DueDate  *string
	Progress int
}

// UpdateTodoRequest represents partial input for updating a todo.
// Nil pointers (and a nil Tags slice) mean the field was not supplied.
type UpdateTodoRequest struct {
	Text      *string
	Content   *string
	Tab       *string
	Quadrant  *string
	Tags      []string
	Assignee  *string
	DueDate   *string
	Progress  *int
	Completed *bool
}

// BatchTodoUpdate represents one entry of a batch tab/quadrant update
type BatchTodoUpdate struct {
	ID       string
	Tab      *string
	Quadrant *string
}

// TodoUsecase defines the interface for the todo item lifecycle
type TodoUsecase interface {
	ListTodos(ctx context.Context, tab string) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (*domain.Todo, error)
	SoftDeleteTodo(ctx context.Context, id string) error
	RestoreTodo(ctx context.Context, id string) error
	PermanentDeleteTodo(ctx context.Context, id string) error
	BatchUpdateTodos(ctx context.Context, updates []BatchTodoUpdate) error
}

type todoUsecase struct {
	repo domain.TodoRepository

	// 对单个集合的「读取-修改-保存」整体加锁，避免并发请求互相覆盖
	mu sync.Mutex
}

// NewTodoUsecase creates a new todo usecase
func NewTodoUsecase(repo domain.TodoRepository) TodoUsecase {
	return &todoUsecase{
		repo: repo,
	}
}

// ListTodos returns all items, optionally filtered by exact tab match.
// Incomplete items come first, ties broken by creation time ascending.
// Soft-deleted items are included; the caller filters by the deleted flag.
func (u *todoUsecase) ListTodos(ctx context.Context, tab string) ([]domain.Todo, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	items := doc.Items
	if tab != "" {
		filtered := make([]domain.Todo, 0, len(items))
		for _, item := range items {
			if item.Tab.String() == tab {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Completed != items[j].Completed {
			return !items[i].Completed
		}
		return items[i].CreatedAt < items[j].CreatedAt
	})

	return items, nil
}

// CreateTodo creates a new todo with defaults for unspecified fields
func (u *todoUsecase) CreateTodo(ctx context.Context, req CreateTodoRequest) (*domain.Todo, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)

	tab := domain.Tab(req.Tab)
	if req.Tab == "" {
		tab = domain.TabToday
	}
	quadrant := domain.Quadrant(req.Quadrant)
	if req.Quadrant == "" {
		quadrant = domain.QuadrantImportantNotUrgent
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	item := domain.Todo{
		ID:        u.newUniqueID(doc),
		Text:      req.Text,
		Content:   req.Content,
		Tab:       tab,
		Quadrant:  quadrant,
		Tags:      tags,
		Assignee:  req.Assignee,
		DueDate:   req.DueDate,
		Progress:  req.Progress,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc.Items = append(doc.Items, item)
	if err := u.repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateTodo applies a partial update to a todo. For each tracked field
// present in the request and differing from the current value, one change
// entry is appended before the new value is applied. Returns
// ErrTodoNotFound when no item has the given id.
func (u *todoUsecase) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (*domain.Todo, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := findTodo(doc, id)
	if idx < 0 {
		return nil, ErrTodoNotFound
	}
	item := &doc.Items[idx]
	now := time.Now().Format(time.RFC3339)

	u.recordTrackedChanges(item, req, now)
	u.applyUpdate(item, req, now)
	item.UpdatedAt = now

	if err := u.repo.Save(ctx, doc); err != nil {
		return nil, err
	}

	updated := *item
	return &updated, nil
}

// recordTrackedChanges appends one change entry per tracked field whose
// supplied value differs from the current one.
func (u *todoUsecase) recordTrackedChanges(item *domain.Todo, req UpdateTodoRequest, now string) {
	if req.Tab != nil && item.Tab.String() != *req.Tab {
		item.RecordChange("tab", item.Tab, domain.Tab(*req.Tab), now)
	}
	if req.Quadrant != nil && item.Quadrant.String() != *req.Quadrant {
		item.RecordChange("quadrant", item.Quadrant, domain.Quadrant(*req.Quadrant), now)
	}
	if req.Progress != nil && item.Progress != *req.Progress {
		item.RecordChange("progress", item.Progress, *req.Progress, now)
	}
	if req.Completed != nil && item.Completed != *req.Completed {
		item.RecordChange("completed", item.Completed, *req.Completed, now)
	}
	if req.Assignee != nil && item.Assignee != *req.Assignee {
		item.RecordChange("assignee", item.Assignee, *req.Assignee, now)
	}
	if req.DueDate != nil && (item.DueDate == nil || *item.DueDate != *req.DueDate) {
		var from any
		if item.DueDate != nil {
			from = *item.DueDate
		}
		item.RecordChange("due_date", from, *req.DueDate, now)
	}
	if req.Tags != nil && !slices.Equal(item.Tags, req.Tags) {
		item.RecordChange("tags", item.Tags, req.Tags, now)
	}
}

// applyUpdate applies all supplied fields, including the derived-state
// rules between completed and progress.
func (u *todoUsecase) applyUpdate(item *domain.Todo, req UpdateTodoRequest, now string) {
	if req.Text != nil {
		item.Text = *req.Text
	}
	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.Quadrant != nil {
		item.Quadrant = domain.Quadrant(*req.Quadrant)
	}
	if req.Tab != nil {
		item.Tab = domain.Tab(*req.Tab)
	}
	if req.Tags != nil {
		item.Tags = req.Tags
	}
	if req.Completed != nil {
		item.Completed = *req.Completed
		if *req.Completed {
			completedAt := now
			item.CompletedAt = &completedAt
			item.Progress = 100
		} else {
			item.CompletedAt = nil
		}
	}
	if req.Assignee != nil {
		item.Assignee = *req.Assignee
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.Progress != nil {
		item.Progress = *req.Progress
		if *req.Progress >= 100 {
			item.Completed = true
			completedAt := now
			item.CompletedAt = &completedAt
		}
	}
}

// SoftDeleteTodo marks a todo as deleted; no-op when the id is unknown
func (u *todoUsecase) SoftDeleteTodo(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}

	if idx := findTodo(doc, id); idx >= 0 {
		now := time.Now().Format(time.RFC3339)
		doc.Items[idx].Deleted = true
		doc.Items[idx].DeletedAt = &now
	}
	return u.repo.Save(ctx, doc)
}

// RestoreTodo clears the soft-delete flag; no-op when the id is unknown
func (u *todoUsecase) RestoreTodo(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}

	if idx := findTodo(doc, id); idx >= 0 {
		doc.Items[idx].Deleted = false
		doc.Items[idx].DeletedAt = nil
	}
	return u.repo.Save(ctx, doc)
}

// PermanentDeleteTodo removes a todo from the collection; no-op when absent
func (u *todoUsecase) PermanentDeleteTodo(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Todo, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	doc.Items = kept
	return u.repo.Save(ctx, doc)
}

// BatchUpdateTodos applies tab/quadrant changes to each matching item.
// Unknown ids are silently skipped and no change entries are recorded.
// The collection is persisted once after the whole batch.
func (u *todoUsecase) BatchUpdateTodos(ctx context.Context, updates []BatchTodoUpdate) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}

	now := time.Now().Format(time.RFC3339)
	for _, update := range updates {
		idx := findTodo(doc, update.ID)
		if idx < 0 {
			continue
		}
		if update.Quadrant != nil {
			doc.Items[idx].Quadrant = domain.Quadrant(*update.Quadrant)
		}
		if update.Tab != nil {
			doc.Items[idx].Tab = domain.Tab(*update.Tab)
		}
		doc.Items[idx].UpdatedAt = now
	}

	return u.repo.Save(ctx, doc)
}

func findTodo(doc *domain.TodoDocument, id string) int {
	for i := range doc.Items {
		if doc.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// newUniqueID regenerates on the (unlikely) collision with an existing item
func (u *todoUsecase) newUniqueID(doc *domain.TodoDocument) string {
	for {
		id := domain.NewID()
		if findTodo(doc, id) < 0 {
			return id
		}
	}
}
