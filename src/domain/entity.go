package domain

// Tab represents the time horizon bucket for a todo
type Tab string

const (
	TabToday Tab = "today"
	TabWeek  Tab = "week"
	TabMonth Tab = "month"
)

// Quadrant represents the Eisenhower-matrix priority bucket for a todo
type Quadrant string

const (
	QuadrantImportantUrgent       Quadrant = "important-urgent"
	QuadrantImportantNotUrgent    Quadrant = "important-not-urgent"
	QuadrantNotImportantUrgent    Quadrant = "not-important-urgent"
	QuadrantNotImportantNotUrgent Quadrant = "not-important-not-urgent"
)

// Todo represents a todo domain entity
type Todo struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Content     string        `json:"content"`
	Tab         Tab           `json:"tab"`
	Quadrant    Quadrant      `json:"quadrant"`
	Tags        []string      `json:"tags"`
	Assignee    string        `json:"assignee"`
	DueDate     *string       `json:"due_date"`
	Progress    int           `json:"progress"`
	Completed   bool          `json:"completed"`
	CompletedAt *string       `json:"completed_at"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	Changelog   []ChangeEntry `json:"changelog,omitempty"`
	Deleted     bool          `json:"deleted,omitempty"`
	DeletedAt   *string       `json:"deleted_at,omitempty"`
}

// TodoDocument is the whole on-disk todos collection
type TodoDocument struct {
	Items []Todo `json:"items"`
}

// IsValid validates if the tab is a known value
func (t Tab) IsValid() bool {
	switch t {
	case TabToday, TabWeek, TabMonth:
		return true
	default:
		return false
	}
}

// IsValid validates if the quadrant is a known value
func (q Quadrant) IsValid() bool {
	switch q {
	case QuadrantImportantUrgent, QuadrantImportantNotUrgent,
		QuadrantNotImportantUrgent, QuadrantNotImportantNotUrgent:
		return true
	default:
		return false
	}
}

// String returns string representation of Tab
func (t Tab) String() string {
	return string(t)
}

// String returns string representation of Quadrant
func (q Quadrant) String() string {
	return string(q)
}
