package repository

import (
	"context"
	"os"

	"next-app/src/domain"

	"github.com/sirupsen/logrus"
)

// TodoRepository stores the todos collection as a single JSON document
type TodoRepository struct {
	path   string
	logger *logrus.Logger
}

// NewTodoRepository creates a todo repository backed by the given file
func NewTodoRepository(path string, logger *logrus.Logger) *TodoRepository {
	return &TodoRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the whole collection. A missing, unreadable, or unparsable
// file yields the empty default document; no error is surfaced.
func (r *TodoRepository) Load(ctx context.Context) (*domain.TodoDocument, error) {
	doc := &domain.TodoDocument{}
	if err := readJSONFile(r.path, doc); err != nil {
		if !os.IsNotExist(err) {
			r.logger.WithError(err).WithField("file", r.path).Warn("待办数据文件读取失败，返回空集合")
		}
		return &domain.TodoDocument{Items: []domain.Todo{}}, nil
	}
	if doc.Items == nil {
		doc.Items = []domain.Todo{}
	}
	return doc, nil
}

// Save overwrites the whole collection on disk
func (r *TodoRepository) Save(ctx context.Context, doc *domain.TodoDocument) error {
	return writeJSONFile(r.path, doc)
}
