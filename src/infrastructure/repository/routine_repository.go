package repository

import (
	"context"
	"os"
	"time"

	"next-app/src/domain"

	"github.com/sirupsen/logrus"
)

// RoutineRepository stores the routines collection as a single JSON document
type RoutineRepository struct {
	path   string
	logger *logrus.Logger
}

// NewRoutineRepository creates a routine repository backed by the given file
func NewRoutineRepository(path string, logger *logrus.Logger) *RoutineRepository {
	return &RoutineRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the whole collection. A missing, unreadable, or unparsable
// file yields an empty document dated today, so no reset fires on first use.
func (r *RoutineRepository) Load(ctx context.Context) (*domain.RoutineDocument, error) {
	doc := &domain.RoutineDocument{}
	if err := readJSONFile(r.path, doc); err != nil {
		if !os.IsNotExist(err) {
			r.logger.WithError(err).WithField("file", r.path).Warn("例行任务数据文件读取失败，返回空集合")
		}
		return &domain.RoutineDocument{
			Items:         []domain.Routine{},
			LastResetDate: time.Now().Format("2006-01-02"),
		}, nil
	}
	if doc.Items == nil {
		doc.Items = []domain.Routine{}
	}
	return doc, nil
}

// Save overwrites the whole collection on disk
func (r *RoutineRepository) Save(ctx context.Context, doc *domain.RoutineDocument) error {
	return writeJSONFile(r.path, doc)
}
