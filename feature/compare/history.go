package compare

import (
	"context"
	"fmt"

	"invoice-reconciler/feature/compare/models"

	"gorm.io/gorm"
)

// historyLimit caps the run listing.
const historyLimit = 100

// History records comparison runs in the database.
type History struct {
	db *gorm.DB
}

// NewHistory creates a run-history repository.
func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Record persists one comparison run.
func (h *History) Record(ctx context.Context, run *models.CompareRun) error {
	if err := h.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record compare run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (h *History) List(ctx context.Context) ([]models.CompareRun, error) {
	var runs []models.CompareRun
	err := h.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list compare runs: %w", err)
	}
	return runs, nil
}
