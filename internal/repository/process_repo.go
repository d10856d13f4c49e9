package repository

import (
	"context"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProcessRepository handles the persisted machine catalog.
type ProcessRepository struct {
	db *gorm.DB
}

// NewProcessRepository creates a new ProcessRepository.
func NewProcessRepository(db *gorm.DB) *ProcessRepository {
	return &ProcessRepository{db: db}
}

// Sync upserts the configured machine catalog so the stored table always
// mirrors configuration. Entries removed from config are left in place;
// historical steps may still reference them.
func (r *ProcessRepository) Sync(ctx context.Context, defs []domain.ProcessDefinition) error {
	if len(defs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&defs).Error
}

// List retrieves the machine catalog ordered by name.
func (r *ProcessRepository) List(ctx context.Context) ([]domain.ProcessDefinition, error) {
	var defs []domain.ProcessDefinition
	if err := r.db.WithContext(ctx).Order("name").Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}
