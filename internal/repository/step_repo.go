package repository

import (
	"context"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/domain"
	"gorm.io/gorm"
)

// StepRepository handles schedule step data operations. The planner reads
// the full step set as its machine-booking snapshot before every scheduling
// run, so steps are small, flat rows.
type StepRepository struct {
	db *gorm.DB
}

// NewStepRepository creates a new StepRepository.
func NewStepRepository(db *gorm.DB) *StepRepository {
	return &StepRepository{db: db}
}

// ListAll retrieves every schedule step, ordered by finish instant. This is
// the booking snapshot the scheduler consumes.
func (r *StepRepository) ListAll(ctx context.Context) ([]domain.ScheduleStep, error) {
	var steps []domain.ScheduleStep
	if err := r.db.WithContext(ctx).Order("finish_at").Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// ListByProcess retrieves a single machine's load, ordered by finish instant.
func (r *StepRepository) ListByProcess(ctx context.Context, process string) ([]domain.ScheduleStep, error) {
	var steps []domain.ScheduleStep
	if err := r.db.WithContext(ctx).
		Where("process = ?", process).
		Order("finish_at").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// ListByJob retrieves a job's steps in sequence order.
func (r *StepRepository) ListByJob(ctx context.Context, jobID string) ([]domain.ScheduleStep, error) {
	var steps []domain.ScheduleStep
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("seq").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// ReplaceFrom swaps a job's step suffix (every step with seq >= fromSeq)
// for the given replacement steps in one transaction. Used by the ripple
// reschedule: earlier steps keep their slots, the tail is recomputed.
func (r *StepRepository) ReplaceFrom(ctx context.Context, jobID string, fromSeq int, steps []domain.ScheduleStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ? AND seq >= ?", jobID, fromSeq).
			Delete(&domain.ScheduleStep{}).Error; err != nil {
			return err
		}
		if len(steps) == 0 {
			return nil
		}
		return tx.Create(&steps).Error
	})
}

// Count returns the number of schedule steps.
func (r *StepRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.ScheduleStep{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
