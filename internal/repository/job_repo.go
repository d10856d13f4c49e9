package repository

import (
	"context"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/domain"
	"gorm.io/gorm"
)

// JobRepository handles job data operations.
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create persists a job together with its schedule steps in one
// transaction. A failed step write rolls the whole job back so steps stay
// all-or-nothing.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(job).Error
	})
}

// GetByID retrieves a job with its steps ordered by sequence.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves all jobs with their steps, newest first.
func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Delete removes a job and all of its steps in one transaction.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job domain.Job
		if err := tx.First(&job, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&domain.ScheduleStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}

// UpdateValue sets a job's contract value and redistributes it evenly
// across the job's steps, all in one transaction.
func (r *JobRepository) UpdateValue(ctx context.Context, id string, value float64) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
			First(&job, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&job).Update("contract_value", value).Error; err != nil {
			return err
		}
		if n := len(job.Steps); n > 0 {
			perStep := value / float64(n)
			if err := tx.Model(&domain.ScheduleStep{}).
				Where("job_id = ?", id).
				Update("step_value", perStep).Error; err != nil {
				return err
			}
			for i := range job.Steps {
				job.Steps[i].StepValue = perStep
			}
		}
		job.ContractValue = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// RevenueTotal sums contract value across all jobs.
func (r *JobRepository) RevenueTotal(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).
		Model(&domain.Job{}).
		Select("COALESCE(SUM(contract_value), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Count returns the number of jobs.
func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Job{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
