package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Samuel-MMensah/appointed-time-printing-planner/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "planner.db")), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ProcessDefinition{}, &domain.Job{}, &domain.ScheduleStep{}))
	return db
}

func step(jobID string, seq int, process string, start, finish time.Time) domain.ScheduleStep {
	return domain.ScheduleStep{
		ID:            uuid.New().String(),
		JobID:         jobID,
		Seq:           seq,
		Process:       process,
		StartAt:       start,
		FinishAt:      finish,
		DurationHours: finish.Sub(start).Hours(),
		Impressions:   1000,
	}
}

func TestStepRepositoryListByProcessOrdersByFinish(t *testing.T) {
	db := newTestDB(t)
	repo := NewStepRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	jobA, jobB := uuid.New().String(), uuid.New().String()

	steps := []domain.ScheduleStep{
		step(jobA, 0, "SM 52", base.Add(6*time.Hour), base.Add(9*time.Hour)),
		step(jobB, 0, "SM 52", base, base.Add(3*time.Hour)),
		step(jobB, 1, "DIE CUTTER", base.Add(3*time.Hour), base.Add(5*time.Hour)),
	}
	require.NoError(t, db.Create(&steps).Error)

	got, err := repo.ListByProcess(ctx, "SM 52")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, jobB, got[0].JobID)
	assert.Equal(t, jobA, got[1].JobID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStepRepositoryReplaceFrom(t *testing.T) {
	db := newTestDB(t)
	repo := NewStepRepository(db)
	ctx := context.Background()

	base := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	jobID := uuid.New().String()

	steps := []domain.ScheduleStep{
		step(jobID, 0, "SM 52", base, base.Add(3*time.Hour)),
		step(jobID, 1, "DIE CUTTER", base.Add(3*time.Hour), base.Add(5*time.Hour)),
		step(jobID, 2, "3 WAY TRIMMER", base.Add(5*time.Hour), base.Add(6*time.Hour)),
	}
	require.NoError(t, db.Create(&steps).Error)

	replacement := []domain.ScheduleStep{
		step(jobID, 1, "DIE CUTTER", base.Add(24*time.Hour), base.Add(26*time.Hour)),
		step(jobID, 2, "3 WAY TRIMMER", base.Add(26*time.Hour), base.Add(27*time.Hour)),
	}
	require.NoError(t, repo.ReplaceFrom(ctx, jobID, 1, replacement))

	got, err := repo.ListByJob(ctx, jobID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "SM 52", got[0].Process)
	assert.True(t, got[0].StartAt.Equal(base), "untouched prefix must keep its slot")
	assert.True(t, got[1].StartAt.Equal(base.Add(24*time.Hour)))
	assert.True(t, got[2].StartAt.Equal(base.Add(26*time.Hour)))
}

func TestProcessRepositorySyncIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProcessRepository(db)
	ctx := context.Background()

	defs := []domain.ProcessDefinition{
		{Name: "SM 52", RatePerHour: 7000},
		{Name: "DIE CUTTER", RatePerHour: 3000, BufferHours: 8},
	}
	require.NoError(t, repo.Sync(ctx, defs))

	// A rate change in config lands on the stored row, no duplicates.
	defs[0].RatePerHour = 7200
	require.NoError(t, repo.Sync(ctx, defs))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "DIE CUTTER", got[0].Name)
	assert.InDelta(t, 7200, got[1].RatePerHour, 0.001)
}
