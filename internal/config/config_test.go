package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8, cfg.Shift.StartHour)
	assert.Equal(t, 17, cfg.Shift.EndHour)
	assert.Equal(t, 15, cfg.Shift.StepMinutes)
	assert.Equal(t, 365, cfg.Shift.MaxAdvanceDays)
	assert.InDelta(t, 2.0, cfg.Planner.SetupHours, 0.001)
	assert.InDelta(t, 150000, cfg.Planner.RevenueTarget, 0.001)

	require.Len(t, cfg.Machines, 15)
	rates := map[string]float64{}
	buffers := map[string]float64{}
	for _, m := range cfg.Machines {
		rates[m.Name] = m.RatePerHour
		buffers[m.Name] = m.BufferHours
	}
	assert.InDelta(t, 8000, rates["SM102-CX FOUR COLOUR"], 0.001)
	assert.InDelta(t, 500, rates["PERFECT BINDING"], 0.001)
	assert.InDelta(t, 8, buffers["DIE CUTTER"], 0.001)
	assert.InDelta(t, 2, buffers["FOLDER GLUER"], 0.001)
	assert.InDelta(t, 0, buffers["SM 52"], 0.001)

	assert.Contains(t, cfg.Reps, "Mabel Ampofo")
}
