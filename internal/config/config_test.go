package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REMINDER_INTERVAL_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "todo_tracker.db", cfg.DatabaseURL)
	assert.Zero(t, cfg.ReminderInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "data/tracker.db")
	t.Setenv("REMINDER_INTERVAL_HOURS", "6")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data/tracker.db", cfg.DatabaseURL)
	assert.Equal(t, 6*time.Hour, cfg.ReminderInterval)
}

func TestParseIntervalRejectsGarbage(t *testing.T) {
	assert.Zero(t, parseInterval("abc"))
	assert.Zero(t, parseInterval("-3"))
	assert.Zero(t, parseInterval("0"))
	assert.Equal(t, 12*time.Hour, parseInterval("12"))
}
