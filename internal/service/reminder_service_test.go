package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummaryEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	summary, err := env.reminders.DailySummary(context.Background(), now)
	require.NoError(t, err)
	assert.Contains(t, summary, "Daily report 2025-03-10")
	assert.Contains(t, summary, "No open tasks.")
}

func TestDailySummaryGroupsByDeadline(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	nextMonth := now.Add(30 * 24 * time.Hour)

	overdue := buyMilkInput()
	overdue.Title = "Pay rent"
	overdue.Deadline = &yesterday
	_, err := env.tasks.Create(ctx, overdue)
	require.NoError(t, err)

	soon := buyMilkInput()
	soon.Title = "Buy groceries"
	soon.Deadline = &tomorrow
	_, err = env.tasks.Create(ctx, soon)
	require.NoError(t, err)

	later := buyMilkInput()
	later.Title = "Renew passport"
	later.Deadline = &nextMonth
	_, err = env.tasks.Create(ctx, later)
	require.NoError(t, err)

	finished := buyMilkInput()
	finished.Title = "Old chore"
	created, err := env.tasks.Create(ctx, finished)
	require.NoError(t, err)
	_, err = env.tasks.MarkDone(ctx, created.ID)
	require.NoError(t, err)

	summary, err := env.reminders.DailySummary(ctx, now)
	require.NoError(t, err)

	assert.Contains(t, summary, "Overdue:")
	assert.Contains(t, summary, "Pay rent")
	assert.Contains(t, summary, "Due soon:")
	assert.Contains(t, summary, "Buy groceries")
	assert.Contains(t, summary, "Open:")
	assert.Contains(t, summary, "Renew passport")
	assert.NotContains(t, summary, "Old chore")

	// Each title lands in its own group, in group order.
	assert.Less(t, strings.Index(summary, "Pay rent"), strings.Index(summary, "Buy groceries"))
	assert.Less(t, strings.Index(summary, "Buy groceries"), strings.Index(summary, "Renew passport"))
}
