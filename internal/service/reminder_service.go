package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"todo-tracker/internal/model"
	"todo-tracker/internal/repository"
)

// ReminderService builds plain-text summaries of open tasks for the periodic
// console report.
type ReminderService struct {
	tasks *repository.TaskRepository
}

func NewReminderService(tasks *repository.TaskRepository) *ReminderService {
	return &ReminderService{tasks: tasks}
}

// DailySummary lists open tasks split into overdue, due within 48 hours and
// the rest, nearest deadline first within each group.
func (s *ReminderService) DailySummary(ctx context.Context, now time.Time) (string, error) {
	tasks, err := s.tasks.GetAll(ctx)
	if err != nil {
		return "", err
	}

	var overdue, dueSoon, open []model.Task
	for _, task := range tasks {
		if task.Status == model.StatusDone {
			continue
		}
		switch {
		case task.Deadline != nil && task.Deadline.Before(now):
			overdue = append(overdue, task)
		case task.Deadline != nil && task.Deadline.Sub(now) <= 48*time.Hour:
			dueSoon = append(dueSoon, task)
		default:
			open = append(open, task)
		}
	}

	byDeadline := func(tasks []model.Task) {
		sort.SliceStable(tasks, func(i, j int) bool {
			switch {
			case tasks[i].Deadline == nil && tasks[j].Deadline == nil:
				return tasks[i].ID < tasks[j].ID
			case tasks[i].Deadline == nil:
				return false
			case tasks[j].Deadline == nil:
				return true
			default:
				return tasks[i].Deadline.Before(*tasks[j].Deadline)
			}
		})
	}
	byDeadline(overdue)
	byDeadline(dueSoon)
	byDeadline(open)

	if len(overdue)+len(dueSoon)+len(open) == 0 {
		return fmt.Sprintf("Daily report %s\nNo open tasks.", now.Format("2006-01-02")), nil
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Daily report %s\n", now.Format("2006-01-02"))
	writeSection(&builder, "Overdue", overdue)
	writeSection(&builder, "Due soon", dueSoon)
	writeSection(&builder, "Open", open)
	return strings.TrimSpace(builder.String()), nil
}

func writeSection(builder *strings.Builder, header string, tasks []model.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintf(builder, "\n%s:\n", header)
	for _, task := range tasks {
		fmt.Fprintf(builder, "  - #%d %s (%s", task.ID, task.Title, task.Category.Name)
		if task.Deadline != nil {
			fmt.Fprintf(builder, ", due %s", task.Deadline.Format("2006-01-02"))
		}
		builder.WriteString(")\n")
	}
}
