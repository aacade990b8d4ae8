package model

import (
	"time"

	"github.com/google/uuid"
)

// Task status values.
const (
	StatusTodo = "todo"
	StatusDone = "done"
)

// Task represents a single todo item. Every task belongs to exactly one
// category, priority and user; the location is optional. Deleting any of the
// three required owners cascades to their tasks.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Deadline    *time.Time
	Status      string `gorm:"default:todo"`

	CategoryID uint      `gorm:"not null;index"`
	Category   Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PriorityID uint      `gorm:"not null;index"`
	Priority   Priority  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	LocationID *uint     `gorm:"index"`
	Location   *Location

	CreatedAt time.Time
	UpdatedAt time.Time
}
