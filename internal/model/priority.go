package model

import "time"

// Priority is a reference row holding a priority label ("1", "2", "3").
type Priority struct {
	ID        uint   `gorm:"primaryKey"`
	Level     string `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task `gorm:"foreignKey:PriorityID"`
}
