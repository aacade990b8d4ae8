package model

import "time"

// Location is an optional place a task happens at. All fields except the key
// may be empty.
type Location struct {
	ID         uint `gorm:"primaryKey"`
	Name       string
	Street     string
	City       string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Tasks      []Task `gorm:"foreignKey:LocationID"`
}
