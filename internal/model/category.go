package model

import "time"

// Category groups tasks by area (work, errands, health, etc.). IsPrivate is
// nullable in the schema and reads as false when unset.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	IsPrivate *bool  `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task `gorm:"foreignKey:CategoryID"`
}

// Private reads the nullable flag with its false default.
func (c *Category) Private() bool {
	return c.IsPrivate != nil && *c.IsPrivate
}
