package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User owns tasks. Username and email are unique across the store; the
// password is kept as a bcrypt hash only.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Tasks        []Task `gorm:"foreignKey:UserID"`
}

// BeforeCreate assigns the surrogate key before the insert.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
