package models

import "time"

// User is an author account. PostCount is denormalized: it is adjusted by
// one on every post create/delete rather than recomputed, so it can drift
// if a crash lands between a post mutation and the counter update.
type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Avatar       string    `gorm:"type:varchar(255)" json:"avatar"`
	PostCount    int64     `gorm:"not null;default:0" json:"post_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Posts []Post `gorm:"foreignKey:CreatorID" json:"-"`
}
