package models

import (
	"time"
)

// Room identifiers are pre-seeded and stable; rooms are never created by guests.
type Room struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Beds []Bed `gorm:"foreignKey:RoomID" json:"beds,omitempty"`
}
