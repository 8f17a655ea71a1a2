package models

import (
	"time"
)

// Bed types form a closed set; the pricing engine rejects anything else.
const (
	BedTypeKing  = "king"
	BedTypeQueen = "queen"
	BedTypeTwin  = "twin"
	BedTypeBunk  = "bunk"
)

// Bed is the sellable unit. The inventory is fixed at deployment time; only
// IsAvailable (a manual override) and the attached submissions ever change.
type Bed struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	RoomID      uint   `gorm:"index;column:room_id" json:"roomId"`
	BedType     string `gorm:"size:16;column:bed_type" json:"bedType"`
	Capacity    int    `gorm:"default:1" json:"capacity"`
	IsAvailable bool   `gorm:"default:true;column:is_available" json:"isAvailable"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
