package models

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is a confirmed guest reservation. Submissions are created exactly
// once and never updated or cancelled; the composite unique index on
// (bed_id, check_in_date) backstops the availability check under concurrent writes.
type Submission struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Name   string `gorm:"size:200" json:"name"`
	Email  string `gorm:"size:255" json:"email"`
	RoomID uint   `gorm:"index;column:room_id" json:"roomId"`
	BedID  string `gorm:"size:64;column:bed_id;uniqueIndex:idx_bed_checkin" json:"bedId"`

	CheckInDate  time.Time `gorm:"column:check_in_date;uniqueIndex:idx_bed_checkin" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	Nights      int     `json:"nights"`
	NightlyRate float64 `gorm:"column:nightly_rate" json:"nightlyRate"`
	TotalPrice  float64 `gorm:"column:calculated_price" json:"calculatedPrice"`

	// Quote captured at booking time, kept verbatim for the admin view.
	PriceBreakdown datatypes.JSON `gorm:"column:price_breakdown" json:"priceBreakdown,omitempty"`

	SubmittedAt time.Time `gorm:"column:submitted_at;index" json:"submittedAt"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Bed  Bed  `gorm:"foreignKey:BedID;references:ID" json:"bed,omitempty"`
}
