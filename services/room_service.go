package services

import (
	"fmt"
	"time"

	"lakehouse-backend/models"

	"gorm.io/gorm"
)

// RoomService assembles the public rooms view: rooms with their beds, each bed
// enriched with its nightly rate, its manual availability flag and the date
// ranges already booked.
type RoomService struct {
	DB           *gorm.DB
	Pricing      *PricingService
	Availability *AvailabilityService
}

func NewRoomService(db *gorm.DB, pricing *PricingService, availability *AvailabilityService) *RoomService {
	return &RoomService{DB: db, Pricing: pricing, Availability: availability}
}

type DateRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

type BedView struct {
	ID           string      `json:"id"`
	BedType      string      `json:"bedType"`
	Capacity     int         `json:"capacity"`
	NightlyRate  float64     `json:"nightlyRate"`
	IsAvailable  bool        `json:"isAvailable"`
	BookedRanges []DateRange `json:"bookedRanges"`
}

type RoomView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Beds        []BedView `json:"beds"`
}

// ListRoomsWithBeds returns all rooms ordered by id. When a non-zero window is
// supplied, each bed's IsAvailable reflects whether that window is free; with
// a zero window it reflects only the manual flag, and BookedRanges lets the
// client gray out taken dates itself.
func (s *RoomService) ListRoomsWithBeds(checkIn, checkOut time.Time) ([]RoomView, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Beds").Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	dbBeds := make(map[string]models.Bed)
	for _, room := range rooms {
		for _, bed := range room.Beds {
			dbBeds[bed.ID] = bed
		}
	}

	var submissions []models.Submission
	if err := s.DB.
		Select("bed_id", "check_in_date", "check_out_date").
		Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	rangesByBed := make(map[string][]DateRange, len(submissions))
	for _, sub := range submissions {
		rangesByBed[sub.BedID] = append(rangesByBed[sub.BedID], DateRange{
			CheckIn:  sub.CheckInDate,
			CheckOut: sub.CheckOutDate,
		})
	}

	withWindow := !checkIn.IsZero() && checkOut.After(checkIn)

	pricingByBed := make(map[string]float64)
	for _, p := range s.Pricing.ListBedsWithPricing() {
		pricingByBed[p.BedID] = p.NightlyRate
	}

	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		view := RoomView{
			ID:          room.ID,
			Name:        room.Name,
			Description: room.Description,
		}

		// The canonical inventory decides which beds a room has; the DB rows
		// only contribute the mutable availability flag.
		for _, bed := range s.Pricing.BedsByRoomID(room.ID) {
			available := bed.IsAvailable
			if dbBed, ok := dbBeds[bed.ID]; ok {
				available = dbBed.IsAvailable
			}

			if withWindow && available {
				free, err := s.Availability.IsAvailable(bed.ID, checkIn, checkOut, submissionsForBed(submissions, bed.ID))
				if err == nil {
					available = free
				}
			}

			ranges := rangesByBed[bed.ID]
			if ranges == nil {
				ranges = []DateRange{}
			}

			view.Beds = append(view.Beds, BedView{
				ID:           bed.ID,
				BedType:      bed.BedType,
				Capacity:     bed.Capacity,
				NightlyRate:  pricingByBed[bed.ID],
				IsAvailable:  available,
				BookedRanges: ranges,
			})
		}

		views = append(views, view)
	}
	return views, nil
}

func submissionsForBed(submissions []models.Submission, bedID string) []models.Submission {
	var out []models.Submission
	for _, sub := range submissions {
		if sub.BedID == bedID {
			out = append(out, sub)
		}
	}
	return out
}
