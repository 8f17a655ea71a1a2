package services

import (
	"math"
	"time"

	"lakehouse-backend/models"
)

// PricingConfig holds the fixed allocation constants. The whole house costs
// TotalStayCost for TotalNights; that nightly cost is split across the beds in
// proportion to their effective weight (base weight for the bed type times a
// privacy modifier for how many beds share the room).
type PricingConfig struct {
	TotalStayCost float64
	TotalNights   int

	BaseWeights map[string]float64

	// RoomModifiers is keyed by the number of beds sharing a room. Counts
	// without an entry fall back to DefaultRoomModifier.
	RoomModifiers       map[int]float64
	DefaultRoomModifier float64
}

// DefaultPricingConfig returns the production constants. Do not retune without
// telling the guests — every rate in the house shifts.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TotalStayCost: 7538,
		TotalNights:   7,
		BaseWeights: map[string]float64{
			models.BedTypeKing:  1.35,
			models.BedTypeQueen: 1.15,
			models.BedTypeTwin:  0.85,
			models.BedTypeBunk:  0.70,
		},
		RoomModifiers: map[int]float64{
			1: 1.0,  // private room
			2: 0.92, // shared with 1 other bed
			3: 0.85, // shared with 2 other beds
		},
		DefaultRoomModifier: 0.85,
	}
}

// NightlyHouseCost is the fixed cost of the whole house for one night.
func (c PricingConfig) NightlyHouseCost() float64 {
	return c.TotalStayCost / float64(c.TotalNights)
}

// PriceQuote is the authoritative server-side price for a stay.
//
// NightlyRate and TotalPrice are rounded to cents independently: TotalPrice is
// the unrounded rate times nights, rounded afterwards, so it can differ by a
// cent from the rounded rate times nights. Clients must treat TotalPrice as
// the charge amount and NightlyRate as display-only.
type PriceQuote struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightlyRate"`
	TotalPrice  float64 `json:"totalPrice"`
}

// BedPricing is one row of the public price list.
type BedPricing struct {
	BedID       string  `json:"bedId"`
	RoomID      uint    `json:"roomId"`
	BedType     string  `json:"bedType"`
	NightlyRate float64 `json:"nightlyRate"`
}

// PricingService allocates the nightly house cost across the static bed
// inventory. It holds no mutable state and performs no I/O.
type PricingService struct {
	cfg  PricingConfig
	beds []models.Bed
	byID map[string]models.Bed
}

func NewPricingService(cfg PricingConfig, beds []models.Bed) *PricingService {
	byID := make(map[string]models.Bed, len(beds))
	for _, bed := range beds {
		byID[bed.ID] = bed
	}
	return &PricingService{cfg: cfg, beds: beds, byID: byID}
}

// BedByID is a pure lookup into the static inventory. Absence is not an error.
func (s *PricingService) BedByID(bedID string) (models.Bed, bool) {
	bed, ok := s.byID[bedID]
	return bed, ok
}

// BedsByRoomID returns the beds of a room in inventory order.
func (s *PricingService) BedsByRoomID(roomID uint) []models.Bed {
	var beds []models.Bed
	for _, bed := range s.beds {
		if bed.RoomID == roomID {
			beds = append(beds, bed)
		}
	}
	return beds
}

func (s *PricingService) roomBedCounts() map[uint]int {
	counts := make(map[uint]int, len(s.beds))
	for _, bed := range s.beds {
		counts[bed.RoomID]++
	}
	return counts
}

func (s *PricingService) roomModifier(bedsInRoom int) float64 {
	if m, ok := s.cfg.RoomModifiers[bedsInRoom]; ok {
		return m
	}
	return s.cfg.DefaultRoomModifier
}

func (s *PricingService) effectiveWeight(bed models.Bed, counts map[uint]int) float64 {
	return s.cfg.BaseWeights[bed.BedType] * s.roomModifier(counts[bed.RoomID])
}

// pricePerWeightUnit is recomputed from the full inventory on every call so
// the bed rates always sum back to the fixed nightly house cost, even after
// the constants are retuned.
func (s *PricingService) pricePerWeightUnit(counts map[uint]int) float64 {
	var totalWeight float64
	for _, bed := range s.beds {
		totalWeight += s.effectiveWeight(bed, counts)
	}
	return s.cfg.NightlyHouseCost() / totalWeight
}

// nightsBetween counts whole nights, rounding partial days up. A stay from
// day 0 00:00 to day 1 12:00 is 2 nights.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateGuestPrice prices a stay in the given bed. Returns ErrInvalidBed
// for a bed id outside the inventory and ErrInvalidDateRange unless check-out
// is strictly after check-in.
func (s *PricingService) CalculateGuestPrice(bedID string, checkIn, checkOut time.Time) (PriceQuote, error) {
	if !checkOut.After(checkIn) {
		return PriceQuote{}, ErrInvalidDateRange
	}

	bed, ok := s.byID[bedID]
	if !ok {
		return PriceQuote{}, ErrInvalidBed
	}

	counts := s.roomBedCounts()
	nightlyRate := s.effectiveWeight(bed, counts) * s.pricePerWeightUnit(counts)
	nights := nightsBetween(checkIn, checkOut)

	return PriceQuote{
		Nights:      nights,
		NightlyRate: roundCents(nightlyRate),
		TotalPrice:  roundCents(nightlyRate * float64(nights)),
	}, nil
}

// ListBedsWithPricing applies the allocation formula to every bed, in
// inventory order. Display only; no side effects.
func (s *PricingService) ListBedsWithPricing() []BedPricing {
	counts := s.roomBedCounts()
	perUnit := s.pricePerWeightUnit(counts)

	list := make([]BedPricing, 0, len(s.beds))
	for _, bed := range s.beds {
		list = append(list, BedPricing{
			BedID:       bed.ID,
			RoomID:      bed.RoomID,
			BedType:     bed.BedType,
			NightlyRate: roundCents(s.effectiveWeight(bed, counts) * perUnit),
		})
	}
	return list
}
