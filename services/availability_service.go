package services

import (
	"time"

	"lakehouse-backend/models"
)

// AvailabilityService decides whether a candidate reservation may be accepted
// against the submissions that already exist for a bed. It is a pure predicate
// over the arguments: no locking, no I/O. The caller owns the check-then-act
// race and must either hold a per-bed lock across check and insert or rely on
// the storage-layer unique constraint (SubmissionService does both).
type AvailabilityService struct {
	byID map[string]models.Bed
}

func NewAvailabilityService(beds []models.Bed) *AvailabilityService {
	byID := make(map[string]models.Bed, len(beds))
	for _, bed := range beds {
		byID[bed.ID] = bed
	}
	return &AvailabilityService{byID: byID}
}

// rangesOverlap applies the half-open interval test: [aIn, aOut) and
// [bIn, bOut) overlap iff aIn < bOut && bIn < aOut. One stay's check-out on
// another's check-in day is not a conflict.
func rangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// IsAvailable reports whether the bed is free for [checkIn, checkOut) given
// the existing submissions for that bed. A bed manually flagged unavailable is
// never free, regardless of dates. Unknown beds return ErrInvalidBed.
func (s *AvailabilityService) IsAvailable(bedID string, checkIn, checkOut time.Time, existing []models.Submission) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrInvalidDateRange
	}

	bed, ok := s.byID[bedID]
	if !ok {
		return false, ErrInvalidBed
	}
	if !bed.IsAvailable {
		return false, nil
	}

	for _, sub := range existing {
		if sub.BedID != bedID {
			continue
		}
		if rangesOverlap(checkIn, checkOut, sub.CheckInDate, sub.CheckOutDate) {
			return false, nil
		}
	}
	return true, nil
}
