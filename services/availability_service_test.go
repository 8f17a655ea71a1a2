package services

import (
	"errors"
	"testing"

	"lakehouse-backend/models"
)

func newTestAvailability() *AvailabilityService {
	return NewAvailabilityService(models.DefaultBeds())
}

func submissionFor(bedID string, in, out int) models.Submission {
	return models.Submission{BedID: bedID, CheckInDate: day(in), CheckOutDate: day(out)}
}

func TestIsAvailable_EmptyExisting(t *testing.T) {
	s := newTestAvailability()

	free, err := s.IsAvailable("r5-queen", day(5), day(10), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !free {
		t.Fatal("bed with no submissions should be free")
	}
}

func TestIsAvailable_TouchingEndpointsDoNotConflict(t *testing.T) {
	s := newTestAvailability()
	existing := []models.Submission{submissionFor("r5-queen", 5, 10)}

	// Check-in on the day of the other stay's check-out is fine both ways.
	free, err := s.IsAvailable("r5-queen", day(10), day(12), existing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !free {
		t.Fatal("stay starting at the existing check-out must not conflict")
	}

	free, err = s.IsAvailable("r5-queen", day(2), day(5), existing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !free {
		t.Fatal("stay ending at the existing check-in must not conflict")
	}
}

func TestIsAvailable_OverlapConflicts(t *testing.T) {
	s := newTestAvailability()
	existing := []models.Submission{submissionFor("r5-queen", 5, 10)}

	cases := []struct{ in, out int }{
		{9, 12}, // tail overlap
		{3, 6},  // head overlap
		{6, 8},  // contained
		{3, 12}, // containing
		{5, 10}, // identical
	}
	for _, tc := range cases {
		free, err := s.IsAvailable("r5-queen", day(tc.in), day(tc.out), existing)
		if err != nil {
			t.Fatalf("[%d,%d): expected no error, got %v", tc.in, tc.out, err)
		}
		if free {
			t.Fatalf("[%d,%d) overlaps [5,10) and must conflict", tc.in, tc.out)
		}
	}
}

func TestIsAvailable_OtherBedsIgnored(t *testing.T) {
	s := newTestAvailability()
	existing := []models.Submission{submissionFor("r6-queen", 5, 10)}

	free, err := s.IsAvailable("r5-queen", day(5), day(10), existing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !free {
		t.Fatal("submission for a different bed must not block this bed")
	}
}

func TestIsAvailable_Idempotent(t *testing.T) {
	s := newTestAvailability()
	existing := []models.Submission{submissionFor("r5-queen", 5, 10)}

	first, err := s.IsAvailable("r5-queen", day(9), day(12), existing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := s.IsAvailable("r5-queen", day(9), day(12), existing)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first != second {
		t.Fatalf("same arguments gave different answers: %v then %v", first, second)
	}
}

func TestIsAvailable_UnknownBed(t *testing.T) {
	s := newTestAvailability()

	_, err := s.IsAvailable("r99-waterbed", day(1), day(3), nil)
	if !errors.Is(err, ErrInvalidBed) {
		t.Fatalf("expected ErrInvalidBed, got %v", err)
	}
}

func TestIsAvailable_ManuallyUnavailableBed(t *testing.T) {
	beds := []models.Bed{
		{ID: "broken-bed", RoomID: 1, BedType: models.BedTypeQueen, IsAvailable: false},
	}
	s := NewAvailabilityService(beds)

	free, err := s.IsAvailable("broken-bed", day(1), day(3), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if free {
		t.Fatal("manually unavailable bed must never be free, even with no submissions")
	}
}

func TestIsAvailable_InvalidDateRange(t *testing.T) {
	s := newTestAvailability()

	if _, err := s.IsAvailable("r5-queen", day(3), day(3), nil); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}
