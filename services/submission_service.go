package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"lakehouse-backend/models"
	"lakehouse-backend/utils"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const mysqlDuplicateEntry = 1062

// SubmissionService runs the booking flow: availability check, server-side
// price recompute and insert, all inside one transaction holding a row lock on
// the bed so two concurrent requests cannot both observe the bed as free.
type SubmissionService struct {
	DB           *gorm.DB
	Pricing      *PricingService
	Availability *AvailabilityService
}

func NewSubmissionService(db *gorm.DB, pricing *PricingService, availability *AvailabilityService) *SubmissionService {
	return &SubmissionService{DB: db, Pricing: pricing, Availability: availability}
}

type CreateSubmissionInput struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BedID        string    `json:"bedId"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
}

func (in *CreateSubmissionInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" || len(in.Name) > 200 {
		return fmt.Errorf("%w: name", ErrInvalidSubmission)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: email", ErrInvalidSubmission)
	}
	if in.CheckInDate.IsZero() || in.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: dates", ErrInvalidSubmission)
	}
	if !in.CheckOutDate.After(in.CheckInDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// CreateSubmission books a bed. The client never supplies a price; the quote
// is recomputed here and is what gets persisted.
func (s *SubmissionService) CreateSubmission(input CreateSubmissionInput) (models.Submission, error) {
	if err := input.validate(); err != nil {
		return models.Submission{}, err
	}

	bed, ok := s.Pricing.BedByID(input.BedID)
	if !ok {
		return models.Submission{}, ErrInvalidBed
	}

	quote, err := s.Pricing.CalculateGuestPrice(input.BedID, input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return models.Submission{}, err
	}

	breakdown, err := json.Marshal(quote)
	if err != nil {
		return models.Submission{}, fmt.Errorf("marshal price breakdown: %w", err)
	}

	submission := models.Submission{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Email:          input.Email,
		RoomID:         bed.RoomID,
		BedID:          bed.ID,
		CheckInDate:    input.CheckInDate,
		CheckOutDate:   input.CheckOutDate,
		Nights:         quote.Nights,
		NightlyRate:    quote.NightlyRate,
		TotalPrice:     quote.TotalPrice,
		PriceBreakdown: breakdown,
		SubmittedAt:    time.Now().UTC(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the bed row so concurrent bookings for the same bed serialize
		// across the read-check-insert sequence.
		var bedRow models.Bed
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&bedRow, "id = ?", bed.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidBed
			}
			return fmt.Errorf("lock bed: %w", err)
		}
		if !bedRow.IsAvailable {
			return ErrBedUnavailable
		}

		var existing []models.Submission
		if err := tx.Where("bed_id = ?", bed.ID).Find(&existing).Error; err != nil {
			return fmt.Errorf("load submissions for bed: %w", err)
		}

		free, err := s.Availability.IsAvailable(bed.ID, input.CheckInDate, input.CheckOutDate, existing)
		if err != nil {
			return err
		}
		if !free {
			return ErrDateConflict
		}

		if err := tx.Create(&submission).Error; err != nil {
			// The unique (bed_id, check_in_date) index backstops a race that
			// slipped past the row lock.
			var mysqlErr *gomysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
				return ErrDateConflict
			}
			return fmt.Errorf("create submission: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Submission{}, err
	}

	s.sendConfirmationEmail(submission, bed)

	return submission, nil
}

// sendConfirmationEmail is best-effort: the booking stands even if the email
// cannot be delivered.
func (s *SubmissionService) sendConfirmationEmail(submission models.Submission, bed models.Bed) {
	roomName := fmt.Sprintf("Room %d", bed.RoomID)
	var room models.Room
	if err := s.DB.First(&room, bed.RoomID).Error; err == nil {
		roomName = room.Name
	}

	base := strings.TrimRight(utils.EnvOrDefault("APP_BASE_URL", "http://localhost:8080"), "/")
	confirmationLink := fmt.Sprintf("%s/confirmation/%s", base, submission.ID)

	if err := utils.SendGuestConfirmationEmail(
		submission.Email,
		submission.Name,
		roomName,
		bed.BedType,
		submission.CheckInDate.Format("2006-01-02"),
		submission.CheckOutDate.Format("2006-01-02"),
		submission.Nights,
		submission.TotalPrice,
		confirmationLink,
	); err != nil {
		log.Printf("⚠️ confirmation email to %s failed: %v", submission.Email, err)
	}
}

// GetSubmissionByID backs the confirmation page.
func (s *SubmissionService) GetSubmissionByID(id string) (models.Submission, error) {
	var submission models.Submission
	err := s.DB.Preload("Room").Preload("Bed").First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		return models.Submission{}, fmt.Errorf("load submission: %w", err)
	}
	return submission, nil
}

// ListSubmissions returns every submission, newest first, for the admin view.
func (s *SubmissionService) ListSubmissions() ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.DB.Preload("Room").Preload("Bed").
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}
