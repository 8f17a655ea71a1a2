package services

import (
	"errors"
	"testing"
	"time"

	"lakehouse-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func newTestSubmissionService(db *gorm.DB) *SubmissionService {
	pricing := NewPricingService(DefaultPricingConfig(), models.DefaultBeds())
	availability := NewAvailabilityService(models.DefaultBeds())
	return NewSubmissionService(db, pricing, availability)
}

func bedRows(available bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_id", "bed_type", "capacity", "is_available"}).
		AddRow("r5-queen", 5, models.BedTypeQueen, 2, available)
}

func validInput() CreateSubmissionInput {
	return CreateSubmissionInput{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		BedID:        "r5-queen",
		CheckInDate:  day(5),
		CheckOutDate: day(10),
	}
}

func TestCreateSubmission_Success(t *testing.T) {
	db, mock := newMockDB(t)
	s := newTestSubmissionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `beds`").WillReturnRows(bedRows(true))
	mock.ExpectQuery("SELECT .+ FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bed_id", "check_in_date", "check_out_date"}))
	mock.ExpectExec("INSERT INTO `submissions`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// Room name lookup for the confirmation email (best-effort, post-commit).
	mock.ExpectQuery("SELECT .+ FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow(5, "Bedroom 5", "Queen bed"))

	submission, err := s.CreateSubmission(validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if submission.ID == "" {
		t.Fatal("submission id should be assigned")
	}
	if submission.Nights != 5 {
		t.Fatalf("expected 5 nights, got %d", submission.Nights)
	}
	if submission.TotalPrice <= 0 {
		t.Fatalf("expected positive total, got %.2f", submission.TotalPrice)
	}
	if submission.RoomID != 5 {
		t.Fatalf("room id must come from the inventory bed, got %d", submission.RoomID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_OverlapRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	s := newTestSubmissionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `beds`").WillReturnRows(bedRows(true))
	mock.ExpectQuery("SELECT .+ FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bed_id", "check_in_date", "check_out_date"}).
			AddRow("existing-id", "r5-queen", day(9), day(12)))
	mock.ExpectRollback()

	_, err := s.CreateSubmission(validInput())
	if !errors.Is(err, ErrDateConflict) {
		t.Fatalf("expected ErrDateConflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_TouchingRangeAccepted(t *testing.T) {
	db, mock := newMockDB(t)
	s := newTestSubmissionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `beds`").WillReturnRows(bedRows(true))
	// Existing stay ends exactly on the requested check-in day.
	mock.ExpectQuery("SELECT .+ FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bed_id", "check_in_date", "check_out_date"}).
			AddRow("existing-id", "r5-queen", day(1), day(5)))
	mock.ExpectExec("INSERT INTO `submissions`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .+ FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow(5, "Bedroom 5", "Queen bed"))

	if _, err := s.CreateSubmission(validInput()); err != nil {
		t.Fatalf("back-to-back stays must be accepted, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_ManuallyUnavailableBed(t *testing.T) {
	db, mock := newMockDB(t)
	s := newTestSubmissionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `beds`").WillReturnRows(bedRows(false))
	mock.ExpectRollback()

	_, err := s.CreateSubmission(validInput())
	if !errors.Is(err, ErrBedUnavailable) {
		t.Fatalf("expected ErrBedUnavailable, got %v", err)
	}
}

func TestCreateSubmission_DuplicateKeyMapsToConflict(t *testing.T) {
	db, mock := newMockDB(t)
	s := newTestSubmissionService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM `beds`").WillReturnRows(bedRows(true))
	mock.ExpectQuery("SELECT .+ FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "bed_id", "check_in_date", "check_out_date"}))
	mock.ExpectExec("INSERT INTO `submissions`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := s.CreateSubmission(validInput())
	if !errors.Is(err, ErrDateConflict) {
		t.Fatalf("a racing insert must surface as ErrDateConflict, got %v", err)
	}
}

func TestCreateSubmission_RejectsBadInput(t *testing.T) {
	db, _ := newMockDB(t)
	s := newTestSubmissionService(db)

	in := validInput()
	in.Email = "not-an-email"
	if _, err := s.CreateSubmission(in); !errors.Is(err, ErrInvalidSubmission) {
		t.Fatalf("expected ErrInvalidSubmission for bad email, got %v", err)
	}

	in = validInput()
	in.Name = ""
	if _, err := s.CreateSubmission(in); !errors.Is(err, ErrInvalidSubmission) {
		t.Fatalf("expected ErrInvalidSubmission for empty name, got %v", err)
	}

	in = validInput()
	in.CheckOutDate = in.CheckInDate
	if _, err := s.CreateSubmission(in); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	in = validInput()
	in.BedID = "r99-waterbed"
	if _, err := s.CreateSubmission(in); !errors.Is(err, ErrInvalidBed) {
		t.Fatalf("expected ErrInvalidBed, got %v", err)
	}
}

func TestGetSubmissionByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := newTestSubmissionService(db)

	mock.ExpectQuery("SELECT .+ FROM `submissions`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetSubmissionByID("missing-id")
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestListSubmissions_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	s := newTestSubmissionService(db)
	mock.MatchExpectationsInOrder(false)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT .+ FROM `submissions` .*ORDER BY submitted_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "room_id", "bed_id", "submitted_at"}).
			AddRow("id-2", "Second Guest", "two@example.com", 5, "r5-queen", now).
			AddRow("id-1", "First Guest", "one@example.com", 6, "r6-queen", now.Add(-time.Hour)))
	// Room and Bed preloads.
	mock.ExpectQuery("SELECT .+ FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(5, "Bedroom 5").AddRow(6, "Bedroom 6"))
	mock.ExpectQuery("SELECT .+ FROM `beds`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "bed_type"}).
			AddRow("r5-queen", 5, models.BedTypeQueen).AddRow("r6-queen", 6, models.BedTypeQueen))

	submissions, err := s.ListSubmissions()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(submissions))
	}
	if submissions[0].ID != "id-2" {
		t.Fatalf("expected newest submission first, got %s", submissions[0].ID)
	}
	if submissions[0].Room.Name != "Bedroom 5" {
		t.Fatalf("room preload missing, got %q", submissions[0].Room.Name)
	}
}
