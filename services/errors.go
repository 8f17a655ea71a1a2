package services

import "errors"

// Sentinel errors returned by the services. Controllers map these tokens to
// HTTP statuses; the services themselves never log or swallow them.
var (
	// ErrInvalidBed means the bed id is not part of the static inventory.
	ErrInvalidBed = errors.New("invalid_bed")

	// ErrInvalidDateRange means check-out is not strictly after check-in.
	ErrInvalidDateRange = errors.New("invalid_date_range")

	// ErrBedUnavailable means the bed exists but is manually marked unavailable.
	ErrBedUnavailable = errors.New("bed_unavailable")

	// ErrDateConflict means an existing submission overlaps the requested range.
	ErrDateConflict = errors.New("date_conflict")

	// ErrSubmissionNotFound means no submission exists with the given id.
	ErrSubmissionNotFound = errors.New("submission_not_found")

	// ErrInvalidSubmission means the guest payload failed validation.
	ErrInvalidSubmission = errors.New("invalid_submission")
)
