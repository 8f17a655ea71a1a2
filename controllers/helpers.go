package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lakehouse-backend/services"
	"lakehouse-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseDate accepts the YYYY-MM-DD the frontend sends, plus RFC3339 for
// API clients that pass timestamps.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// respondServiceError translates service sentinels into the response envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidBed):
		utils.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Bed not found")
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Check-out date must be after check-in date")
	case errors.Is(err, services.ErrInvalidSubmission):
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid submission data")
	case errors.Is(err, services.ErrBedUnavailable):
		utils.JSONError(c, http.StatusConflict, "UNAVAILABLE", "Selected bed is no longer available")
	case errors.Is(err, services.ErrDateConflict):
		utils.JSONError(c, http.StatusConflict, "CONFLICT", "This bed is already booked for the selected dates")
	case errors.Is(err, services.ErrSubmissionNotFound):
		utils.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
