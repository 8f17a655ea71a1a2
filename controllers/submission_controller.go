package controllers

import (
	"log"
	"net/http"

	"lakehouse-backend/services"
	"lakehouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	Submissions *services.SubmissionService
}

func NewSubmissionController(submissions *services.SubmissionService) *SubmissionController {
	return &SubmissionController{Submissions: submissions}
}

type submitRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	RoomID       uint   `json:"roomId"`
	BedID        string `json:"bedId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// Submit handles POST /api/submit. The price in the response is always the
// server-side recomputation; any client-supplied figure is ignored.
func (sc *SubmissionController) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid submission data")
		return
	}

	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check-in date")
		return
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check-out date")
		return
	}

	submission, err := sc.Submissions.CreateSubmission(services.CreateSubmissionInput{
		Name:         req.Name,
		Email:        req.Email,
		BedID:        req.BedID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, submission)
}

// GetSubmission handles GET /api/submissions/:id (the confirmation page).
func (sc *SubmissionController) GetSubmission(c *gin.Context) {
	submission, err := sc.Submissions.GetSubmissionByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, submission)
}
