package controllers

import (
	"log"
	"net/http"

	"lakehouse-backend/config"
	"lakehouse-backend/models"
	"lakehouse-backend/services"
	"lakehouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Submissions *services.SubmissionService
}

func NewAdminController(submissions *services.SubmissionService) *AdminController {
	return &AdminController{Submissions: submissions}
}

// ListSubmissions handles GET /api/admin/submissions — every booking, newest
// first, with room and bed preloaded for the dashboard table.
func (adc *AdminController) ListSubmissions(c *gin.Context) {
	submissions, err := adc.Submissions.ListSubmissions()
	if err != nil {
		log.Printf("❌ failed to list submissions: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch submissions")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, submissions)
}

// ListRooms handles GET /api/admin/rooms — raw rooms with their beds, without
// the public view's pricing enrichment.
func (adc *AdminController) ListRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Preload("Beds").Order("id ASC").Find(&rooms).Error; err != nil {
		log.Printf("❌ failed to list rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
