package controllers

import (
	"log"
	"net/http"
	"time"

	"lakehouse-backend/services"
	"lakehouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

// GetRooms handles GET /api/rooms. Optional checkIn/checkOut query params
// scope each bed's availability flag to that window.
func (rc *RoomController) GetRooms(c *gin.Context) {
	var checkIn, checkOut time.Time

	if raw := c.Query("checkIn"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check-in date")
			return
		}
		checkIn = t
	}
	if raw := c.Query("checkOut"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid check-out date")
			return
		}
		checkOut = t
	}

	rooms, err := rc.Rooms.ListRoomsWithBeds(checkIn, checkOut)
	if err != nil {
		log.Printf("❌ failed to list rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch rooms")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, rooms)
}
