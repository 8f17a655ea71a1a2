package controllers

import (
	"net/http"

	"lakehouse-backend/services"
	"lakehouse-backend/utils"

	"github.com/gin-gonic/gin"
)

type PricingController struct {
	Pricing *services.PricingService
}

func NewPricingController(pricing *services.PricingService) *PricingController {
	return &PricingController{Pricing: pricing}
}

type priceRequest struct {
	BedID        string `json:"bedId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// CalculatePrice handles POST /api/calculate-price. The returned quote is the
// same one the submission flow recomputes, so the UI can show it safely.
func (pc *PricingController) CalculatePrice(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid price calculation data")
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

	quote, err := pc.Pricing.CalculateGuestPrice(req.BedID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, quote)
}

// ListBedPricing handles GET /api/beds/pricing — the full price list.
func (pc *PricingController) ListBedPricing(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, pc.Pricing.ListBedsWithPricing())
}
