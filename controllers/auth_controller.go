package controllers

import (
	"net/http"
	"strings"
	"time"

	"lakehouse-backend/config"
	"lakehouse-backend/models"
	"lakehouse-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Secret string
}

func NewAuthController(secret string) *AuthController {
	return &AuthController{Secret: secret}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. Sessions are HS256 JWTs valid 7 days,
// matching the old cookie lifetime.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload")
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "email and password required")
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(ac.Secret))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": tokenString,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}
