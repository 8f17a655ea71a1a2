package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lakehouse-backend/controllers"
	"lakehouse-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances to routes.
func SetupRouter(
	pc *controllers.PricingController,
	rc *controllers.RoomController,
	sc *controllers.SubmissionController,
	ac *controllers.AuthController,
	adc *controllers.AdminController,
	apiKey string,
	sessionSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Internal-Api-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/rooms", rc.GetRooms)
		api.GET("/beds/pricing", pc.ListBedPricing)
		api.POST("/calculate-price", pc.CalculatePrice)

		// Submission creation goes through the internal API key guard; the
		// confirmation lookup is public (the id is the capability).
		api.POST("/submit", middleware.RequireInternalAPIKey(apiKey), sc.Submit)
		api.GET("/submissions/:id", sc.GetSubmission)

		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(sessionSecret))
		{
			admin.GET("/submissions", adc.ListSubmissions)
			admin.GET("/rooms", adc.ListRooms)
		}
	}

	return r
}
