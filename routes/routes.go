package routes

import (
	"foodshare-api/handlers"
	"foodshare-api/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the standard middleware stack and all routes
func NewRouter(corsOrigins []string, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.CORS(corsOrigins))
	SetupRoutes(r, staticDir)
	return r
}

func SetupRoutes(r *gin.Engine, staticDir string) {
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// ── Accounts ───────────────────────────────────────────────────
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		// ── Donations ──────────────────────────────────────────────────
		api.POST("/donate-food", handlers.DonateFood)
		api.GET("/donations", handlers.GetAvailableDonations)
		api.GET("/user-donations/:donorName", handlers.GetUserDonations)
		api.GET("/users/:id/donations", handlers.GetDonationsByUserID)
		api.POST("/confirm-collection", handlers.ConfirmCollection)
		api.GET("/donation-lifecycle", handlers.GetDonationLifecycle)

		// ── Community needs ────────────────────────────────────────────
		api.POST("/post-need", handlers.PostNeed)
		api.GET("/community-needs", handlers.GetCommunityNeeds)

		// ── Dashboard ──────────────────────────────────────────────────
		api.GET("/stats", handlers.GetStats)
	}

	// Everything else is the single-page frontend
	r.NoRoute(handlers.ServeFrontend(staticDir))
}
