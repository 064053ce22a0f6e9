package handlers

import (
	"net/http"

	"foodshare-api/config"
	"foodshare-api/models"

	"github.com/gin-gonic/gin"
)

// One statement, so every counter reads the same snapshot.
const statsQuery = `
SELECT
	(SELECT COUNT(*) FROM food_donations) AS meals_shared,
	(SELECT COUNT(*) FROM food_donations WHERE collected = ?) AS meals_received,
	(SELECT COUNT(*) FROM food_donations WHERE collected = ?) AS active_donations,
	(SELECT COUNT(*) FROM users) AS total_users,
	(SELECT COUNT(*) FROM community_needs) AS community_needs`

// GetStats returns the dashboard counters
func GetStats(c *gin.Context) {
	var stats models.Stats
	if err := config.DB.Raw(statsQuery, true, false).Scan(&stats).Error; err != nil {
		requestLog(c).WithError(err).Error("Stats query failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"stats": stats})
}
