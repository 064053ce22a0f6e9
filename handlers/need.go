package handlers

import (
	"net/http"
	"strings"

	"foodshare-api/config"
	"foodshare-api/models"

	"github.com/gin-gonic/gin"
)

type PostNeedRequest struct {
	FoodName    string  `json:"foodName" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	PostedBy    string  `json:"postedBy" binding:"required"`
	NeededBy    string  `json:"neededBy" binding:"required"`
	Urgency     string  `json:"urgency"`
}

func normalizeUrgency(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// PostNeed records a community request for food
func PostNeed(c *gin.Context) {
	var req PostNeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(c, err)
		respondFail(c, "Missing required fields")
		return
	}

	urgency := normalizeUrgency(req.Urgency)
	if urgency == "" {
		urgency = models.DefaultUrgency
	}

	need := models.CommunityNeed{
		FoodName:    req.FoodName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Description: req.Description,
		Location:    req.Location,
		PostedBy:    req.PostedBy,
		NeededBy:    req.NeededBy,
		Urgency:     urgency,
	}
	if err := config.DB.Create(&need).Error; err != nil {
		requestLog(c).WithError(err).Error("Community need insert failed")
		respondError(c, http.StatusInternalServerError, "Failed to post need")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"message": "Community need posted successfully",
		"needId":  need.ID,
	})
}

// GetCommunityNeeds lists needs newest first, optionally filtered by urgency
func GetCommunityNeeds(c *gin.Context) {
	var needs []models.CommunityNeed
	query := config.DB.Order("created_at desc, id desc")

	if urgency := normalizeUrgency(c.Query("urgency")); urgency != "" && urgency != "all" {
		query = query.Where("urgency = ?", urgency)
	}

	if err := query.Find(&needs).Error; err != nil {
		requestLog(c).WithError(err).Error("Community needs fetch failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch community needs")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"count": len(needs), "needs": needs})
}
