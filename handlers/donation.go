package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodshare-api/config"
	"foodshare-api/models"
	"foodshare-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrDonationNotFound is returned when a confirmation targets no row
var ErrDonationNotFound = errors.New("donation not found")

type DonateFoodRequest struct {
	FoodName    string  `json:"foodName" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Description string  `json:"description"`
	PickupTime  string  `json:"pickupTime"`
	Location    string  `json:"location" binding:"required"`
	DonorName   string  `json:"donorName" binding:"required_without=DonorID"`
	DonorPhone  string  `json:"donorPhone"`
	DonorID     *uint   `json:"donorId"`
}

type ConfirmCollectionRequest struct {
	DonationID uint `json:"donationId" binding:"required"`
}

// DonateFood records a new pending donation
func DonateFood(c *gin.Context) {
	var req DonateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(c, err)
		respondFail(c, "Missing required fields")
		return
	}

	donation := models.FoodDonation{
		FoodName:    req.FoodName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Description: req.Description,
		PickupTime:  req.PickupTime,
		Location:    req.Location,
		DonorName:   req.DonorName,
		DonorPhone:  req.DonorPhone,
		Collected:   false,
	}

	// Donor identity comes from the user record when an ID is supplied
	if req.DonorID != nil {
		var donor models.User
		if err := config.DB.First(&donor, *req.DonorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondFail(c, "Donor not found")
				return
			}
			requestLog(c).WithError(err).Error("Donor lookup failed")
			respondError(c, http.StatusInternalServerError, "Donation submission failed")
			return
		}
		donation.DonorID = &donor.ID
		donation.DonorName = donor.Name
		if donation.DonorPhone == "" {
			donation.DonorPhone = donor.Phone
		}
	}

	if err := config.DB.Create(&donation).Error; err != nil {
		requestLog(c).WithError(err).Error("Donation insert failed")
		respondError(c, http.StatusInternalServerError, "Donation submission failed")
		return
	}

	requestLog(c).WithField("donation_id", donation.ID).Info("Donation submitted")
	respondOK(c, http.StatusCreated, gin.H{
		"message":    "Food donation submitted successfully",
		"donationId": donation.ID,
	})
}

// GetAvailableDonations lists every donation still waiting for pickup
func GetAvailableDonations(c *gin.Context) {
	var donations []models.FoodDonation
	if err := config.DB.Where("collected = ?", false).
		Order("created_at desc, id desc").
		Find(&donations).Error; err != nil {
		requestLog(c).WithError(err).Error("Donations fetch failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}

// GetUserDonations lists donations recorded under a donor display name
func GetUserDonations(c *gin.Context) {
	var donations []models.FoodDonation
	if err := config.DB.Where("donor_name = ?", c.Param("donorName")).
		Order("created_at desc, id desc").
		Find(&donations).Error; err != nil {
		requestLog(c).WithError(err).Error("User donations fetch failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}

// GetDonationsByUserID lists donations linked to a registered user
func GetDonationsByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondFail(c, "Invalid user ID")
		return
	}

	var donations []models.FoodDonation
	if err := config.DB.Where("donor_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&donations).Error; err != nil {
		requestLog(c).WithError(err).Error("User donations fetch failed")
		respondError(c, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}

// ConfirmCollection marks a donation as picked up. Confirming an already
// collected donation succeeds without changing anything.
func ConfirmCollection(c *gin.Context) {
	var req ConfirmCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(c, err)
		respondFail(c, "Donation ID is required")
		return
	}

	alreadyCollected := false
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var donation models.FoodDonation
		if err := tx.First(&donation, req.DonationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDonationNotFound
			}
			return err
		}

		if err := statemachine.CanTransition(donation.Status(), models.StatusCollected); err != nil {
			if errors.Is(err, statemachine.ErrAlreadyInState) {
				alreadyCollected = true
				return nil
			}
			return err
		}

		now := time.Now()
		return tx.Model(&donation).Updates(map[string]interface{}{
			"collected":    true,
			"collected_at": now,
		}).Error
	})

	switch {
	case errors.Is(err, ErrDonationNotFound):
		respondFail(c, "Donation not found")
		return
	case err != nil:
		requestLog(c).WithError(err).WithField("donation_id", req.DonationID).Error("Collection confirmation failed")
		respondError(c, http.StatusInternalServerError, "Confirmation failed")
		return
	}

	message := "Collection confirmed successfully"
	if alreadyCollected {
		message = "Donation was already collected"
	} else {
		requestLog(c).WithField("donation_id", req.DonationID).Info("Donation collected")
	}
	respondOK(c, http.StatusOK, gin.H{
		"message":    message,
		"donationId": req.DonationID,
		"collected":  true,
	})
}
