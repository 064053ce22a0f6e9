package models

import "time"

// DonationStatus is the lifecycle state of a donation, derived from the collected flag
type DonationStatus string

const (
	StatusPending   DonationStatus = "pending"
	StatusCollected DonationStatus = "collected"
)

type FoodDonation struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	FoodName    string     `json:"foodName" gorm:"not null"`
	Quantity    float64    `json:"quantity" gorm:"not null"`
	Unit        string     `json:"unit" gorm:"not null"`
	Description string     `json:"description"`
	PickupTime  string     `json:"pickupTime"`
	Location    string     `json:"location" gorm:"not null"`
	DonorName   string     `json:"donorName" gorm:"not null;index"`
	DonorID     *uint      `json:"donorId" gorm:"index"`
	Donor       *User      `json:"-" gorm:"foreignKey:DonorID"`
	DonorPhone  string     `json:"donorPhone"`
	Collected   bool       `json:"collected" gorm:"not null;default:false"`
	CollectedAt *time.Time `json:"collectedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Status maps the collected flag onto the lifecycle
func (d *FoodDonation) Status() DonationStatus {
	if d.Collected {
		return StatusCollected
	}
	return StatusPending
}
