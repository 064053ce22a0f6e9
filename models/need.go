package models

import "time"

// DefaultUrgency is stored when a need is posted without one
const DefaultUrgency = "medium"

type CommunityNeed struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FoodName    string    `json:"foodName" gorm:"not null"`
	Quantity    float64   `json:"quantity" gorm:"not null"`
	Unit        string    `json:"unit" gorm:"not null"`
	Description string    `json:"description"`
	Location    string    `json:"location" gorm:"not null"`
	PostedBy    string    `json:"postedBy" gorm:"not null"`
	NeededBy    string    `json:"neededBy" gorm:"not null"`
	Urgency     string    `json:"urgency" gorm:"not null;default:'medium';index"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Stats is the dashboard snapshot served by /api/stats
type Stats struct {
	MealsShared     int64 `json:"mealsShared"`
	MealsReceived   int64 `json:"mealsReceived"`
	ActiveDonations int64 `json:"activeDonations"`
	TotalUsers      int64 `json:"totalUsers"`
	CommunityNeeds  int64 `json:"communityNeeds"`
}
