package models

import (
	"time"
)

// UserType is the kind of account a member registered as
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeRestaurant UserType = "restaurant"
	UserTypeBakery     UserType = "bakery"
	UserTypeGrocery    UserType = "grocery"
	UserTypeCatering   UserType = "catering"
	UserTypeCharity    UserType = "charity"
)

var userTypeLabels = map[UserType]string{
	UserTypeIndividual: "Individual/Family",
	UserTypeRestaurant: "Restaurant/Cafe",
	UserTypeBakery:     "Bakery",
	UserTypeGrocery:    "Grocery Store",
	UserTypeCatering:   "Catering Service",
	UserTypeCharity:    "Charity/Organization",
}

// Label returns the display label, "User" for anything unrecognized
func (t UserType) Label() string {
	if label, ok := userTypeLabels[t]; ok {
		return label
	}
	return "User"
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	UserType     UserType  `json:"userType" gorm:"not null"`
	Location     string    `json:"location" gorm:"not null"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserResponse is the client-facing view of a user; it never carries the hash
type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	UserType      UserType  `json:"userType"`
	UserTypeLabel string    `json:"userTypeLabel"`
	Location      string    `json:"location"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		Email:         u.Email,
		UserType:      u.UserType,
		UserTypeLabel: u.UserType.Label(),
		Location:      u.Location,
		Phone:         u.Phone,
		CreatedAt:     u.CreatedAt,
	}
}
