package handlers

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"foodshare-api/config"
	"foodshare-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordCost is the bcrypt cost used for new accounts
const PasswordCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

const errInvalidCredentials = "Invalid username or password"

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash is compared against when the username is unknown, so both
// login failures cost one bcrypt comparison.
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("foodshare-placeholder"), PasswordCost)
		if err != nil {
			logrus.WithError(err).Error("Failed to build placeholder password hash")
			return
		}
		dummyHash = h
	})
	return dummyHash
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
	Location string `json:"location" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(c, err)
		respondFail(c, "All fields are required")
		return
	}
	if len(req.Password) > MaxPasswordBytes {
		respondFail(c, "Password must be at most 72 bytes")
		return
	}

	// Check username and email uniqueness without revealing which one clashed
	var existing int64
	if err := config.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&existing).Error; err != nil {
		requestLog(c).WithError(err).Error("Registration uniqueness check failed")
		respondError(c, http.StatusInternalServerError, "Registration failed")
		return
	}
	if existing > 0 {
		respondFail(c, "Username or email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), PasswordCost)
	if err != nil {
		requestLog(c).WithError(err).Error("Failed to hash password")
		respondError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     models.UserType(req.UserType),
		Location:     req.Location,
		Phone:        req.Phone,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			respondFail(c, "Username or email already exists")
			return
		}
		requestLog(c).WithError(err).Error("Failed to create user")
		respondError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	requestLog(c).WithField("user_id", user.ID).Info("User registered")
	respondOK(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    user.Response(),
	})
}

// Login checks a username/password pair. Unknown users and wrong passwords
// produce the same response.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(c, err)
		respondFail(c, "Username and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(req.Password))
			respondFail(c, errInvalidCredentials)
			return
		}
		requestLog(c).WithError(err).Error("Login lookup failed")
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondFail(c, errInvalidCredentials)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.Response(),
	})
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
