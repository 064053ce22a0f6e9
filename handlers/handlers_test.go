package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodshare-api/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB installs a fresh in-memory database as config.DB for one test
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func newRouter() *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", Health)
	api.POST("/register", Register)
	api.POST("/login", Login)
	api.POST("/donate-food", DonateFood)
	api.GET("/donations", GetAvailableDonations)
	api.GET("/user-donations/:donorName", GetUserDonations)
	api.GET("/users/:id/donations", GetDonationsByUserID)
	api.POST("/confirm-collection", ConfirmCollection)
	api.GET("/donation-lifecycle", GetDonationLifecycle)
	api.POST("/post-need", PostNeed)
	api.GET("/community-needs", GetCommunityNeeds)
	api.GET("/stats", GetStats)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func aliceRegistration() gin.H {
	return gin.H{
		"name":     "alice",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
		"userType": "individual",
		"location": "Main St",
	}
}

func breadDonation() gin.H {
	return gin.H{
		"foodName":  "Bread",
		"quantity":  5,
		"unit":      "loaves",
		"location":  "Main St",
		"donorName": "alice",
	}
}
