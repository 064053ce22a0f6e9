package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"foodshare-api/config"
	"foodshare-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupApp(t *testing.T) *gin.Engine {
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

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>FoodShare</h1>"), 0o644))
	return NewRouter([]string{"*"}, static)
}

func call(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func stat(t *testing.T, r *gin.Engine, key string) float64 {
	t.Helper()
	w, resp := call(t, r, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	return resp["stats"].(map[string]interface{})[key].(float64)
}

func TestDonationJourney(t *testing.T) {
	r := setupApp(t)

	w, _ := call(t, r, http.MethodPost, "/api/register", gin.H{
		"name": "Alice", "username": "alice", "email": "alice@example.com",
		"password": "secret123", "userType": "bakery", "location": "Main St",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := call(t, r, http.MethodPost, "/api/login", gin.H{"username": "alice", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bakery", resp["user"].(map[string]interface{})["userTypeLabel"])

	receivedBefore := stat(t, r, "mealsReceived")

	w, resp = call(t, r, http.MethodPost, "/api/donate-food", gin.H{
		"foodName": "Bread", "quantity": 5, "unit": "loaves",
		"location": "Main St", "donorName": "alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	donationID := resp["donationId"]

	w, resp = call(t, r, http.MethodGet, "/api/user-donations/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	donations := resp["donations"].([]interface{})
	require.Len(t, donations, 1)
	assert.Equal(t, false, donations[0].(map[string]interface{})["collected"])

	w, _ = call(t, r, http.MethodPost, "/api/confirm-collection", gin.H{"donationId": donationID})
	require.Equal(t, http.StatusOK, w.Code)

	_, resp = call(t, r, http.MethodGet, "/api/user-donations/alice", nil)
	assert.Equal(t, true, resp["donations"].([]interface{})[0].(map[string]interface{})["collected"])
	assert.Equal(t, receivedBefore+1, stat(t, r, "mealsReceived"))
	assert.Equal(t, float64(0), stat(t, r, "activeDonations"))
}

func TestNewRouter_Middleware(t *testing.T) {
	r := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_Fallbacks(t *testing.T) {
	r := setupApp(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/needs/board", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FoodShare")

	w, resp := call(t, r, http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Endpoint not found", resp["error"])
}
