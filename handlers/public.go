package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"foodshare-api/config"
	"foodshare-api/models"
	"foodshare-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and whether the database answers
func Health(c *gin.Context) {
	body := gin.H{
		"message":   "FoodShare backend is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "ok",
	}

	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		requestLog(c).WithError(err).Warn("Health check database ping failed")
		body["success"] = false
		body["database"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	respondOK(c, http.StatusOK, body)
}

// GetDonationLifecycle returns the donation state machine for informational purposes
func GetDonationLifecycle(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{
		"transitions":     statemachine.GetAllTransitions(),
		"initial_state":   models.StatusPending,
		"terminal_states": statemachine.TerminalStates(),
		"description":     "Food Donation Lifecycle: a donation is pending until its pickup is confirmed",
	})
}

// staticExtensions are the only file types served from the static directory
var staticExtensions = map[string]bool{
	".html": true, ".htm": true, ".css": true, ".js": true, ".mjs": true, ".map": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true, ".webp": true, ".ico": true,
	".woff": true, ".woff2": true, ".ttf": true, ".webmanifest": true,
}

// isStaticAsset reports whether a cleaned URL path may be served as a file.
// Hidden segments (".env", ".git/...") and non-asset types never are.
func isStaticAsset(cleaned string) bool {
	for _, seg := range strings.Split(cleaned, "/") {
		if strings.HasPrefix(seg, ".") {
			return false
		}
	}
	return staticExtensions[strings.ToLower(path.Ext(cleaned))]
}

// ServeFrontend is the catch-all: unknown API paths get a JSON 404, anything
// else gets a static asset or the single-page app document.
func ServeFrontend(staticDir string) gin.HandlerFunc {
	index := filepath.Join(staticDir, "index.html")
	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
			respondError(c, http.StatusNotFound, "Endpoint not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			respondError(c, http.StatusNotFound, "Not found")
			return
		}

		// Clean against a rooted path so ".." cannot climb out of staticDir
		cleaned := path.Clean("/" + urlPath)
		if isStaticAsset(cleaned) {
			file := filepath.Join(staticDir, filepath.FromSlash(cleaned))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}
		if _, err := os.Stat(index); err != nil {
			respondError(c, http.StatusNotFound, "Frontend not found")
			return
		}
		c.File(index)
	}
}
