package middleware

import (
	"time"

	"foodshare-api/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CORS allows the browser frontend to call the API. A "*" entry (or an empty
// list) opens the API to every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(origins) == 0
	var allowed []string
	for _, o := range origins {
		switch {
		case o == "*":
			allowAll = true
		case config.ValidOrigin(o):
			allowed = append(allowed, o)
		default:
			logrus.WithField("origin", o).Warn("Ignoring malformed CORS origin")
		}
	}

	switch {
	case allowAll:
		cfg.AllowAllOrigins = true
	case len(allowed) > 0:
		cfg.AllowOrigins = allowed
	default:
		// nothing usable was configured: refuse every cross-origin request
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(cfg)
}
