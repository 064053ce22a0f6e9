package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment
type Config struct {
	Port        string
	DBPath      string
	StaticDir   string
	LogLevel    string
	LogFile     string
	GinMode     string
	CORSOrigins []string
}

// AppConfig is the configuration loaded at startup
var AppConfig Config

// Load reads configuration from the environment, falling back to the dotenv
// file at envFile and then to defaults. Real environment variables always win.
func Load(envFile string) Config {
	fileVals, err := godotenv.Read(envFile)
	if err != nil {
		logrus.WithField("path", envFile).Debug("No env file found, relying on environment")
		fileVals = map[string]string{}
	}

	getEnv := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v := fileVals[key]; v != "" {
			return v
		}
		return fallback
	}

	AppConfig = Config{
		Port:        getEnv("PORT", "5000"),
		DBPath:      getEnv("DB_PATH", "foodshare.db"),
		StaticDir:   getEnv("STATIC_DIR", "public"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", "logs/foodshare.log"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
	if strings.EqualFold(AppConfig.LogFile, "off") {
		AppConfig.LogFile = ""
	}
	return AppConfig
}

// Validate rejects settings the server cannot start with
func (c Config) Validate() error {
	for _, o := range c.CORSOrigins {
		if !ValidOrigin(o) {
			return fmt.Errorf("invalid CORS_ORIGINS entry %q: expected \"*\" or scheme://host[:port]", o)
		}
	}
	return nil
}

// ValidOrigin reports whether o is "*" or an http(s) origin without a path
func ValidOrigin(o string) bool {
	if o == "*" {
		return true
	}
	u, err := url.Parse(o)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" &&
		(u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
