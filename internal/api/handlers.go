package api

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"fitgenius/internal/db"
	"fitgenius/internal/services"
)

const (
	authCookieName = "fitgenius_token"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

const contextUserKey = "current_user"

type Handler struct {
	db              *gorm.DB
	repositories    *db.Repositories
	secretKey       []byte
	cookieSecure    bool
	photoDir        string
	priceSource     services.PriceSource
	coach           *services.CoachService
	recoveryLimiter *attemptLimiter
}

// NewHandler wires the repositories, the simulated price source, and the
// coach engine. generator may be nil; the coach then serves only its
// deterministic fallbacks.
func NewHandler(database *gorm.DB, secretKey string, photoDir string, generator services.TextGenerator) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if photoDir == "" {
		photoDir = filepath.Join("data", "photos")
	}
	if err := os.MkdirAll(photoDir, 0o755); err != nil {
		return nil, err
	}

	return &Handler{
		db:              database,
		repositories:    db.NewRepositories(database),
		secretKey:       []byte(secretKey),
		cookieSecure:    os.Getenv("COOKIE_SECURE") == "true",
		photoDir:        photoDir,
		priceSource:     services.NewSimulatedPriceSource(),
		coach:           services.NewCoachService(generator),
		recoveryLimiter: newAttemptLimiter(),
	}, nil
}
