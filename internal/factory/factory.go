package factory

import (
	"errors"
	"io"
	"time"

	"github.com/sweepstats/sweepstats/internal/dependencies/clock"
	"github.com/sweepstats/sweepstats/internal/services/auth"
	"github.com/sweepstats/sweepstats/internal/services/stats"
	"github.com/sweepstats/sweepstats/internal/services/summary"
	"github.com/sweepstats/sweepstats/internal/services/token"
	"github.com/sweepstats/sweepstats/internal/storage"
	"github.com/sweepstats/sweepstats/internal/storage/memory"
	redisstorage "github.com/sweepstats/sweepstats/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService    *auth.Service
	TokenService   *token.Service
	StatsService   *stats.Service
	SummaryService *summary.Service
}

// Config holds configuration for the application factory
type Config struct {
	// TokenSecret is the signing key for bearer tokens (required)
	TokenSecret []byte
	// TokenTTL is the validity window of issued tokens (optional)
	// If zero, defaults to token.DefaultTTL
	TokenTTL time.Duration
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// Close releases the storage backend's resources
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, token.Config{
		Secret: cfg.TokenSecret,
		TTL:    cfg.TokenTTL,
	})
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, tokenCfg token.Config) (*App, error) {
	authService, err := auth.New(store, clk)
	if err != nil {
		return nil, err
	}

	// Fails fast when no signing secret is supplied
	tokenService, err := token.New(tokenCfg, clk)
	if err != nil {
		return nil, err
	}

	return &App{
		Storage:        store,
		Clock:          clk,
		AuthService:    authService,
		TokenService:   tokenService,
		StatsService:   stats.New(store, clk),
		SummaryService: summary.New(store),
	}, nil
}
