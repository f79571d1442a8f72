package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/config"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/roommate-backend/internal/infrastructure/database"
	"github.com/gdugdh24/roommate-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/roommate-backend/internal/infrastructure/server"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"github.com/gdugdh24/roommate-backend/internal/repository/cache"
	"github.com/gdugdh24/roommate-backend/internal/repository/postgres"
	"github.com/gdugdh24/roommate-backend/internal/usecase/auth"
	"github.com/gdugdh24/roommate-backend/internal/usecase/discover"
	"github.com/gdugdh24/roommate-backend/internal/usecase/profile"
	"github.com/gdugdh24/roommate-backend/internal/usecase/request"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
	Log    *zap.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Log: log}

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c.DB = db

	var candidateCache repository.CandidateCache = cache.NopCandidateCache{}
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		candidateCache = cache.NewCandidateCache(redisClient, cfg.Matching.CandidateCacheTTL)
	}

	// The AI wingman is optional; without it accepted requests carry no summary.
	var wingman request.Wingman
	if cfg.Matching.AIWingman {
		geminiClient, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey, log.Named("gemini"))
		if err != nil {
			log.Warn("AI wingman disabled", zap.Error(err))
		} else {
			c.Gemini = geminiClient
			wingman = geminiClient
		}
	}

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	requestRepo := postgres.NewRequestRepository(db)

	// Initialize use cases
	discoverUseCase := discover.NewDiscoverUseCase(profileRepo, candidateCache, log.Named("discover"))
	profileUseCase := profile.NewProfileUseCase(profileRepo, candidateCache, log.Named("profile"))
	requestUseCase := request.NewRequestUseCase(
		requestRepo,
		profileRepo,
		wingman,
		cfg.Matching.AIWingman,
		log.Named("request"),
	)

	// Initialize HTTP layer
	router := http.NewRouter(
		handler.NewDiscoverHandler(discoverUseCase),
		handler.NewProfileHandler(profileUseCase),
		handler.NewRequestHandler(requestUseCase),
		middleware.NewAuthMiddleware(auth.NewTokenService(&cfg.JWT)),
		log.Named("http"),
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), log)
	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		if err := c.Gemini.Close(); err != nil {
			c.Log.Warn("error closing gemini client", zap.Error(err))
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
