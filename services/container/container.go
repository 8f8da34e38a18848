package container

import (
	"context"
	"log"
	"sync"
	"time"

	"event-feedback-service/config"
	"event-feedback-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer wires every service with its dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	sessionService *services.SessionService
	userService    *services.UserService
	ratingService  *services.RatingService
	speakerService *services.SpeakerService
	eventService   *services.EventService
	surveyService  *services.SurveyService
	searchService  *services.SearchService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis ping failed: %v, sessions will not survive until it recovers", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessionService = services.NewSessionService(c.config, c.redis)
	c.userService = services.NewUserService(c.db, c.config)
	c.ratingService = services.NewRatingService(c.db)
	c.speakerService = services.NewSpeakerService(c.db, c.config)
	c.eventService = services.NewEventService(c.db, c.config)
	c.surveyService = services.NewSurveyService(c.db, c.config, c.ratingService)
	c.searchService = services.NewSearchService(c.db)
}

// GetService returns the named service
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "session":
		return c.sessionService
	case "user":
		return c.userService
	case "rating":
		return c.ratingService
	case "speaker":
		return c.speakerService
	case "event":
		return c.eventService
	case "survey":
		return c.surveyService
	case "search":
		return c.searchService
	default:
		return nil
	}
}
