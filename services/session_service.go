package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"event-feedback-service/config"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionData is the server-side session record kept in Redis. The browser
// only ever holds a signed token referencing it, so logout can revoke the
// session without waiting for the cookie to expire.
type SessionData struct {
	UserID  uint     `json:"user_id"`
	Flashes []string `json:"flashes,omitempty"`
}

// SessionService issues and resolves login sessions
type SessionService struct {
	Client *redis.Client
	Config *config.Config
	Ctx    context.Context
}

// NewSessionService creates a new session service
func NewSessionService(cfg *config.Config, client *redis.Client) *SessionService {
	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	return &SessionService{
		Client: client,
		Config: cfg,
		Ctx:    context.Background(),
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create opens a session for the user and returns the signed cookie value
func (s *SessionService) Create(userID uint) (string, error) {
	sid := uuid.NewString()

	data := SessionData{UserID: userID}
	if err := s.save(sid, &data, s.Config.SessionTTL()); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid":     sid,
		"user_id": userID,
		"exp":     time.Now().Add(s.Config.SessionTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Config.SessionSecret))
}

// Resolve verifies a cookie value and loads the session it references.
// Returns ErrNoSession when the record was revoked or has expired.
func (s *SessionService) Resolve(cookieValue string) (string, *SessionData, error) {
	sid, err := s.sessionID(cookieValue)
	if err != nil {
		return "", nil, err
	}

	data, err := s.load(sid)
	if err != nil {
		return "", nil, err
	}
	return sid, data, nil
}

// Destroy revokes the session referenced by a cookie value
func (s *SessionService) Destroy(cookieValue string) error {
	sid, err := s.sessionID(cookieValue)
	if err != nil {
		return err
	}
	return s.Client.Del(s.Ctx, sessionKey(sid)).Err()
}

// AddFlash appends a one-shot notice to the session
func (s *SessionService) AddFlash(sid, message string) error {
	data, err := s.load(sid)
	if err != nil {
		return err
	}
	data.Flashes = append(data.Flashes, message)
	return s.save(sid, data, redis.KeepTTL)
}

// PopFlashes returns and clears the session's pending notices
func (s *SessionService) PopFlashes(sid string) ([]string, error) {
	data, err := s.load(sid)
	if err != nil {
		return nil, err
	}
	flashes := data.Flashes
	if len(flashes) == 0 {
		return nil, nil
	}
	data.Flashes = nil
	if err := s.save(sid, data, redis.KeepTTL); err != nil {
		return nil, err
	}
	return flashes, nil
}

// sessionID verifies the token signature and extracts the session id
func (s *SessionService) sessionID(cookieValue string) (string, error) {
	token, err := jwt.Parse(cookieValue, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.Config.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}

func (s *SessionService) load(sid string) (*SessionData, error) {
	val, err := s.Client.Get(s.Ctx, sessionKey(sid)).Result()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *SessionService) save(sid string, data *SessionData, ttl time.Duration) error {
	jsonValue, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, sessionKey(sid), jsonValue, ttl).Err()
}
