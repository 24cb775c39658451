package session_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "propertyhub:session:"

// RedisStore хранит сессии в Redis, TTL ключа совпадает с ExpiresAt.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisClient разбирает REDIS_URL и проверяет соединение.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return &RedisStore{client: client, now: time.Now}, nil
}

// sessionRecord - формат записи в Redis.
type sessionRecord struct {
	ID        string           `json:"id"`
	Token     string           `json:"token"`
	User      domain.User      `json:"user"`
	Dashboard *dashboardRecord `json:"dashboard,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

type dashboardRecord struct {
	Tier         *domain.AgentTier    `json:"tier,omitempty"`
	Subscription *domain.Subscription `json:"subscription,omitempty"`
	Usage        domain.Usage         `json:"usage"`
}

func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "RedisSessionStore",
		"method":     "Save",
		"session_id": session.ID,
	})

	ttl := time.Duration(0)
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Delete(ctx, session.ID)
		}
	}

	record := sessionRecord{
		ID:        session.ID,
		Token:     session.Token,
		User:      session.User,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
	if session.Dashboard != nil {
		record.Dashboard = &dashboardRecord{
			Tier:         session.Dashboard.Tier,
			Subscription: session.Dashboard.Subscription,
			Usage:        session.Dashboard.Usage,
		}
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+session.ID, payload, ttl).Err(); err != nil {
		logger.Error("Failed to save session", err, nil)
		return fmt.Errorf("failed to save session: %w", err)
	}
	logger.Debug("Session saved", port.Fields{"ttl": ttl.String()})
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	session := &domain.Session{
		ID:        record.ID,
		Token:     record.Token,
		User:      record.User,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}
	if record.Dashboard != nil {
		session.Dashboard = &domain.Dashboard{
			Tier:         record.Dashboard.Tier,
			Subscription: record.Dashboard.Subscription,
			Usage:        record.Dashboard.Usage,
		}
	}
	if session.IsExpired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
