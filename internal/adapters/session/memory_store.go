package session_adapter

import (
	"context"
	"sync"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// MemoryStore - хранилище сессий в памяти процесса, используется без REDIS_URL.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session), now: time.Now}
}

func (s *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = cloneSession(*session)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if session.IsExpired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	out := cloneSession(session)
	return &out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// cloneSession копирует кабинет, чтобы вызывающий не менял сохраненную запись.
func cloneSession(s domain.Session) domain.Session {
	if s.Dashboard != nil {
		dashboard := *s.Dashboard
		if dashboard.Tier != nil {
			tier := *dashboard.Tier
			dashboard.Tier = &tier
		}
		if dashboard.Subscription != nil {
			sub := *dashboard.Subscription
			dashboard.Subscription = &sub
		}
		s.Dashboard = &dashboard
	}
	return s
}
