package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/google/uuid"
)

// SessionService - единственный владелец изменений сессии. Хендлеры читают
// снимок из контекста, а все записи в хранилище проходят здесь.
type SessionService struct {
	store    port.SessionStorePort
	tokens   port.TokenInspectorPort
	users    port.UserAPIPort
	notifier port.NotifierPort
	ttl      time.Duration
	now      func() time.Time
	onEnded  []func(sessionID string)
}

func NewSessionService(
	store port.SessionStorePort,
	tokens port.TokenInspectorPort,
	users port.UserAPIPort,
	notifier port.NotifierPort,
	ttl time.Duration,
) *SessionService {
	return &SessionService{
		store:    store,
		tokens:   tokens,
		users:    users,
		notifier: notifier,
		ttl:      ttl,
		now:      time.Now,
	}
}

// OnSessionEnded регистрирует обработчик закрытия сессии: выход или истечение срока.
// Вызывать до начала обслуживания запросов.
func (s *SessionService) OnSessionEnded(fn func(sessionID string)) {
	s.onEnded = append(s.onEnded, fn)
}

func (s *SessionService) ended(sessionID string) {
	for _, fn := range s.onEnded {
		fn(sessionID)
	}
}

// open создает сессию по ответу аутентификации. Срок жизни берется из exp токена,
// если он раньше настроенного TTL.
func (s *SessionService) open(ctx context.Context, auth *domain.AuthResult) (*domain.Session, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "SessionService"})

	now := s.now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		Token:     auth.Token,
		User:      auth.User,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if s.tokens != nil {
		info, err := s.tokens.Inspect(auth.Token)
		if err != nil {
			logger.Warn("Could not read token claims, using configured TTL", port.Fields{"error": err.Error()})
		} else {
			if info.ExpiresAt != nil && info.ExpiresAt.Before(session.ExpiresAt) {
				session.ExpiresAt = *info.ExpiresAt
			}
			if session.User.UserType == "" {
				if ut := domain.UserType(info.Role); ut == domain.UserTypeAgent || ut == domain.UserTypeOwner || ut == domain.UserTypeAdmin || ut == domain.UserTypeUser {
					session.User.UserType = ut
				}
			}
			if session.User.ID == "" {
				session.User.ID = info.Subject
			}
		}
	}

	if session.IsExpired(now) {
		return nil, fmt.Errorf("%w: token already expired", domain.ErrUnauthorized)
	}

	if err := s.store.Save(ctx, session); err != nil {
		logger.Error("Failed to save session", err, nil)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session opened", port.Fields{"session_id": session.ID, "user_id": session.User.ID})
	return session, nil
}

// load возвращает действующую сессию, просроченные удаляются.
func (s *SessionService) load(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(s.now()) {
		_ = s.store.Delete(ctx, id)
		s.ended(id)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) close(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}
	s.ended(id)
	return session, nil
}

// refreshDashboard перечитывает кабинет. При ошибке сохраненный снимок не меняется.
func (s *SessionService) refreshDashboard(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	dashboard, err := s.users.GetDashboard(ctx, session.Token)
	if err != nil {
		return session, fmt.Errorf("failed to refresh dashboard: %w", err)
	}

	session.Dashboard = dashboard
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.notify(ctx, port.UserEvent{Type: port.EventDashboardUpdated, UserID: session.User.ID, Data: dashboard})
	return session, nil
}

func (s *SessionService) replaceUser(ctx context.Context, id string, user domain.User) error {
	session, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	session.User = user
	return s.store.Save(ctx, session)
}

func (s *SessionService) notify(ctx context.Context, event port.UserEvent) {
	if s.notifier == nil || event.UserID == "" {
		return
	}
	s.notifier.Notify(ctx, event)
}

// isNotFound - сессия отсутствует или уже закрыта.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrSessionNotFound)
}
