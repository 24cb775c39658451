package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

// ClientChannel - канал одной открытой вкладки.
type ClientChannel chan []byte

type eventWithContext struct {
	ctx   context.Context
	event port.UserEvent
}

// SSENotifier - реализация NotifierPort. Рассылает события всем вкладкам пользователя.
type SSENotifier struct {
	// ключ - ID пользователя, у одного пользователя может быть несколько вкладок
	clients map[string][]ClientChannel
	mu      sync.RWMutex
	closed  bool

	eventChan chan eventWithContext
	done      chan struct{}
	closeOnce sync.Once

	logger port.LoggerPort
}

// NewSSENotifier создает и запускает новый нотификатор
func NewSSENotifier(baseLogger port.LoggerPort) *SSENotifier {
	n := &SSENotifier{
		clients:   make(map[string][]ClientChannel),
		eventChan: make(chan eventWithContext, 100),
		done:      make(chan struct{}),
		logger:    baseLogger.WithFields(port.Fields{"component": "SSENotifier"}),
	}

	go n.dispatcher()
	return n
}

func (n *SSENotifier) dispatcher() {
	n.logger.Debug("Notifier dispatcher started.", nil)
	for {
		select {
		case <-n.done:
			n.logger.Debug("Notifier dispatcher stopped.", nil)
			return
		case pkg := <-n.eventChan:
			n.dispatch(pkg.ctx, pkg.event)
		}
	}
}

func (n *SSENotifier) dispatch(ctx context.Context, event port.UserEvent) {
	eventLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "SSENotifier.dispatcher",
		"event_type": event.Type,
		"user_id":    event.UserID,
	})

	data, err := json.Marshal(event.Data)
	if err != nil {
		eventLogger.Error("Failed to marshal event", err, nil)
		return
	}
	message := []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event.Type, data))

	n.mu.RLock()
	defer n.mu.RUnlock()

	channels, found := n.clients[event.UserID]
	if !found {
		eventLogger.Debug("No active clients for user, event dropped.", nil)
		return
	}
	for _, ch := range channels {
		// переполненная вкладка пропускает событие, остальные получают
		select {
		case ch <- message:
		default:
			eventLogger.Warn("Client channel is full, skipping.", nil)
		}
	}
}

// Notify кладет событие во внутреннюю очередь. После Close события отбрасываются.
func (n *SSENotifier) Notify(ctx context.Context, event port.UserEvent) {
	if event.UserID == "" {
		return
	}
	select {
	case <-n.done:
	case n.eventChan <- eventWithContext{ctx: ctx, event: event}:
	}
}

// AddClient регистрирует SSE-соединение пользователя. После Close возвращает
// уже закрытый канал.
func (n *SSENotifier) AddClient(userID string) ClientChannel {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(ClientChannel, 100)
	if n.closed {
		close(ch)
		return ch
	}
	n.clients[userID] = append(n.clients[userID], ch)

	n.logger.Info("Client connected for user", port.Fields{
		"user_id":                    userID,
		"total_connections_for_user": len(n.clients[userID]),
	})
	return ch
}

// RemoveClient удаляет канал при закрытии соединения.
func (n *SSENotifier) RemoveClient(userID string, ch ClientChannel) {
	n.mu.Lock()
	defer n.mu.Unlock()

	channels, found := n.clients[userID]
	if !found {
		return
	}
	remaining := make([]ClientChannel, 0, len(channels))
	for _, c := range channels {
		if c != ch {
			remaining = append(remaining, c)
		}
	}

	if len(remaining) == 0 {
		delete(n.clients, userID)
		n.logger.Debug("Last client disconnected for user. User removed.", port.Fields{"user_id": userID})
		return
	}
	n.clients[userID] = remaining
	n.logger.Info("Client disconnected for user.", port.Fields{
		"user_id":               userID,
		"remaining_connections": len(remaining),
	})
}

// Close останавливает диспетчер и закрывает каналы всех вкладок, чтобы
// SSE-обработчики завершились до остановки HTTP-сервера.
func (n *SSENotifier) Close() {
	n.closeOnce.Do(func() {
		close(n.done)

		n.mu.Lock()
		defer n.mu.Unlock()
		n.closed = true
		for userID, channels := range n.clients {
			for _, ch := range channels {
				close(ch)
			}
			delete(n.clients, userID)
		}
	})
}
