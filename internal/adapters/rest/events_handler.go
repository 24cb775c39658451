package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

const keepAliveInterval = 15 * time.Second

// Events - поток SSE для вкладок пользователя: изменения лидов и кабинета.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	logger, session, _ := handlerContext(r, "Events")
	handlerLogger := logger.WithFields(port.Fields{"user_id": session.User.ID})
	handlerLogger.Info("New client subscribing to SSE events", nil)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := h.events.AddClient(session.User.ID)
	defer h.events.RemoveClient(session.User.ID, clientChan)

	flush := func() {
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}

	fmt.Fprintf(w, "event: connected\ndata: {}\n\n")
	flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-clientChan:
			if !ok {
				handlerLogger.Info("Event stream closed by server.", nil)
				return
			}
			if _, err := w.Write(data); err != nil {
				handlerLogger.Error("Error writing to client, closing SSE connection", err, nil)
				return
			}
			flush()
			handlerLogger.Debug("Sent SSE event to client", nil)

		case <-ticker.C:
			// строка с двоеточием - комментарий SSE, браузер его игнорирует
			if _, err := fmt.Fprintf(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flush()

		case <-r.Context().Done():
			handlerLogger.Info("SSE client disconnected.", nil)
			return
		}
	}
}
