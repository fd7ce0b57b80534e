package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/auth"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
)

// Event is one message on the stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// FormatEvent renders event in text/event-stream framing
func FormatEvent(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"
	return []byte(msg), nil
}

// Handler streams the authenticated player's updates as server-sent events.
// allowed gates access per user; nil allows everyone.
func Handler(m *Manager, allowed func(userID string) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if allowed != nil && !allowed(userID) {
			http.Error(w, "Realtime updates are not available for this account", http.StatusForbidden)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming not supported", http.StatusInternalServerError)
			return
		}

		sub, err := m.Open(userID)
		if err != nil {
			http.Error(w, "Realtime updates are shutting down", http.StatusServiceUnavailable)
			return
		}
		defer sub.Close()

		log := logger.FromContext(r.Context()).With("subscription_id", sub.ID, "player_id", userID)
		log.Info(LogMsgClientConnected, "subscribers", m.SubscriberCount())
		defer log.Info(LogMsgClientDisconnected)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		write := func(event Event) bool {
			msg, err := FormatEvent(event)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Event{ID: sub.ID, Type: EventTypeConnected, Timestamp: time.Now().Unix(), Payload: map[string]string{"player_id": userID}}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case update, ok := <-sub.Updates():
				if !ok {
					return
				}
				if !write(Event{ID: uuid.NewString(), Type: EventTypePlayerUpdate, Timestamp: time.Now().Unix(), Payload: update}) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
