package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/metrics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
)

// ErrManagerClosed is returned by Open after Close
var ErrManagerClosed = errors.New("realtime manager closed")

// UpdateHandler observes every update before it is fanned out
type UpdateHandler func(ctx context.Context, update domain.PlayerUpdate)

// Listener delivers raw notification payloads from a channel until ctx is
// done or the underlying connection fails
type Listener interface {
	Listen(ctx context.Context, channel string, deliver func(payload string)) error
}

// Subscription receives the updates for one player. Close releases it; it is
// safe to call more than once and after the manager has closed.
type Subscription struct {
	ID       string
	PlayerID string

	ch      chan domain.PlayerUpdate
	manager *Manager
	once    sync.Once
}

// Updates is closed when the subscription or its manager closes
func (s *Subscription) Updates() <-chan domain.PlayerUpdate {
	return s.ch
}

// Close unregisters the subscription and closes its channel
func (s *Subscription) Close() {
	s.manager.remove(s)
}

// Manager owns the lifecycle of player update subscriptions and the listen
// loop feeding them
type Manager struct {
	listener       Listener
	schemas        validation.SchemaValidator
	channel        string
	reconnectDelay time.Duration

	mu       sync.RWMutex
	subs     map[string]map[string]*Subscription
	handlers []UpdateHandler
	closed   bool
}

// NewManager creates a manager that listens on channel
func NewManager(listener Listener, schemas validation.SchemaValidator, channel string) *Manager {
	return &Manager{
		listener:       listener,
		schemas:        schemas,
		channel:        channel,
		reconnectDelay: ReconnectDelay,
		subs:           make(map[string]map[string]*Subscription),
	}
}

// OnUpdate registers h to run for every dispatched update
func (m *Manager) OnUpdate(h UpdateHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, h)
}

// Open subscribes to playerID's updates
func (m *Manager) Open(playerID string) (*Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrManagerClosed
	}

	sub := &Subscription{
		ID:       uuid.NewString(),
		PlayerID: playerID,
		ch:       make(chan domain.PlayerUpdate, SubscriptionBuffer),
		manager:  m,
	}
	if m.subs[playerID] == nil {
		m.subs[playerID] = make(map[string]*Subscription)
	}
	m.subs[playerID][sub.ID] = sub
	metrics.RealtimeSubscribers.Inc()
	return sub, nil
}

func (m *Manager) remove(sub *Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub.once.Do(func() {
		if byID, ok := m.subs[sub.PlayerID]; ok {
			delete(byID, sub.ID)
			if len(byID) == 0 {
				delete(m.subs, sub.PlayerID)
			}
		}
		close(sub.ch)
		metrics.RealtimeSubscribers.Dec()
	})
}

// SubscriberCount returns the number of open subscriptions
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, byID := range m.subs {
		n += len(byID)
	}
	return n
}

// Dispatch runs the registered handlers and then delivers update to the
// player's subscriptions. Delivery never blocks: a full subscription misses
// the update.
func (m *Manager) Dispatch(ctx context.Context, update domain.PlayerUpdate) {
	m.mu.RLock()
	handlers := m.handlers
	m.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, update)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subs[update.PlayerID] {
		select {
		case sub.ch <- update:
		default:
			metrics.RealtimeDropped.Inc()
			logger.FromContext(ctx).Debug(LogMsgUpdateDropped, "subscription_id", sub.ID, "player_id", update.PlayerID)
		}
	}
}

// HandlePayload validates a raw notification and dispatches it
func (m *Manager) HandlePayload(ctx context.Context, payload string) error {
	var update domain.PlayerUpdate
	if err := m.schemas.Decode([]byte(payload), validation.SchemaPlayerUpdate, &update); err != nil {
		return err
	}
	m.Dispatch(ctx, update)
	return nil
}

// Start runs the listen loop until ctx is cancelled, reconnecting after
// ReconnectDelay whenever the listener fails
func (m *Manager) Start(ctx context.Context) {
	log := logger.FromContext(ctx)
	deliver := func(payload string) {
		if err := m.HandlePayload(ctx, payload); err != nil {
			log.Warn(LogMsgPayloadRejected, "channel", m.channel, "error", err)
		}
	}

	for {
		log.Info(LogMsgListening, "channel", m.channel)
		err := m.listener.Listen(ctx, m.channel, deliver)
		if ctx.Err() != nil {
			return
		}
		log.Warn(LogMsgListenFailed, "channel", m.channel, "error", err, "retry_in", m.reconnectDelay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(m.reconnectDelay):
		}
	}
}

// Close closes every subscription; later Open calls fail with ErrManagerClosed
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true

	var all []*Subscription
	for _, byID := range m.subs {
		for _, sub := range byID {
			all = append(all, sub)
		}
	}
	m.mu.Unlock()

	for _, sub := range all {
		sub.Close()
	}
}
