package realtime

import "time"

// Buffer sizes
const (
	// SubscriptionBuffer is the buffer size for each subscription's update channel
	SubscriptionBuffer = 16
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings to stream clients
	KeepaliveInterval = 30 * time.Second

	// ReconnectDelay is how long the listen loop waits after losing its connection
	ReconnectDelay = 5 * time.Second

	// unlistenTimeout bounds the cleanup of a listening connection
	unlistenTimeout = 2 * time.Second
)

// Stream event types
const (
	EventTypeConnected    = "connected"
	EventTypePlayerUpdate = "player.update"
	EventTypeKeepalive    = "keepalive"
)

// Log messages
const (
	LogMsgListening          = "Listening for player updates"
	LogMsgListenFailed       = "Player update listener disconnected"
	LogMsgPayloadRejected    = "Rejected player update payload"
	LogMsgUpdateDropped      = "Dropped player update for slow subscriber"
	LogMsgClientConnected    = "Realtime client connected"
	LogMsgClientDisconnected = "Realtime client disconnected"
	LogMsgWriteError         = "Failed to write realtime event"
)
