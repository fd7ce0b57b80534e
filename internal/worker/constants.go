package worker

import "time"

// Checkout sweeper defaults. Hosted checkout sessions lapse after a day on
// the provider side, so local records older than that can never complete.
const (
	DefaultCheckoutSweepInterval = 15 * time.Minute
	DefaultCheckoutMaxAge        = 24 * time.Hour
)

// Log messages for the checkout sweeper
const (
	LogMsgCheckoutSweepScheduled = "Checkout sweep scheduled"
	LogMsgCheckoutSweepCompleted = "Checkout sweep completed"
	LogMsgCheckoutSweepFailed    = "Checkout sweep failed"
	LogMsgCheckoutSweepStopping  = "Shutting down checkout sweeper"
	LogMsgCheckoutSweepStopped   = "Checkout sweeper shutdown complete"
	LogMsgCheckoutSweepTimeout   = "Checkout sweeper shutdown timeout"
)
