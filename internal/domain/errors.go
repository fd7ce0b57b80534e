package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Session errors
	ErrMsgInvalidSessionType = "invalid session type"
	ErrMsgInvalidDuration    = "duration must be positive"
	ErrMsgInvalidSessionID   = "invalid session id"
	ErrMsgConflictingOutcome = "winner_id and winning_team are mutually exclusive"
	ErrMsgSessionRolledBack  = "changes have been rolled back"
	ErrMsgRemoteRejected     = "remote procedure rejected the request"
	ErrMsgRemoteUnavailable  = "remote backend unavailable"
	ErrMsgMalformedResponse  = "malformed remote response"
	ErrMsgUnknownRPC         = "unknown remote procedure"

	// Payment errors
	ErrMsgUnknownTier           = "unknown club tier"
	ErrMsgUnknownTokenPack      = "unknown token pack"
	ErrMsgTokensExceedPrice     = "tokens exceed service price"
	ErrMsgNothingToCharge       = "nothing to charge"
	ErrMsgPaymentProviderFailed = "payment provider failed"

	// Auth errors
	ErrMsgUnauthenticated = "unauthenticated"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrInvalidSessionType = errors.New(ErrMsgInvalidSessionType)
	ErrInvalidDuration    = errors.New(ErrMsgInvalidDuration)
	ErrInvalidSessionID   = errors.New(ErrMsgInvalidSessionID)
	ErrConflictingOutcome = errors.New(ErrMsgConflictingOutcome)
	ErrSessionRolledBack  = errors.New(ErrMsgSessionRolledBack)
	ErrRemoteRejected     = errors.New(ErrMsgRemoteRejected)
	ErrRemoteUnavailable  = errors.New(ErrMsgRemoteUnavailable)
	ErrMalformedResponse  = errors.New(ErrMsgMalformedResponse)
	ErrUnknownRPC         = errors.New(ErrMsgUnknownRPC)

	ErrUnknownTier           = errors.New(ErrMsgUnknownTier)
	ErrUnknownTokenPack      = errors.New(ErrMsgUnknownTokenPack)
	ErrTokensExceedPrice     = errors.New(ErrMsgTokensExceedPrice)
	ErrNothingToCharge       = errors.New(ErrMsgNothingToCharge)
	ErrPaymentProviderFailed = errors.New(ErrMsgPaymentProviderFailed)

	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
