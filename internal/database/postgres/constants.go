package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// DefaultListLimit caps list queries when the caller passes no limit
const DefaultListLimit = 50

// Error Messages
const (
	ErrMsgFailedToRecordCompletion = "failed to record session completion"
	ErrMsgFailedToListCompletions  = "failed to list session completions"
	ErrMsgFailedToCreateCheckout   = "failed to create checkout record"
	ErrMsgFailedToUpdateCheckout   = "failed to update checkout status"
	ErrMsgFailedToListCheckouts    = "failed to list checkouts"
	ErrMsgFailedToExpireCheckouts  = "failed to expire stale checkouts"
	ErrMsgFailedToGetPlayerStatus  = "failed to get player status"
	ErrMsgCheckoutNotFound         = "checkout %s not found"
)
