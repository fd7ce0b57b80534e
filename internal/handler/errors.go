package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidClubID         = "Invalid club id"
	ErrMsgInvalidSessionType    = "Invalid session type"
	ErrMsgInvalidCashAmount     = "Invalid cash amount"
	ErrMsgUnauthenticated       = "Authentication required"
	ErrMsgStatusUnavailable     = "Player status is not available"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."
	ErrMsgPlayerNotFoundError   = "Player not found"
	ErrMsgSessionIDError        = "Invalid session id"
	ErrMsgSessionTypeError      = "Unknown session type"
	ErrMsgDurationError         = "Duration must be a positive number of minutes"
	ErrMsgConflictingOutcomeErr = "Provide either winner_id or winning_team, not both"
	ErrMsgRolledBackError       = "Session could not be completed; changes have been rolled back"
	ErrMsgRejectedError         = "The request was rejected"
	ErrMsgBadGatewayError       = "The backend returned an unexpected response"
	ErrMsgUnknownTierError      = "Unknown club tier"
	ErrMsgUnknownPackError      = "Unknown token pack"
	ErrMsgTokensExceedPriceErr  = "Tokens are worth more than the service price"
	ErrMsgNothingToChargeError  = "There is nothing to charge"
	ErrMsgPaymentProviderError  = "Payment provider is unavailable. Please try again later."
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode %s request"
	LogMsgRequestDecoded  = "%s request decoded"
	LogMsgServiceError    = "Service call failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
)
