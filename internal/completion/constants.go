package completion

// Activity types recorded with gateway awards when the caller gives none
const (
	DefaultXPActivity  = "session"
	DefaultHPActivity  = "wellbeing"
	DefaultCXPActivity = "coaching"
)

// Error message templates
const (
	ErrMsgWinnerNotUUID     = "%w: winner_id must be a uuid"
	ErrMsgAmountNotPositive = "%w: amount must be positive"
	ErrMsgMissingUser       = "%w: user id is required"
)

// Log messages
const (
	LogMsgCompletingSession = "Completing session"
	LogMsgSessionCompleted  = "Session completed"
	LogMsgAuditFailed       = "Failed to record session completion audit"
	LogMsgHPRestored        = "HP restored"
	LogMsgXPAwarded         = "XP awarded"
	LogMsgCXPAwarded        = "Coach XP awarded"
)
