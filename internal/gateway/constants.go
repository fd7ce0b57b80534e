package gateway

import "time"

// DefaultTimeout bounds a single remote call when none is configured
const DefaultTimeout = 5 * time.Second

// Schema that qualifies every hosted function
const functionSchema = "public"

// Parameter names of the hosted functions
const (
	ParamSessionID      = "session_id_param"
	ParamWinnerID       = "winner_id_param"
	ParamWinningTeam    = "winning_team_param"
	ParamCompletionData = "completion_data_param"

	ParamUserID            = "user_id"
	ParamCoachID           = "coach_id"
	ParamRestorationAmount = "restoration_amount"
	ParamXPAmount          = "xp_amount"
	ParamCXPAmount         = "cxp_amount"
	ParamActivityType      = "activity_type"
	ParamDescription       = "description"

	ParamClubID          = "club_id"
	ParamPlayerID        = "player_id"
	ParamServiceType     = "service_type"
	ParamTokensUsed      = "tokens_used"
	ParamCashAmount      = "cash_amount"
	ParamMonthYear       = "month_year"
	ParamAllocatedTokens = "allocated_tokens"
)

// Error message templates
const (
	ErrMsgInvalidParamName = "invalid parameter name %q"
	ErrMsgRemoteFailed     = "%w: %s: %v"
	ErrMsgNullResponse     = "%w: %s returned null"
	ErrMsgBadResponse      = "%w: %s: %v"
	ErrMsgRejected         = "%w: %s: %s"
)

// Log messages
const (
	LogMsgCallingRemote   = "Calling hosted function"
	LogMsgRemoteFailed    = "Hosted function call failed"
	LogMsgRemoteMalformed = "Hosted function returned a malformed response"
	LogMsgRemoteRejected  = "Hosted function rejected the request"
	LogMsgRolledBack      = "Session completion rolled back by backend"
)
