package domain

import "time"

// Remote procedures exposed by the hosted backend
const (
	RPCCompleteSessionUnified     = "complete_session_unified"
	RPCRestoreHP                  = "restore_hp"
	RPCAddXP                      = "add_xp"
	RPCAddCXP                     = "add_cxp"
	RPCProcessTokenRedemption     = "process_token_redemption"
	RPCInitializeMonthlyTokenPool = "initialize_monthly_token_pool"
)

// CompletionData is the free-form payload stored with a completed session
type CompletionData struct {
	SessionType     SessionType `json:"session_type"`
	DurationMinutes int         `json:"duration_minutes"`
	Score           string      `json:"score,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	PlayerLevel     int         `json:"player_level,omitempty"`
	OpponentLevel   int         `json:"opponent_level,omitempty"`
	StakesAmount    int         `json:"stakes_amount,omitempty"`
}

// CompletionRequest is the input to complete_session_unified.
// WinnerID and WinningTeam are mutually exclusive; both may be empty for
// non-competitive sessions.
type CompletionRequest struct {
	SessionID   string         `json:"session_id"`
	WinnerID    string         `json:"winner_id,omitempty"`
	WinningTeam string         `json:"winning_team,omitempty"`
	Data        CompletionData `json:"completion_data"`
}

// CompletionResult is the typed response of complete_session_unified
type CompletionResult struct {
	Success     bool    `json:"success"`
	TotalStakes int     `json:"total_stakes"`
	PlatformFee int     `json:"platform_fee"`
	NetPayout   int     `json:"net_payout"`
	WinnerID    *string `json:"winner_id"`
	Error       string  `json:"error,omitempty"`
	Rollback    bool    `json:"rollback,omitempty"`
}

// CompletionOutcome pairs the advisory preview with the authoritative result
type CompletionOutcome struct {
	Expected RewardBreakdown  `json:"expected"`
	Result   CompletionResult `json:"result"`
}

// HPRestoreRequest is the input to restore_hp
type HPRestoreRequest struct {
	UserID       string `json:"user_id"`
	Amount       int    `json:"restoration_amount"`
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
}

// HPRestoreResult is the typed response of restore_hp
type HPRestoreResult struct {
	Success    bool `json:"success"`
	PreviousHP int  `json:"previous_hp"`
	NewHP      int  `json:"new_hp"`
	MaxHP      int  `json:"max_hp"`
	Restored   int  `json:"restored"`
}

// XPAward is the input to add_xp
type XPAward struct {
	UserID       string `json:"user_id"`
	Amount       int    `json:"xp_amount"`
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
}

// XPResult is the typed response of add_xp
type XPResult struct {
	Success      bool `json:"success"`
	XPEarned     int  `json:"xp_earned"`
	TotalXP      int  `json:"total_xp"`
	CurrentLevel int  `json:"current_level"`
	LevelUp      bool `json:"level_up"`
	NewLevel     *int `json:"new_level"`
}

// CXPAward is the input to add_cxp
type CXPAward struct {
	CoachID      string `json:"coach_id"`
	Amount       int    `json:"cxp_amount"`
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
}

// CXPResult is the typed response of add_cxp
type CXPResult struct {
	Success      bool `json:"success"`
	CXPEarned    int  `json:"cxp_earned"`
	TotalCXP     int  `json:"total_cxp"`
	CurrentLevel int  `json:"current_level"`
	LevelUp      bool `json:"level_up"`
}

// TokenRedemption is the input to process_token_redemption.
// CashAmount is expressed in dollars with two decimal places.
type TokenRedemption struct {
	ClubID      string `json:"club_id"`
	PlayerID    string `json:"player_id"`
	ServiceType string `json:"service_type"`
	TokensUsed  int    `json:"tokens_used"`
	CashAmount  string `json:"cash_amount"`
	Description string `json:"description"`
}

// TokenRedemptionResult is the typed response of process_token_redemption
type TokenRedemptionResult struct {
	Success          bool    `json:"success"`
	RedemptionID     *string `json:"redemption_id"`
	TokensUsed       int     `json:"tokens_used"`
	RemainingBalance int     `json:"remaining_balance"`
	Error            string  `json:"error,omitempty"`
}

// TokenPoolInit is the input to initialize_monthly_token_pool
type TokenPoolInit struct {
	ClubID          string `json:"club_id"`
	MonthYear       string `json:"month_year"`
	AllocatedTokens int    `json:"allocated_tokens"`
}

// TokenPoolResult is the typed response of initialize_monthly_token_pool
type TokenPoolResult struct {
	Success         bool    `json:"success"`
	PoolID          *string `json:"pool_id"`
	ClubID          string  `json:"club_id"`
	MonthYear       string  `json:"month_year"`
	AllocatedTokens int     `json:"allocated_tokens"`
	Error           string  `json:"error,omitempty"`
}

// CompletionAudit records one attempt to complete a session
type CompletionAudit struct {
	ID          string
	SessionID   string
	RequestID   string
	RequestedBy string
	Success     bool
	Rollback    bool
	TotalStakes int
	PlatformFee int
	NetPayout   int
	Error       string
	CreatedAt   time.Time
}
