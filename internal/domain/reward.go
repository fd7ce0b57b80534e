package domain

// LevelDifferenceCategory describes who is favored by the level gap between
// a player and their opponent
type LevelDifferenceCategory string

const (
	LevelsEqual     LevelDifferenceCategory = "equal_levels"
	PlayerFavored   LevelDifferenceCategory = "player_favored"
	OpponentFavored LevelDifferenceCategory = "opponent_favored"
)

// Reward is a single set of XP/HP/token deltas.
// HP is signed: negative values are a cost, positive values restore HP.
type Reward struct {
	XP     int `json:"xp"`
	HP     int `json:"hp"`
	Tokens int `json:"tokens"`
}

// HPCost returns the HP the reward consumes, or zero for restorative rewards
func (r Reward) HPCost() int {
	if r.HP < 0 {
		return -r.HP
	}
	return 0
}

// RewardBreakdown is the full result of a reward calculation for both outcomes
type RewardBreakdown struct {
	WinXP      int `json:"win_xp"`
	WinHP      int `json:"win_hp"`
	WinTokens  int `json:"win_tokens"`
	LoseXP     int `json:"lose_xp"`
	LoseHP     int `json:"lose_hp"`
	LoseTokens int `json:"lose_tokens"`

	Stakes    int `json:"stakes"`
	Rake      int `json:"rake"`
	NetPayout int `json:"net_payout"`

	LevelDifference LevelDifferenceCategory `json:"level_difference"`

	// Projected is the side of the breakdown matching the requested outcome
	Projected Reward `json:"projected"`
}

// Win returns the winner's side of the breakdown
func (b RewardBreakdown) Win() Reward {
	return Reward{XP: b.WinXP, HP: b.WinHP, Tokens: b.WinTokens}
}

// Lose returns the loser's side of the breakdown
func (b RewardBreakdown) Lose() Reward {
	return Reward{XP: b.LoseXP, HP: b.LoseHP, Tokens: b.LoseTokens}
}

// CostBreakdown is the subset of a breakdown shown before a session starts
type CostBreakdown struct {
	HPChange    int `json:"hp_change"`
	HPCost      int `json:"hp_cost"`
	XP          int `json:"xp"`
	Tokens      int `json:"tokens"`
	ProjectedHP int `json:"projected_hp"`
}

// SessionPreview is the presentation aggregate for the duration picker
type SessionPreview struct {
	PreSessionText string        `json:"pre_session_text"`
	CostBreakdown  CostBreakdown `json:"cost_breakdown"`
	SmartWarnings  []string      `json:"smart_warnings"`
}

// DurationBracket is one row of the economics table
type DurationBracket struct {
	Minutes int    `json:"minutes"`
	Reward  Reward `json:"reward"`
}
