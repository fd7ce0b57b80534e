package domain

import "time"

// PlayerStatus is a snapshot of a player's HP and XP state
type PlayerStatus struct {
	PlayerID       string     `json:"player_id"`
	CurrentHP      int        `json:"current_hp"`
	MaxHP          int        `json:"max_hp"`
	CurrentLevel   int        `json:"current_level"`
	CurrentXP      int        `json:"current_xp"`
	TotalXPEarned  int        `json:"total_xp_earned"`
	XPToNextLevel  int        `json:"xp_to_next_level"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

// PlayerUpdateKind identifies which resource a realtime update concerns
type PlayerUpdateKind string

const (
	PlayerUpdateHP     PlayerUpdateKind = "hp"
	PlayerUpdateXP     PlayerUpdateKind = "xp"
	PlayerUpdateTokens PlayerUpdateKind = "tokens"
)

// PlayerUpdate is a change notification pushed by the backend
type PlayerUpdate struct {
	PlayerID string           `json:"player_id"`
	Kind     PlayerUpdateKind `json:"kind"`
	HP       *int             `json:"hp,omitempty"`
	XP       *int             `json:"xp,omitempty"`
	Level    *int             `json:"level,omitempty"`
	Tokens   *int             `json:"tokens,omitempty"`
}
