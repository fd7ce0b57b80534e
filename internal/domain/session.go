package domain

import "strings"

// SessionType identifies the kind of scheduled activity a player completes
type SessionType string

const (
	SessionTypeMatch     SessionType = "match"
	SessionTypeSocial    SessionType = "social"
	SessionTypeTraining  SessionType = "training"
	SessionTypeWellbeing SessionType = "wellbeing"
)

// AllSessionTypes lists the supported session types in display order
var AllSessionTypes = []SessionType{
	SessionTypeMatch,
	SessionTypeSocial,
	SessionTypeTraining,
	SessionTypeWellbeing,
}

// ParseSessionType converts a raw string into a SessionType.
// The second return value reports whether the input named a known type.
func ParseSessionType(raw string) (SessionType, bool) {
	st := SessionType(strings.ToLower(strings.TrimSpace(raw)))
	return st, st.IsValid()
}

// IsValid reports whether the session type is one of the supported types
func (s SessionType) IsValid() bool {
	switch s {
	case SessionTypeMatch, SessionTypeSocial, SessionTypeTraining, SessionTypeWellbeing:
		return true
	}
	return false
}

// IsCompetitive reports whether the session has an opponent whose level matters
func (s SessionType) IsCompetitive() bool {
	return s == SessionTypeMatch || s == SessionTypeSocial
}

// SessionContext is the input to a reward calculation. It is built per request
// and never persisted.
type SessionContext struct {
	SessionType     SessionType `json:"session_type"`
	PlayerLevel     int         `json:"player_level"`
	OpponentLevel   int         `json:"opponent_level"`
	StakesAmount    int         `json:"stakes_amount"`
	DurationMinutes int         `json:"duration_minutes"`
	IsWinner        bool        `json:"is_winner"`
}
