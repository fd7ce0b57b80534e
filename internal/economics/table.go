package economics

import (
	"sort"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// FallbackSessionType is used whenever a caller passes an unknown session type
const FallbackSessionType = domain.SessionTypeTraining

// Table maps each session type to its duration brackets.
// A Table is immutable after construction and safe for concurrent use.
type Table struct {
	brackets map[domain.SessionType][]domain.DurationBracket
}

// NewTable builds a table from explicit brackets. Brackets are sorted by
// duration; a session type without brackets falls back to training.
func NewTable(brackets map[domain.SessionType][]domain.DurationBracket) *Table {
	t := &Table{brackets: make(map[domain.SessionType][]domain.DurationBracket, len(brackets))}
	for st, rows := range brackets {
		sorted := make([]domain.DurationBracket, len(rows))
		copy(sorted, rows)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Minutes < sorted[j].Minutes })
		t.brackets[st] = sorted
	}
	return t
}

// DefaultTable returns the production reward table
func DefaultTable() *Table {
	return NewTable(map[domain.SessionType][]domain.DurationBracket{
		domain.SessionTypeMatch: {
			{Minutes: Bracket30, Reward: domain.Reward{XP: 40, HP: -10, Tokens: 8}},
			{Minutes: Bracket45, Reward: domain.Reward{XP: 55, HP: -14, Tokens: 10}},
			{Minutes: Bracket60, Reward: domain.Reward{XP: 70, HP: -18, Tokens: 12}},
			{Minutes: Bracket90, Reward: domain.Reward{XP: 95, HP: -25, Tokens: 15}},
			{Minutes: Bracket120, Reward: domain.Reward{XP: 120, HP: -32, Tokens: 18}},
		},
		domain.SessionTypeSocial: {
			{Minutes: Bracket30, Reward: domain.Reward{XP: 25, HP: -5, Tokens: 5}},
			{Minutes: Bracket45, Reward: domain.Reward{XP: 32, HP: -7, Tokens: 6}},
			{Minutes: Bracket60, Reward: domain.Reward{XP: 40, HP: -9, Tokens: 8}},
			{Minutes: Bracket90, Reward: domain.Reward{XP: 55, HP: -13, Tokens: 10}},
			{Minutes: Bracket120, Reward: domain.Reward{XP: 70, HP: -17, Tokens: 12}},
		},
		domain.SessionTypeTraining: {
			{Minutes: Bracket30, Reward: domain.Reward{XP: 30, HP: -8, Tokens: 5}},
			{Minutes: Bracket45, Reward: domain.Reward{XP: 40, HP: -11, Tokens: 7}},
			{Minutes: Bracket60, Reward: domain.Reward{XP: 50, HP: -14, Tokens: 9}},
			{Minutes: Bracket90, Reward: domain.Reward{XP: 70, HP: -20, Tokens: 12}},
			{Minutes: Bracket120, Reward: domain.Reward{XP: 90, HP: -26, Tokens: 15}},
		},
		domain.SessionTypeWellbeing: {
			{Minutes: Bracket30, Reward: domain.Reward{XP: 15, HP: 10, Tokens: 3}},
			{Minutes: Bracket45, Reward: domain.Reward{XP: 20, HP: 14, Tokens: 4}},
			{Minutes: Bracket60, Reward: domain.Reward{XP: 25, HP: 18, Tokens: 5}},
			{Minutes: Bracket90, Reward: domain.Reward{XP: 35, HP: 25, Tokens: 6}},
			{Minutes: Bracket120, Reward: domain.Reward{XP: 45, HP: 30, Tokens: 8}},
		},
	})
}

// Resolve returns the session type the table will actually use for st
func (t *Table) Resolve(st domain.SessionType) domain.SessionType {
	if _, ok := t.brackets[st]; ok {
		return st
	}
	return FallbackSessionType
}

// Brackets returns a copy of the brackets used for a session type
func (t *Table) Brackets(st domain.SessionType) []domain.DurationBracket {
	rows := t.brackets[t.Resolve(st)]
	out := make([]domain.DurationBracket, len(rows))
	copy(out, rows)
	return out
}

// Durations returns the bracket minutes for a session type, ascending
func (t *Table) Durations(st domain.SessionType) []int {
	rows := t.brackets[t.Resolve(st)]
	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = row.Minutes
	}
	return out
}

// BracketFor returns the bracket a duration falls into: the longest bracket
// not exceeding the duration. Durations shorter than the first bracket use
// the first bracket; longer than the last use the last.
func (t *Table) BracketFor(st domain.SessionType, durationMinutes int) domain.DurationBracket {
	rows := t.brackets[t.Resolve(st)]
	if len(rows) == 0 {
		return domain.DurationBracket{}
	}

	chosen := rows[0]
	for _, row := range rows[1:] {
		if row.Minutes > durationMinutes {
			break
		}
		chosen = row
	}
	return chosen
}

// BaseRewardFor looks up the base reward for a session type and duration
func (t *Table) BaseRewardFor(st domain.SessionType, durationMinutes int) domain.Reward {
	return t.BracketFor(st, durationMinutes).Reward
}

// LevelDifferenceCategory classifies the level gap between a player and an opponent
func LevelDifferenceCategory(playerLevel, opponentLevel int) domain.LevelDifferenceCategory {
	switch diff := playerLevel - opponentLevel; {
	case diff > 0:
		return domain.PlayerFavored
	case diff < 0:
		return domain.OpponentFavored
	default:
		return domain.LevelsEqual
	}
}

// Rake returns floor(stakes * percent / 100) without intermediate overflow.
// Negative stakes or percentages yield zero.
func Rake(stakes, percent int) int {
	if stakes <= 0 || percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return stakes
	}
	return stakes/100*percent + stakes%100*percent/100
}
