package rewards

import (
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/economics"
)

// IsSessionTooRisky reports whether the requested session would take the
// player's HP below zero. Restorative sessions are never risky.
func (c *calculator) IsSessionTooRisky(currentHP int, sessionType domain.SessionType, durationMinutes int) bool {
	cost := c.table.BaseRewardFor(sessionType, durationMinutes).HPCost()
	return clampHP(currentHP)-cost < economics.MinHPAfterSession
}

// SuggestAlternativeDurations returns every bracket no longer than the
// requested duration whose HP cost the player can afford, ascending.
// The result is never nil.
func (c *calculator) SuggestAlternativeDurations(currentHP int, sessionType domain.SessionType, durationMinutes int) []int {
	hp := clampHP(currentHP)
	requested := c.table.BracketFor(sessionType, durationMinutes)

	out := []int{}
	for _, row := range c.table.Brackets(sessionType) {
		if row.Minutes > requested.Minutes {
			break
		}
		if hp-row.Reward.HPCost() >= economics.MinHPAfterSession {
			out = append(out, row.Minutes)
		}
	}
	return out
}
