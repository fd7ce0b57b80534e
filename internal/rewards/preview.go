package rewards

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/economics"
)

// DisplayName returns the human-readable name of a session type
func DisplayName(st domain.SessionType) string {
	return cases.Title(language.English).String(string(st))
}

// FormatSessionPreview describes what a session will cost and award given the
// player's current HP. The preview assumes an even, winning session without stakes.
func (c *calculator) FormatSessionPreview(sessionType domain.SessionType, durationMinutes, currentHP int) domain.SessionPreview {
	st := c.table.Resolve(sessionType)
	bracket := c.table.BracketFor(st, durationMinutes)
	breakdown := c.CalculateSessionRewards(domain.SessionContext{
		SessionType:     st,
		PlayerLevel:     economics.MinLevel,
		OpponentLevel:   economics.MinLevel,
		DurationMinutes: bracket.Minutes,
		IsWinner:        true,
	})

	printer := message.NewPrinter(language.English)
	hp := clampHP(currentHP)
	change := breakdown.WinHP
	cost := breakdown.Win().HPCost()
	after := hp + change

	preview := domain.SessionPreview{
		PreSessionText: preSessionText(printer, st, bracket.Minutes, change, breakdown.WinXP),
		CostBreakdown: domain.CostBreakdown{
			HPChange:    change,
			HPCost:      cost,
			XP:          breakdown.WinXP,
			Tokens:      breakdown.WinTokens,
			ProjectedHP: clampHP(after),
		},
		SmartWarnings: []string{},
	}

	if cost == 0 {
		return preview
	}

	low := economics.LowHPThreshold()
	if after < economics.MinHPAfterSession {
		preview.SmartWarnings = append(preview.SmartWarnings, printer.Sprintf(WarningInsufficientHP, cost, hp))
	} else if after < low {
		preview.SmartWarnings = append(preview.SmartWarnings, printer.Sprintf(WarningLowHPAfter, economics.LowHPPercent))
	}

	if hp < low {
		preview.SmartWarnings = append(preview.SmartWarnings,
			printer.Sprintf(WarningAlreadyLowHP, DisplayName(domain.SessionTypeWellbeing)))
	}

	if after < economics.MinHPAfterSession {
		if alts := c.SuggestAlternativeDurations(hp, st, bracket.Minutes); len(alts) > 0 {
			preview.SmartWarnings = append(preview.SmartWarnings, printer.Sprintf(WarningSaferDurations, joinDurations(alts)))
		}
	}

	return preview
}

func preSessionText(printer *message.Printer, st domain.SessionType, minutes, hpChange, xp int) string {
	name := string(st)
	switch {
	case hpChange < 0:
		return printer.Sprintf(PreviewCostFormat, minutes, name, -hpChange, xp)
	case hpChange > 0:
		return printer.Sprintf(PreviewRestoreFormat, minutes, name, hpChange, xp)
	default:
		return printer.Sprintf(PreviewNeutralFormat, minutes, name, xp)
	}
}

// joinDurations renders [30 45 60] as "30, 45 or 60"
func joinDurations(minutes []int) string {
	parts := make([]string, len(minutes))
	for i, m := range minutes {
		parts[i] = strconv.Itoa(m)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
