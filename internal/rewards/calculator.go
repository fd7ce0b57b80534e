package rewards

import (
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/economics"
)

// Config holds the tunable reward policy. All percentages are whole percent.
type Config struct {
	LevelThreshold       int
	FavoredXPPercent     int
	ChallengeXPPercent   int
	ParticipationPercent int
	RakePercent          int
}

// DefaultConfig returns the production reward policy
func DefaultConfig() Config {
	return Config{
		LevelThreshold:       economics.DefaultLevelThreshold,
		FavoredXPPercent:     DefaultFavoredXPPercent,
		ChallengeXPPercent:   DefaultChallengeXPPercent,
		ParticipationPercent: DefaultParticipationPercent,
		RakePercent:          economics.RakePercent,
	}
}

// Calculator previews session rewards. Every method is pure and deterministic.
type Calculator interface {
	CalculateSessionRewards(sc domain.SessionContext) domain.RewardBreakdown
	FormatSessionPreview(sessionType domain.SessionType, durationMinutes, currentHP int) domain.SessionPreview
	IsSessionTooRisky(currentHP int, sessionType domain.SessionType, durationMinutes int) bool
	SuggestAlternativeDurations(currentHP int, sessionType domain.SessionType, durationMinutes int) []int
	Brackets(sessionType domain.SessionType) []domain.DurationBracket
}

type calculator struct {
	table *economics.Table
	cfg   Config
}

// NewCalculator creates a calculator over an explicit table and policy
func NewCalculator(table *economics.Table, cfg Config) Calculator {
	if table == nil {
		table = economics.DefaultTable()
	}
	return &calculator{table: table, cfg: cfg}
}

// Brackets exposes the table rows for a session type
func (c *calculator) Brackets(sessionType domain.SessionType) []domain.DurationBracket {
	return c.table.Brackets(sessionType)
}

// CalculateSessionRewards computes both outcomes of a session.
// Inputs are coerced rather than rejected: levels below 1 become 1, a missing
// opponent level becomes the player's level, negative stakes become zero and
// non-positive durations use the shortest bracket.
func (c *calculator) CalculateSessionRewards(sc domain.SessionContext) domain.RewardBreakdown {
	sc = c.normalize(sc)
	base := c.table.BaseRewardFor(sc.SessionType, sc.DurationMinutes)
	category := economics.LevelDifferenceCategory(sc.PlayerLevel, sc.OpponentLevel)

	winXP := base.XP
	loseBaseXP := base.XP
	if sc.SessionType.IsCompetitive() {
		gap := sc.PlayerLevel - sc.OpponentLevel
		switch {
		case gap > c.cfg.LevelThreshold:
			winXP = max(scale(base.XP, c.cfg.FavoredXPPercent), MinParticipationReward)
		case -gap > c.cfg.LevelThreshold:
			winXP = scale(base.XP, c.cfg.ChallengeXPPercent)
			loseBaseXP = winXP
		}
	}

	rake := economics.Rake(sc.StakesAmount, c.cfg.RakePercent)
	net := sc.StakesAmount - rake

	b := domain.RewardBreakdown{
		WinXP:           winXP,
		WinHP:           base.HP,
		WinTokens:       base.Tokens + net,
		LoseXP:          c.participation(loseBaseXP),
		LoseHP:          base.HP,
		LoseTokens:      c.participation(base.Tokens),
		Stakes:          sc.StakesAmount,
		Rake:            rake,
		NetPayout:       net,
		LevelDifference: category,
	}

	if sc.IsWinner {
		b.Projected = b.Win()
	} else {
		b.Projected = b.Lose()
	}
	return b
}

func (c *calculator) normalize(sc domain.SessionContext) domain.SessionContext {
	sc.SessionType = c.table.Resolve(sc.SessionType)
	if sc.PlayerLevel < economics.MinLevel {
		sc.PlayerLevel = economics.MinLevel
	}
	if sc.OpponentLevel < economics.MinLevel {
		sc.OpponentLevel = sc.PlayerLevel
	}
	if sc.StakesAmount < 0 {
		sc.StakesAmount = 0
	}
	if sc.DurationMinutes < 0 {
		sc.DurationMinutes = 0
	}
	return sc
}

// participation returns ceil(value * ParticipationPercent / 100) with a floor of 1
func (c *calculator) participation(value int) int {
	v := (value*c.cfg.ParticipationPercent + 99) / 100
	return max(v, MinParticipationReward)
}

func scale(value, percent int) int {
	return value * percent / 100
}

func clampHP(hp int) int {
	if hp < 0 {
		return 0
	}
	if hp > economics.MaxHP {
		return economics.MaxHP
	}
	return hp
}
