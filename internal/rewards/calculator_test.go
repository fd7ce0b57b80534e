package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/economics"
)

func newTestCalculator() Calculator {
	return NewCalculator(economics.DefaultTable(), DefaultConfig())
}

func TestCalculateSessionRewards_TrainingEqualLevels(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     domain.SessionTypeTraining,
		PlayerLevel:     5,
		OpponentLevel:   5,
		IsWinner:        true,
		DurationMinutes: 60,
	})

	base := economics.DefaultTable().BaseRewardFor(domain.SessionTypeTraining, 60)
	assert.Equal(t, base.XP, got.WinXP)
	assert.Equal(t, base.HP, got.WinHP)
	assert.Equal(t, base.Tokens, got.WinTokens)
	assert.Equal(t, domain.LevelsEqual, got.LevelDifference)
	assert.Zero(t, got.Rake)
	assert.Zero(t, got.NetPayout)
	assert.Equal(t, got.Win(), got.Projected)
}

func TestCalculateSessionRewards_FavoredMatchWithStakes(t *testing.T) {
	calc := newTestCalculator()

	favored := calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     domain.SessionTypeMatch,
		PlayerLevel:     8,
		OpponentLevel:   4,
		IsWinner:        true,
		StakesAmount:    100,
		DurationMinutes: 45,
	})
	even := calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     domain.SessionTypeMatch,
		PlayerLevel:     4,
		OpponentLevel:   4,
		IsWinner:        true,
		StakesAmount:    100,
		DurationMinutes: 45,
	})

	assert.Equal(t, domain.PlayerFavored, favored.LevelDifference)
	assert.Less(t, favored.WinXP, even.WinXP)
	assert.Equal(t, 33, favored.WinXP)
	assert.Equal(t, 10, favored.Rake)
	assert.Equal(t, 90, favored.NetPayout)
	assert.Equal(t, 10+90, favored.WinTokens)
}

func TestCalculateSessionRewards_OpponentFavoredLoser(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     domain.SessionTypeMatch,
		PlayerLevel:     4,
		OpponentLevel:   8,
		IsWinner:        false,
		StakesAmount:    50,
		DurationMinutes: 30,
	})

	assert.Equal(t, domain.OpponentFavored, got.LevelDifference)
	assert.Greater(t, got.LoseXP, 0)
	assert.Greater(t, got.LoseTokens, 0)
	assert.Equal(t, 60, got.WinXP, "challenge bonus applies to the base 40 XP")
	assert.Equal(t, 30, got.LoseXP)
	assert.Equal(t, 5, got.Rake)
	assert.Equal(t, 45, got.NetPayout)
	assert.Equal(t, got.Lose(), got.Projected)
}

func TestCalculateSessionRewards_WithinThresholdNoModifier(t *testing.T) {
	calc := newTestCalculator()
	base := economics.DefaultTable().BaseRewardFor(domain.SessionTypeMatch, 60)

	for _, levels := range [][2]int{{6, 4}, {4, 6}, {5, 4}} {
		got := calc.CalculateSessionRewards(domain.SessionContext{
			SessionType:     domain.SessionTypeMatch,
			PlayerLevel:     levels[0],
			OpponentLevel:   levels[1],
			IsWinner:        true,
			DurationMinutes: 60,
		})
		assert.Equal(t, base.XP, got.WinXP, "levels %v", levels)
	}
}

func TestCalculateSessionRewards_NonCompetitiveIgnoresLevels(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     domain.SessionTypeTraining,
		PlayerLevel:     20,
		OpponentLevel:   1,
		IsWinner:        true,
		DurationMinutes: 30,
	})

	assert.Equal(t, domain.PlayerFavored, got.LevelDifference)
	assert.Equal(t, 30, got.WinXP)
}

func TestCalculateSessionRewards_Coercion(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     "pickleball",
		PlayerLevel:     -3,
		OpponentLevel:   0,
		StakesAmount:    -20,
		DurationMinutes: 0,
	})

	base := economics.DefaultTable().BaseRewardFor(domain.SessionTypeTraining, economics.Bracket30)
	assert.Equal(t, base.XP, got.WinXP)
	assert.Equal(t, base.HP, got.WinHP)
	assert.Equal(t, domain.LevelsEqual, got.LevelDifference, "absent opponent level defaults to the player's level")
	assert.Zero(t, got.Stakes)
	assert.Zero(t, got.Rake)
	assert.Zero(t, got.NetPayout)
}

func TestCalculateSessionRewards_Deterministic(t *testing.T) {
	calc := newTestCalculator()

	for _, st := range domain.AllSessionTypes {
		sc := domain.SessionContext{
			SessionType:     st,
			PlayerLevel:     7,
			OpponentLevel:   3,
			StakesAmount:    75,
			DurationMinutes: 90,
			IsWinner:        true,
		}
		require.Equal(t, calc.CalculateSessionRewards(sc), calc.CalculateSessionRewards(sc))
	}
}

func TestCalculateSessionRewards_ParticipationFloor(t *testing.T) {
	calc := newTestCalculator()

	for _, st := range domain.AllSessionTypes {
		for _, duration := range []int{1, 30, 45, 60, 90, 120, 240} {
			for _, stakes := range []int{0, 1, 9, 50, 1000} {
				for _, levels := range [][2]int{{1, 1}, {10, 1}, {1, 10}} {
					got := calc.CalculateSessionRewards(domain.SessionContext{
						SessionType:     st,
						PlayerLevel:     levels[0],
						OpponentLevel:   levels[1],
						StakesAmount:    stakes,
						DurationMinutes: duration,
					})
					assert.Positive(t, got.LoseXP)
					assert.Positive(t, got.LoseTokens)
					assert.GreaterOrEqual(t, got.WinXP, 0)
					assert.GreaterOrEqual(t, got.WinTokens, 0)
					assert.LessOrEqual(t, got.Rake, got.Stakes)
					assert.GreaterOrEqual(t, got.NetPayout, 0)
				}
			}
		}
	}
}

func TestCalculateSessionRewards_CustomConfig(t *testing.T) {
	calc := NewCalculator(nil, Config{
		LevelThreshold:       0,
		FavoredXPPercent:     50,
		ChallengeXPPercent:   200,
		ParticipationPercent: 25,
		RakePercent:          20,
	})

	got := calc.CalculateSessionRewards(domain.SessionContext{
		SessionType:     domain.SessionTypeSocial,
		PlayerLevel:     3,
		OpponentLevel:   2,
		StakesAmount:    55,
		DurationMinutes: 60,
		IsWinner:        true,
	})

	assert.Equal(t, 20, got.WinXP)
	assert.Equal(t, 10, got.LoseXP)
	assert.Equal(t, 2, got.LoseTokens)
	assert.Equal(t, 11, got.Rake)
	assert.Equal(t, 44, got.NetPayout)
}

func BenchmarkCalculateSessionRewards(b *testing.B) {
	calc := newTestCalculator()
	sc := domain.SessionContext{
		SessionType:     domain.SessionTypeMatch,
		PlayerLevel:     8,
		OpponentLevel:   4,
		StakesAmount:    100,
		DurationMinutes: 45,
		IsWinner:        true,
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = calc.CalculateSessionRewards(sc)
	}
}
