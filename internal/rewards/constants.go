package rewards

// Modifier defaults, expressed in whole percent
const (
	// DefaultFavoredXPPercent scales winner XP when beating a much weaker opponent
	DefaultFavoredXPPercent = 60

	// DefaultChallengeXPPercent scales XP when playing a much stronger opponent
	DefaultChallengeXPPercent = 150

	// DefaultParticipationPercent is the share of XP and tokens a loser receives
	DefaultParticipationPercent = 50

	// MinParticipationReward is the floor for loser XP and tokens
	MinParticipationReward = 1
)

// Level curve constants
const (
	// BaseXP is the XP needed to go from level 1 to level 2
	BaseXP = 100.0

	// LevelExponent shapes the curve: XP from level L to L+1 = BaseXP * L^LevelExponent
	LevelExponent = 1.5

	// MaxLevel caps the level curve
	MaxLevel = 100
)

// Preview text templates
const (
	PreviewCostFormat    = "This %d-minute %s session will cost approximately %d HP and award %d XP."
	PreviewRestoreFormat = "This %d-minute %s session will restore approximately %d HP and award %d XP."
	PreviewNeutralFormat = "This %d-minute %s session will award %d XP."
)

// Smart warning templates
const (
	WarningInsufficientHP = "This session needs about %d HP but you only have %d HP."
	WarningLowHPAfter     = "This session may leave you below %d%% HP."
	WarningAlreadyLowHP   = "Your HP is low. A %s session restores HP."
	WarningSaferDurations = "Safer durations: %s minutes."
)
