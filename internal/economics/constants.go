package economics

// HP constants
const (
	// MaxHP is the ceiling of a player's health points
	MaxHP = 100

	// LowHPPercent is the share of MaxHP below which players are warned
	LowHPPercent = 20

	// MinHPAfterSession is the lowest post-session HP that is not considered risky
	MinHPAfterSession = 0
)

// Level and stakes constants
const (
	// DefaultLevelThreshold is how many levels apart two players must be
	// before a level-difference modifier applies
	DefaultLevelThreshold = 2

	// RakePercent is the platform fee taken from staked tokens
	RakePercent = 10

	// MinLevel is the lowest player level
	MinLevel = 1
)

// Duration brackets in minutes, ascending
const (
	Bracket30  = 30
	Bracket45  = 45
	Bracket60  = 60
	Bracket90  = 90
	Bracket120 = 120
)

// LowHPThreshold returns the HP value below which the low-HP warning fires
func LowHPThreshold() int {
	return MaxHP * LowHPPercent / 100
}
