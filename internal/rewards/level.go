package rewards

import "math"

// LevelProgress describes where a total XP figure sits on the level curve
type LevelProgress struct {
	Level         int `json:"level"`
	XPIntoLevel   int `json:"xp_into_level"`
	XPToNextLevel int `json:"xp_to_next_level"`
}

// xpStep is the XP needed to advance from level to level+1
func xpStep(level int) int {
	return int(BaseXP * math.Pow(float64(level), LevelExponent))
}

// XPForLevel returns the cumulative XP required to reach a level.
// Level 1 requires no XP.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}

	cumulative := 0
	for l := 1; l < level; l++ {
		cumulative += xpStep(l)
	}
	return cumulative
}

// LevelForXP returns the level reached with the given total XP
func LevelForXP(totalXP int) int {
	return ProgressForXP(totalXP).Level
}

// ProgressForXP places a total XP figure on the level curve
func ProgressForXP(totalXP int) LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	cumulative := 0
	for level < MaxLevel {
		step := xpStep(level)
		if cumulative+step > totalXP {
			return LevelProgress{
				Level:         level,
				XPIntoLevel:   totalXP - cumulative,
				XPToNextLevel: cumulative + step - totalXP,
			}
		}
		cumulative += step
		level++
	}

	return LevelProgress{Level: MaxLevel, XPIntoLevel: totalXP - cumulative}
}
