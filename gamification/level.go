package gamification

// XPPerLevel is the fixed experience cost of each level.
const XPPerLevel = 1000

// LevelOf maps cumulative experience to a level number (>= 1).
// Level L is reached once xp >= (L-1) * XPPerLevel.
func LevelOf(xp int) (int, error) {
	if xp < 0 {
		return 0, ErrInvalidInput
	}
	return xp/XPPerLevel + 1, nil
}

// ProgressFraction returns progress within the current level, in [0, 1).
func ProgressFraction(xp int) (float64, error) {
	if xp < 0 {
		return 0, ErrInvalidInput
	}
	return float64(xp%XPPerLevel) / float64(XPPerLevel), nil
}

// XPToNextLevel returns how much experience remains until the next level.
func XPToNextLevel(xp int) (int, error) {
	if xp < 0 {
		return 0, ErrInvalidInput
	}
	return XPPerLevel - xp%XPPerLevel, nil
}
