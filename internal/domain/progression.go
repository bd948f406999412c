package domain

// CalculateLevel maps accumulated experience points to a level number.
// Level n starts at 50*n*(n-1) xp, so the thresholds are 0, 100, 300,
// 600, 1000, ... and each level-up costs 100*(level-1) more xp than the
// previous one. The result is always >= 1 and non-decreasing in xp.
func CalculateLevel(xp int) int {
	if xp < 0 {
		return 1
	}
	level := 1
	for xp >= 50*(level+1)*level {
		level++
	}
	return level
}

// XPForLevel returns the total xp at which the given level starts.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 50 * level * (level - 1)
}
