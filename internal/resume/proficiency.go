package resume

// MaxDots is the number of proficiency dots a language can show.
const MaxDots = 5

// Proficiency labels for the fixed 5-tier mapping, indexed by dot count.
const (
	LevelBeginner     = "Beginner"
	LevelElementary   = "Elementary"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelNative       = "Native"
)

var proficiencyLevels = [MaxDots]string{
	LevelBeginner,
	LevelElementary,
	LevelIntermediate,
	LevelAdvanced,
	LevelNative,
}

// ClampDots forces a dot count into [0,MaxDots].
func ClampDots(dots int) int {
	if dots < 0 {
		return 0
	}
	if dots > MaxDots {
		return MaxDots
	}
	return dots
}

// ProficiencyLevel returns the display label for a dot count. The mapping
// is 1-indexed by click position: 1 dot is Beginner, 5 dots is Native.
// Zero dots maps to Beginner as well; out-of-range counts are clamped.
func ProficiencyLevel(dots int) string {
	dots = ClampDots(dots)
	if dots == 0 {
		dots = 1
	}
	return proficiencyLevels[dots-1]
}
