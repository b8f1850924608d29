package domain

import "slices"

// Difficulty tiers used by the game catalog.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Game is one catalog entry. The catalog is reference data: seeded by
// migration, read-only at runtime.
type Game struct {
	ID             int64
	Name           string
	Difficulty     string
	Platforms      []string // e.g. ["Web", "Mobile"]
	CognitiveFocus string
	Description    string
	MinAge         int
	MaxAge         int
}

// SupportsPlatform reports whether the game is available on the given
// platform tag. Exact membership, not substring matching.
func (g Game) SupportsPlatform(platform string) bool {
	return slices.Contains(g.Platforms, platform)
}

// SupportsAnyPlatform reports whether the game is available on at least one
// of the given platforms.
func (g Game) SupportsAnyPlatform(platforms []string) bool {
	for _, p := range platforms {
		if g.SupportsPlatform(p) {
			return true
		}
	}
	return false
}
