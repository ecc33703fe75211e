package service

import "strings"

// bonusForRank resolves a free-text rank title to its point multiplier.
// Matching is case-insensitive substring with a fixed precedence, so
// "Senior Field Medic" resolves on "senior" (1.5) before "field" could
// match. Blank or unknown titles pay no bonus.
func bonusForRank(rank string) float64 {
	r := strings.ToLower(rank)

	switch {
	case strings.Contains(r, "doctor"):
		return 3.0
	case strings.Contains(r, "paramedic"):
		return 2.0
	case strings.Contains(r, "senior"):
		return 1.5
	case strings.Contains(r, "junior"):
		return 1.25
	case strings.Contains(r, "field"):
		return 1.15
	}

	return 1.0
}
