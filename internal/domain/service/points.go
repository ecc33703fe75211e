package service

import "strings"

// calculatePoints maps (job name, duration in minutes, client count) to the
// point value of one report. Keyword groups are checked in a fixed order and
// the first match wins; unmatched jobs score zero. The table is guild policy:
// changing it is a deliberate rule change, and it never reprices reports
// already in the log since points are frozen at intake.
func calculatePoints(jobName string, duration, clients int) int {
	job := strings.ToLower(strings.TrimSpace(jobName))

	// Hosted events pay a flat 30 but only count when they ran at least an
	// hour with five or more clients.
	if strings.Contains(job, "hosted event") {
		if duration >= 60 && clients >= 5 {
			return 30
		}
		return 0
	}

	switch {
	case containsAny(job, "raid", "defend"):
		return 3 + 2*(duration/15)
	case containsAny(job, "criminal", "lmpf"):
		return 3
	case containsAny(job, "healing", "lowbie", "farm"):
		return clients + duration/15
	case containsAny(job, "rev", "spar"):
		return clients + duration/15
	case containsAny(job, "escort"):
		return 2
	case containsAny(job, "boss", "world"):
		return clients * 3
	case containsAny(job, "arc"):
		return clients * 30
	case containsAny(job, "mission", "daily"):
		return clients * 3
	}

	return 0
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
