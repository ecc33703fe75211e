package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

// reportDateLayout matches the sheet-style MM/DD/YYYY report dates.
const reportDateLayout = "01/02/2006"

// medicTotals accumulates one medic's share of the log: raw points, job
// count, elapsed hours and hours per category bucket.
type medicTotals struct {
	RawPoints   int
	Jobs        int
	Hours       float64
	BucketHours map[string]float64
}

// aggregateReports folds the report log into per-medic totals in a single
// pass. A nil filter includes every row (lifetime totals); otherwise the
// report date is parsed and rows with blank or unparseable dates are silently
// skipped. Every listed medic receives the row's full stored points and a
// full job-count increment; points are trusted as stored, never re-derived
// from category/duration/clients.
func aggregateReports(reports []*entity.Report, include func(time.Time) bool) map[string]*medicTotals {
	totals := make(map[string]*medicTotals)

	for _, report := range reports {
		if include != nil {
			dateText := strings.TrimSpace(report.ReportDate)
			if dateText == "" {
				continue
			}

			d, err := time.Parse(reportDateLayout, dateText)
			if err != nil || !include(d) {
				continue
			}
		}

		jobHours := float64(parseDurationMinutes(report.Duration)) / 60.0
		bucket := hourBucket(report.JobName)

		for _, medic := range report.Medics {
			mt := totals[medic]
			if mt == nil {
				mt = &medicTotals{BucketHours: make(map[string]float64)}
				totals[medic] = mt
			}

			mt.RawPoints += report.Points
			mt.Jobs++
			mt.Hours += jobHours
			if bucket != "" {
				mt.BucketHours[bucket] += jobHours
			}
		}
	}

	return totals
}

// parseDurationMinutes reads the "<int> min" storage encoding. Anything
// unparseable contributes zero hours without dropping the row's point and
// job-count contribution.
func parseDurationMinutes(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}

	minutes, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}

	return minutes
}

// hourBucket maps a job name onto one of the master log's hour columns.
// First match wins. The keyword sets mirror the scoring table but collapse to
// the sheet's fixed buckets; a job matching no bucket still counts toward
// total hours.
func hourBucket(jobName string) string {
	job := strings.ToLower(jobName)

	switch {
	case containsAny(job, "raid", "defend"):
		return "Raid"
	case containsAny(job, "lmpf"):
		return "LMPF"
	case containsAny(job, "healing", "lowbie"):
		return "Healing"
	case containsAny(job, "rev", "spar"):
		return "Rev/Spar"
	case containsAny(job, "escort"):
		return "Escort"
	case containsAny(job, "world"):
		return "World Boss"
	case containsAny(job, "arc"):
		return "Arc"
	case containsAny(job, "mission"):
		return "Mission"
	case containsAny(job, "hosted event"):
		return "Hosted Event"
	}

	return ""
}

// monthFilter includes rows whose report date falls in the given calendar
// month.
func monthFilter(year int, month time.Month) func(time.Time) bool {
	return func(d time.Time) bool {
		return d.Year() == year && d.Month() == month
	}
}
