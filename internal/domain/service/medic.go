package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain"
	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

type medicService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
}

func newMedic(dm contract.DataManager, slackClient contract.SlackClient) *medicService {
	return &medicService{
		dm:          dm,
		slackClient: slackClient,
	}
}

// MonthlyLeaderboard rebuilds and returns the current month's leaderboard.
func (s *medicService) MonthlyLeaderboard(ctx context.Context) (*entity.Leaderboard, error) {
	now := time.Now()
	return s.rebuildLeaderboard(ctx, now.Year(), now.Month())
}

// LifetimeStats returns the master-log row of the first medic whose name
// contains the query, case-insensitively.
func (s *medicService) LifetimeStats(ctx context.Context, nameQuery string) (*entity.MasterLogRow, error) {
	rows, err := s.dm.MasterLog().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load master log: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(nameQuery))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Medic), query) {
			return row, nil
		}
	}

	return nil, domain.ErrNoMatch
}

// RebuildAll regenerates the master log and then every monthly leaderboard
// that has data in the report log, oldest month first.
func (s *medicService) RebuildAll(ctx context.Context) error {
	if err := s.rebuildMasterLog(ctx); err != nil {
		return err
	}

	reports, err := s.dm.Report().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load report log: %w", err)
	}

	for _, m := range reportMonths(reports) {
		if _, err := s.rebuildLeaderboard(ctx, m.Year, m.Month); err != nil {
			return fmt.Errorf("failed to rebuild %s: %w", entity.LeaderboardSheetTitle(m.Year, m.Month), err)
		}
	}

	return nil
}

type monthKey struct {
	Year  int
	Month time.Month
}

// reportMonths collects every (year, month) with at least one parseable
// report date, sorted oldest to newest.
func reportMonths(reports []*entity.Report) []monthKey {
	seen := make(map[monthKey]bool)
	for _, report := range reports {
		dateText := strings.TrimSpace(report.ReportDate)
		if dateText == "" {
			continue
		}

		d, err := time.Parse(reportDateLayout, dateText)
		if err != nil {
			continue
		}

		seen[monthKey{Year: d.Year(), Month: d.Month()}] = true
	}

	months := make([]monthKey, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})

	return months
}
