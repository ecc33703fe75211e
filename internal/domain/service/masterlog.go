package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/leafcorps/medic-bot/internal/domain"
	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

// rebuildMasterLog regenerates the lifetime ledger from the entire report
// log. Rank titles are the one piece of prior output that feeds back into the
// rebuild: they are read from the ledger's current rows first and carried
// forward, so a manually assigned rank persists until someone changes it.
func (s *medicService) rebuildMasterLog(ctx context.Context) error {
	ranks, err := s.dm.MasterLog().GetRanks()
	if err != nil {
		return fmt.Errorf("failed to load existing ranks: %w", err)
	}

	reports, err := s.dm.Report().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load report log: %w", err)
	}

	totals := aggregateReports(reports, nil)
	rows := buildMasterLog(totals, ranks)

	// The clear-then-write happens inside one transaction so a failed
	// rebuild never leaves a half-written ledger behind.
	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		return dm.MasterLog().Replace(rows)
	})
	if err != nil {
		return fmt.Errorf("failed to write master log: %w", err)
	}

	return nil
}

// buildMasterLog emits one cumulative row per medic, sorted by name. The
// master log is a reference table, not a ranking, so the sort key is the
// medic's canonical name rather than points.
func buildMasterLog(totals map[string]*medicTotals, ranks map[string]string) []*entity.MasterLogRow {
	medics := make([]string, 0, len(totals))
	for medic := range totals {
		medics = append(medics, medic)
	}
	sort.Strings(medics)

	rows := make([]*entity.MasterLogRow, 0, len(medics))
	for _, medic := range medics {
		mt := totals[medic]

		rank := ranks[medic]
		if rank == "" {
			rank = domain.DefaultRank
		}

		rows = append(rows, &entity.MasterLogRow{
			Medic:               medic,
			Rank:                rank,
			TotalJobs:           mt.Jobs,
			TotalRawPoints:      mt.RawPoints,
			TotalAdjustedPoints: float64(mt.RawPoints) * bonusForRank(rank),
			TotalHours:          round2(mt.Hours),
			RaidHours:           round2(mt.BucketHours["Raid"]),
			LMPFHours:           round2(mt.BucketHours["LMPF"]),
			HealingHours:        round2(mt.BucketHours["Healing"]),
			RevSparHours:        round2(mt.BucketHours["Rev/Spar"]),
			EscortHours:         round2(mt.BucketHours["Escort"]),
			WorldBossHours:      round2(mt.BucketHours["World Boss"]),
			ArcHours:            round2(mt.BucketHours["Arc"]),
			MissionHours:        round2(mt.BucketHours["Mission"]),
			HostedEventHours:    round2(mt.BucketHours["Hosted Event"]),
		})
	}

	return rows
}
