package database

import (
	"fmt"
	"strings"

	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

type masterLogRepo struct {
	db dbConn
}

func newMasterLogRepo(db dbConn) contract.MasterLogRepo {
	return &masterLogRepo{db: db}
}

func (r *masterLogRepo) GetAll() ([]*entity.MasterLogRow, error) {
	query := `
		SELECT medic, rank, total_jobs, total_raw_points, total_adjusted_points,
			total_hours, raid_hours, lmpf_hours, healing_hours, rev_spar_hours,
			escort_hours, world_boss_hours, arc_hours, mission_hours,
			hosted_event_hours
		FROM master_log
		ORDER BY medic ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get master log: %w", err)
	}
	defer rows.Close()

	var result []*entity.MasterLogRow
	for rows.Next() {
		row := &entity.MasterLogRow{}
		err := rows.Scan(
			&row.Medic,
			&row.Rank,
			&row.TotalJobs,
			&row.TotalRawPoints,
			&row.TotalAdjustedPoints,
			&row.TotalHours,
			&row.RaidHours,
			&row.LMPFHours,
			&row.HealingHours,
			&row.RevSparHours,
			&row.EscortHours,
			&row.WorldBossHours,
			&row.ArcHours,
			&row.MissionHours,
			&row.HostedEventHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan master log row: %w", err)
		}

		result = append(result, row)
	}

	return result, nil
}

// GetRanks reads only the rank side-channel that rebuilds carry forward.
func (r *masterLogRepo) GetRanks() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT medic, rank FROM master_log`)
	if err != nil {
		return nil, fmt.Errorf("failed to get ranks: %w", err)
	}
	defer rows.Close()

	ranks := make(map[string]string)
	for rows.Next() {
		var medic, rank string
		if err := rows.Scan(&medic, &rank); err != nil {
			return nil, fmt.Errorf("failed to scan rank: %w", err)
		}

		if medic = strings.TrimSpace(medic); medic != "" {
			ranks[medic] = rank
		}
	}

	return ranks, nil
}

func (r *masterLogRepo) Replace(rows []*entity.MasterLogRow) error {
	if _, err := r.db.Exec(`DELETE FROM master_log`); err != nil {
		return fmt.Errorf("failed to clear master log: %w", err)
	}

	query := `
		INSERT INTO master_log (medic, rank, total_jobs, total_raw_points,
			total_adjusted_points, total_hours, raid_hours, lmpf_hours,
			healing_hours, rev_spar_hours, escort_hours, world_boss_hours,
			arc_hours, mission_hours, hosted_event_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, row := range rows {
		_, err := r.db.Exec(query,
			row.Medic,
			row.Rank,
			row.TotalJobs,
			row.TotalRawPoints,
			row.TotalAdjustedPoints,
			row.TotalHours,
			row.RaidHours,
			row.LMPFHours,
			row.HealingHours,
			row.RevSparHours,
			row.EscortHours,
			row.WorldBossHours,
			row.ArcHours,
			row.MissionHours,
			row.HostedEventHours,
		)
		if err != nil {
			return fmt.Errorf("failed to insert master log row: %w", err)
		}
	}

	return nil
}
