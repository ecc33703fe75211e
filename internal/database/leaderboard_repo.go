package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

type leaderboardRepo struct {
	db dbConn
}

func newLeaderboardRepo(db dbConn) contract.LeaderboardRepo {
	return &leaderboardRepo{db: db}
}

func (r *leaderboardRepo) EnsureSheet(year int, month time.Month, defaultPool float64) (bool, error) {
	var exists int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM leaderboard_sheets WHERE year = ? AND month = ?`,
		year, int(month),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check leaderboard sheet: %w", err)
	}

	if exists > 0 {
		return false, nil
	}

	_, err = r.db.Exec(
		`INSERT INTO leaderboard_sheets (year, month, pool) VALUES (?, ?, ?)`,
		year, int(month), defaultPool,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create leaderboard sheet: %w", err)
	}

	return true, nil
}

func (r *leaderboardRepo) GetPool(year int, month time.Month) (float64, error) {
	var pool float64
	err := r.db.QueryRow(
		`SELECT pool FROM leaderboard_sheets WHERE year = ? AND month = ?`,
		year, int(month),
	).Scan(&pool)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("leaderboard sheet %d/%d does not exist", int(month), year)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get pool: %w", err)
	}

	return pool, nil
}

func (r *leaderboardRepo) SetPool(year int, month time.Month, pool float64) error {
	_, err := r.db.Exec(
		`UPDATE leaderboard_sheets SET pool = ? WHERE year = ? AND month = ?`,
		pool, year, int(month),
	)
	if err != nil {
		return fmt.Errorf("failed to set pool: %w", err)
	}

	return nil
}

func (r *leaderboardRepo) Replace(year int, month time.Month, rows []*entity.LeaderboardRow) error {
	_, err := r.db.Exec(
		`DELETE FROM leaderboard_rows WHERE year = ? AND month = ?`,
		year, int(month),
	)
	if err != nil {
		return fmt.Errorf("failed to clear leaderboard rows: %w", err)
	}

	query := `
		INSERT INTO leaderboard_rows (year, month, rank, medic, raw_points,
			jobs_logged, rank_title, bonus_multiplier, adjusted_points,
			total_pay, total_ryo)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, row := range rows {
		totalRyo := sql.NullFloat64{}
		if row.HasPool {
			totalRyo = sql.NullFloat64{Float64: row.TotalRyo, Valid: true}
		}

		_, err := r.db.Exec(query,
			year,
			int(month),
			row.Rank,
			row.Medic,
			row.RawPoints,
			row.JobsLogged,
			row.RankTitle,
			row.BonusMultiplier,
			row.AdjustedPoints,
			row.TotalPay,
			totalRyo,
		)
		if err != nil {
			return fmt.Errorf("failed to insert leaderboard row: %w", err)
		}
	}

	return nil
}

func (r *leaderboardRepo) GetRows(year int, month time.Month) ([]*entity.LeaderboardRow, error) {
	query := `
		SELECT rank, medic, raw_points, jobs_logged, rank_title,
			bonus_multiplier, adjusted_points, total_pay, total_ryo
		FROM leaderboard_rows
		WHERE year = ? AND month = ?
		ORDER BY rank ASC
	`

	rows, err := r.db.Query(query, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard rows: %w", err)
	}
	defer rows.Close()

	var result []*entity.LeaderboardRow
	for rows.Next() {
		row := &entity.LeaderboardRow{}
		var totalRyo sql.NullFloat64
		err := rows.Scan(
			&row.Rank,
			&row.Medic,
			&row.RawPoints,
			&row.JobsLogged,
			&row.RankTitle,
			&row.BonusMultiplier,
			&row.AdjustedPoints,
			&row.TotalPay,
			&totalRyo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}

		if totalRyo.Valid {
			row.TotalRyo = totalRyo.Float64
			row.HasPool = true
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *leaderboardRepo) GetSheets() ([]*entity.LeaderboardSheet, error) {
	query := `
		SELECT year, month, pool
		FROM leaderboard_sheets
		ORDER BY year ASC, month ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard sheets: %w", err)
	}
	defer rows.Close()

	var sheets []*entity.LeaderboardSheet
	for rows.Next() {
		sheet := &entity.LeaderboardSheet{}
		var month int
		if err := rows.Scan(&sheet.Year, &month, &sheet.Pool); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard sheet: %w", err)
		}

		sheet.Month = time.Month(month)
		sheets = append(sheets, sheet)
	}

	return sheets, nil
}
