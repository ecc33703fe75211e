package contract

import (
	"context"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Report() ReportRepo
	Leaderboard() LeaderboardRepo
	MasterLog() MasterLogRepo
}

// ReportRepo is the append-only job log. GetAll returns rows in insertion
// order; there is no update or delete, the log is the source of truth.
type ReportRepo interface {
	Append(report *entity.Report) error
	GetAll() ([]*entity.Report, error)
}

// LeaderboardRepo manages the per-month leaderboard sheets. Replace is a full
// clear-then-write of one month's rows; an empty rows slice is the "no data"
// placeholder state.
type LeaderboardRepo interface {
	// EnsureSheet creates the month's sheet with the default pool if it does
	// not exist yet, reporting whether it was created. The default is applied
	// only at creation time.
	EnsureSheet(year int, month time.Month, defaultPool float64) (created bool, err error)
	GetPool(year int, month time.Month) (float64, error)
	SetPool(year int, month time.Month, pool float64) error
	Replace(year int, month time.Month, rows []*entity.LeaderboardRow) error
	GetRows(year int, month time.Month) ([]*entity.LeaderboardRow, error)
	GetSheets() ([]*entity.LeaderboardSheet, error)
}

// MasterLogRepo manages the lifetime ledger. GetRanks exposes the rank
// side-channel that is carried forward across full rebuilds.
type MasterLogRepo interface {
	GetAll() ([]*entity.MasterLogRow, error)
	GetRanks() (map[string]string, error)
	Replace(rows []*entity.MasterLogRow) error
}
