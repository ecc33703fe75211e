package contract

import (
	"context"

	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

// MedicService is the caller-facing surface of the report pipeline, invoked
// by the slash-command handler.
type MedicService interface {
	// SubmitReport validates and scores one report, appends it to the log and
	// rebuilds the master log plus the current month's leaderboard. A
	// domain.ValidationError aborts before the append; a rebuild failure
	// after a durable append is reported on the summary, not as an error.
	SubmitReport(ctx context.Context, input entity.ReportInput) (*entity.ReportSummary, error)

	// MonthlyLeaderboard rebuilds and returns the current month's leaderboard.
	// An empty Rows slice means no data for the month.
	MonthlyLeaderboard(ctx context.Context) (*entity.Leaderboard, error)

	// LifetimeStats returns the master-log row of the first medic whose name
	// contains the query, case-insensitively. Returns domain.ErrNoMatch when
	// nothing matches.
	LifetimeStats(ctx context.Context, nameQuery string) (*entity.MasterLogRow, error)

	// RebuildAll rebuilds the master log and every monthly leaderboard found
	// in the report log, oldest month first.
	RebuildAll(ctx context.Context) error

	// ExportWorkbook renders the report log, all leaderboard sheets and the
	// master log into an xlsx workbook.
	ExportWorkbook(ctx context.Context) ([]byte, error)
}
