package database

import (
	"context"
	"fmt"

	"github.com/leafcorps/medic-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	reportRepo      contract.ReportRepo
	leaderboardRepo contract.LeaderboardRepo
	masterLogRepo   contract.MasterLogRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:              db,
		reportRepo:      newReportRepo(db.conn),
		leaderboardRepo: newLeaderboardRepo(db.conn),
		masterLogRepo:   newMasterLogRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		reportRepo:      newReportRepo(db),
		leaderboardRepo: newLeaderboardRepo(db),
		masterLogRepo:   newMasterLogRepo(db),
	}
}

// Report returns the report log repository
func (i *instance) Report() contract.ReportRepo {
	return i.reportRepo
}

// Leaderboard returns the leaderboard repository
func (i *instance) Leaderboard() contract.LeaderboardRepo {
	return i.leaderboardRepo
}

// MasterLog returns the master log repository
func (i *instance) MasterLog() contract.MasterLogRepo {
	return i.masterLogRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
