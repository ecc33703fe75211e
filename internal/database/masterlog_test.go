package database

import (
	"testing"

	"github.com/leafcorps/medic-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterLogRepo_Replace_GetAll(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newMasterLogRepo(db.conn)

	rows := []*entity.MasterLogRow{
		{
			Medic: "LeaKiara", Rank: "Doctor", TotalJobs: 10, TotalRawPoints: 100,
			TotalAdjustedPoints: 300, TotalHours: 12.5, RaidHours: 8, EscortHours: 4.5,
		},
		{
			Medic: "Leumas", Rank: "Unranked", TotalJobs: 3, TotalRawPoints: 12,
			TotalAdjustedPoints: 12, TotalHours: 2, HealingHours: 2,
		},
	}

	t.Run("should return nothing for an empty ledger", func(t *testing.T) {
		got, err := repo.GetAll()

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("should write and read the ledger sorted by medic", func(t *testing.T) {
		// Deliberately write out of order.
		require.NoError(t, repo.Replace([]*entity.MasterLogRow{rows[1], rows[0]}))

		got, err := repo.GetAll()

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, rows[0], got[0])
		assert.Equal(t, rows[1], got[1])
	})

	t.Run("should fully replace on the next write", func(t *testing.T) {
		require.NoError(t, repo.Replace(rows[:1]))

		got, err := repo.GetAll()

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "LeaKiara", got[0].Medic)
	})

	t.Run("should clear the ledger when replacing with no rows", func(t *testing.T) {
		require.NoError(t, repo.Replace(nil))

		got, err := repo.GetAll()

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMasterLogRepo_GetRanks(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newMasterLogRepo(db.conn)

	t.Run("should return an empty map for an empty ledger", func(t *testing.T) {
		ranks, err := repo.GetRanks()

		require.NoError(t, err)
		assert.Empty(t, ranks)
	})

	t.Run("should map medics to their rank titles", func(t *testing.T) {
		require.NoError(t, repo.Replace([]*entity.MasterLogRow{
			{Medic: "LeaKiara", Rank: "Doctor"},
			{Medic: "Leumas", Rank: "Senior Medic"},
		}))

		ranks, err := repo.GetRanks()

		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"LeaKiara": "Doctor",
			"Leumas":   "Senior Medic",
		}, ranks)
	})
}
