package database

import (
	"testing"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepo_Append(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newReportRepo(db.conn)

	t.Run("should append a report and assign its id", func(t *testing.T) {
		report := &entity.Report{
			SubmittedAt: time.Now().UTC(),
			Medics:      []string{"LeaKiara", "Leumas"},
			JobName:     "Escort to Sand",
			Duration:    "60 min",
			Points:      2,
			Clients:     1,
			ClientNames: []string{"ClientOne"},
			Description: "Routine escort.",
			ReportDate:  "01/15/2025",
			MessageLink: "https://slack.com/archives/C123/p1736900000000100",
		}

		err := repo.Append(report)

		require.NoError(t, err)
		assert.NotZero(t, report.ID)
	})

	t.Run("should assign increasing ids", func(t *testing.T) {
		first := &entity.Report{Medics: []string{"A"}, JobName: "Escort", Duration: "30 min"}
		second := &entity.Report{Medics: []string{"B"}, JobName: "Escort", Duration: "30 min"}

		require.NoError(t, repo.Append(first))
		require.NoError(t, repo.Append(second))

		assert.Greater(t, second.ID, first.ID)
	})
}

func TestReportRepo_GetAll(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	repo := newReportRepo(db.conn)

	t.Run("should return nothing for an empty log", func(t *testing.T) {
		reports, err := repo.GetAll()

		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("should return appended reports in insertion order", func(t *testing.T) {
		first := &entity.Report{
			SubmittedAt: time.Now().UTC(),
			Medics:      []string{"LeaKiara", "Leumas"},
			JobName:     "Raid/Defend",
			Duration:    "45 min",
			Points:      9,
			Clients:     3,
			ClientNames: []string{"C1", "C2", "C3"},
			ReportDate:  "01/15/2025",
		}
		second := &entity.Report{
			SubmittedAt: time.Now().UTC(),
			Medics:      []string{"Ragnor Reaper"},
			JobName:     "Escort",
			Duration:    "30 min",
			Points:      2,
			Clients:     1,
			ClientNames: []string{"C4"},
			ReportDate:  "01/16/2025",
		}

		require.NoError(t, repo.Append(first))
		require.NoError(t, repo.Append(second))

		reports, err := repo.GetAll()

		require.NoError(t, err)
		require.Len(t, reports, 2)

		assert.Equal(t, first.ID, reports[0].ID)
		assert.Equal(t, []string{"LeaKiara", "Leumas"}, reports[0].Medics)
		assert.Equal(t, "Raid/Defend", reports[0].JobName)
		assert.Equal(t, "45 min", reports[0].Duration)
		assert.Equal(t, 9, reports[0].Points)
		assert.Equal(t, 3, reports[0].Clients)
		assert.Equal(t, []string{"C1", "C2", "C3"}, reports[0].ClientNames)
		assert.Equal(t, "01/15/2025", reports[0].ReportDate)

		assert.Equal(t, second.ID, reports[1].ID)
		assert.Equal(t, []string{"Ragnor Reaper"}, reports[1].Medics)
	})

	t.Run("should round-trip empty name lists", func(t *testing.T) {
		report := &entity.Report{
			Medics:   []string{"Solo"},
			JobName:  "Escort",
			Duration: "15 min",
		}

		require.NoError(t, repo.Append(report))

		reports, err := repo.GetAll()
		require.NoError(t, err)

		last := reports[len(reports)-1]
		assert.Equal(t, []string{"Solo"}, last.Medics)
		assert.Nil(t, last.ClientNames)
	})
}

func Test_joinNames_splitNames(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{name: "two names", names: []string{"LeaKiara", "Leumas"}},
		{name: "single name", names: []string{"Solo"}},
		{name: "empty list", names: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.names, splitNames(joinNames(tt.names)))
		})
	}
}
