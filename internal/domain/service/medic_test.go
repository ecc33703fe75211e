package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_medicService_LifetimeStats(t *testing.T) {
	masterLog := []*entity.MasterLogRow{
		{Medic: "LeaKiara", Rank: "Doctor", TotalJobs: 12},
		{Medic: "Leumas", Rank: "Senior Medic", TotalJobs: 8},
		{Medic: "Ragnor Reaper", Rank: "Unranked", TotalJobs: 1},
	}

	type args struct {
		nameQuery string
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		want      *entity.MasterLogRow
		wantErr   error
	}{
		{
			name: "Should match an exact name",
			args: args{nameQuery: "Leumas"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMasterLogRepo.EXPECT().
					GetAll().
					Return(masterLog, nil).Times(1)
			},
			want: masterLog[1],
		},
		{
			name: "Should match case-insensitively on a substring",
			args: args{nameQuery: "ragnor"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMasterLogRepo.EXPECT().
					GetAll().
					Return(masterLog, nil).Times(1)
			},
			want: masterLog[2],
		},
		{
			name: "Should return the first match in ledger order",
			args: args{nameQuery: "le"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMasterLogRepo.EXPECT().
					GetAll().
					Return(masterLog, nil).Times(1)
			},
			want: masterLog[0],
		},
		{
			name: "Should return ErrNoMatch for an unknown name",
			args: args{nameQuery: "nobody"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMasterLogRepo.EXPECT().
					GetAll().
					Return(masterLog, nil).Times(1)
			},
			wantErr: domain.ErrNoMatch,
		},
		{
			name: "Should return error when the ledger cannot be read",
			args: args{nameQuery: "Leumas"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockMasterLogRepo.EXPECT().
					GetAll().
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newMedic(m.mockDataManager, m.mockSlackClient)

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			got, err := s.LifetimeStats(context.Background(), tt.args.nameQuery)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_medicService_RebuildAll(t *testing.T) {
	reports := []*entity.Report{
		{Medics: []string{"LeaKiara"}, JobName: "Escort", Duration: "30 min", Points: 2, ReportDate: "02/10/2025"},
		{Medics: []string{"Leumas"}, JobName: "Escort", Duration: "30 min", Points: 2, ReportDate: "01/05/2025"},
		{Medics: []string{"Leumas"}, JobName: "Escort", Duration: "30 min", Points: 2, ReportDate: "01/20/2025"},
	}

	t.Run("Should rebuild the master log and then every month oldest first", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newMedic(m.mockDataManager, m.mockSlackClient)

		// Master log rebuild plus one load to enumerate months plus one load
		// per month rebuild.
		m.mockReportRepo.EXPECT().GetAll().Return(reports, nil).Times(4)
		m.mockMasterLogRepo.EXPECT().GetRanks().Return(map[string]string{}, nil).Times(3)
		m.mockMasterLogRepo.EXPECT().Replace(gomock.Any()).Return(nil).Times(1)

		var rebuilt []time.Month
		m.mockLeaderboardRepo.EXPECT().
			EnsureSheet(2025, gomock.Any(), float64(domain.DefaultPool)).
			Return(false, nil).Times(2)
		m.mockLeaderboardRepo.EXPECT().
			GetPool(2025, gomock.Any()).
			Return(float64(domain.DefaultPool), nil).Times(2)
		m.mockLeaderboardRepo.EXPECT().
			Replace(2025, gomock.Any(), gomock.Any()).
			DoAndReturn(func(year int, month time.Month, rows []*entity.LeaderboardRow) error {
				rebuilt = append(rebuilt, month)
				return nil
			}).Times(2)

		err := s.RebuildAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []time.Month{time.January, time.February}, rebuilt)
	})

	t.Run("Should stop when the master log rebuild fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newMedic(m.mockDataManager, m.mockSlackClient)

		m.mockMasterLogRepo.EXPECT().GetRanks().Return(nil, assert.AnError).Times(1)

		require.Error(t, s.RebuildAll(context.Background()))
	})
}

func Test_reportMonths(t *testing.T) {
	tests := []struct {
		name    string
		reports []*entity.Report
		want    []monthKey
	}{
		{
			name: "Should collect distinct months sorted oldest first",
			reports: []*entity.Report{
				{ReportDate: "03/10/2025"},
				{ReportDate: "01/05/2025"},
				{ReportDate: "01/20/2025"},
				{ReportDate: "12/31/2024"},
			},
			want: []monthKey{
				{Year: 2024, Month: time.December},
				{Year: 2025, Month: time.January},
				{Year: 2025, Month: time.March},
			},
		},
		{
			name: "Should skip blank and unparseable dates",
			reports: []*entity.Report{
				{ReportDate: ""},
				{ReportDate: "soon"},
				{ReportDate: "02/01/2025"},
			},
			want: []monthKey{{Year: 2025, Month: time.February}},
		},
		{
			name:    "Should return nothing for an empty log",
			reports: nil,
			want:    []monthKey{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reportMonths(tt.reports))
		})
	}
}
