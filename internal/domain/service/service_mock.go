package service

import (
	"context"
	"testing"

	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockReportRepo      *mocks.MockReportRepo
	mockLeaderboardRepo *mocks.MockLeaderboardRepo
	mockMasterLogRepo   *mocks.MockMasterLogRepo
	mockSlackClient     *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reportRepo := mocks.NewMockReportRepo(ctrl)
	dm.EXPECT().Report().Return(reportRepo).AnyTimes()

	leaderboardRepo := mocks.NewMockLeaderboardRepo(ctrl)
	dm.EXPECT().Leaderboard().Return(leaderboardRepo).AnyTimes()

	masterLogRepo := mocks.NewMockMasterLogRepo(ctrl)
	dm.EXPECT().MasterLog().Return(masterLogRepo).AnyTimes()

	// Transactions pass straight through to the same repo mocks.
	dm.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:     dm,
		mockReportRepo:      reportRepo,
		mockLeaderboardRepo: leaderboardRepo,
		mockMasterLogRepo:   masterLogRepo,
		mockSlackClient:     slackClient,
	}

	// validate service creation
	medicService := newMedic(dm, slackClient)
	require.NotNil(t, medicService)

	return
}
