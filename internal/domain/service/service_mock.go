package service

import (
	"context"
	"testing"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/message"
	"github.com/diegoclair/standup-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockStandupRepo *mocks.MockStandupRepo
	mockChatClient  *mocks.MockChatClient
	mockLocker      *mocks.MockLocker
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	standupRepo := mocks.NewMockStandupRepo(ctrl)
	dm.EXPECT().Standup().Return(standupRepo).AnyTimes()

	// transactions run inline against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	chatClient := mocks.NewMockChatClient(ctrl)
	locker := mocks.NewMockLocker(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockStandupRepo: standupRepo,
		mockChatClient:  chatClient,
		mockLocker:      locker,
	}

	// validate service creation
	standupService := newStandup(dm, chatClient, message.Default(), "!", zap.NewNop())
	require.NotNil(t, standupService)

	return
}
