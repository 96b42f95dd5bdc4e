package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/slack-schedule-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager         *mocks.MockDataManager
	mockChannelRepo         *mocks.MockChannelRepo
	mockScheduledActionRepo *mocks.MockScheduledActionRepo
	mockSlackClient         *mocks.MockSlackClient
}

var fixedNow = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

func newServiceTestMock(t *testing.T) (m allMocks, svc *schedulingService) {
	t.Helper()

	ctrl := gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	scheduledActionRepo := mocks.NewMockScheduledActionRepo(ctrl)
	dm.EXPECT().ScheduledAction().Return(scheduledActionRepo).AnyTimes()

	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:         dm,
		mockChannelRepo:         channelRepo,
		mockScheduledActionRepo: scheduledActionRepo,
		mockSlackClient:         slackClient,
	}

	svc = newScheduling(dm, slackClient)
	require.NotNil(t, svc)
	svc.now = func() time.Time { return fixedNow }
	svc.retryDelay = time.Millisecond

	return m, svc
}
