package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var utcZone = recurrence.Zone{ID: "UTC", Name: "UTC"}

func newMessageAction() *entity.ScheduledAction {
	action := entity.NewWithDefaults(utcZone)
	action.TeamID = "T1"
	action.Trigger = "time for standup"
	action.Channel = "C1"
	action.UserID = "U1"
	return action
}

func savedAction(id string) *entity.ScheduledAction {
	action := newMessageAction()
	action.ID = id
	action.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	action.FirstRecurrence = &first
	return action
}

func Test_schedulingService_SetupChannel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantErr   bool
		check     func(t *testing.T, channel *entity.ScheduleChannel)
	}{
		{
			name: "Should store the channel with every member page",
			buildMock: func(mocks allMocks) {
				info := &slack.Channel{IsMember: true}
				info.ID = "C1"
				info.Name = "standup"

				mocks.mockSlackClient.EXPECT().
					GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C1"}).
					Return(info, nil).Times(1)
				gomock.InOrder(
					mocks.mockSlackClient.EXPECT().
						GetUsersInConversation(&slack.GetUsersInConversationParameters{ChannelID: "C1"}).
						Return([]string{"U1"}, "next", nil),
					mocks.mockSlackClient.EXPECT().
						GetUsersInConversation(&slack.GetUsersInConversationParameters{ChannelID: "C1", Cursor: "next"}).
						Return([]string{"U2"}, "", nil),
				)
				mocks.mockChannelRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(channel *entity.ScheduleChannel) error {
						assert.Equal(t, []string{"U1", "U2"}, channel.Members)
						return nil
					}).Times(1)
			},
			check: func(t *testing.T, channel *entity.ScheduleChannel) {
				assert.Equal(t, "C1", channel.ID)
				assert.Equal(t, "T1", channel.TeamID)
				assert.Equal(t, "#standup", channel.FormattedName())
				assert.True(t, channel.CanBeScheduledBy("U1"))
			},
		},
		{
			name: "Should fail when Slack does not know the channel",
			buildMock: func(mocks allMocks) {
				mocks.mockSlackClient.EXPECT().
					GetConversationInfo(gomock.Any()).
					Return(nil, errors.New("channel_not_found")).Times(1)
			},
			wantErr: true,
		},
		{
			name: "Should fail when the channel cannot be stored",
			buildMock: func(mocks allMocks) {
				info := &slack.Channel{}
				info.ID = "C1"
				mocks.mockSlackClient.EXPECT().GetConversationInfo(gomock.Any()).Return(info, nil)
				mocks.mockSlackClient.EXPECT().GetUsersInConversation(gomock.Any()).Return(nil, "", nil)
				mocks.mockChannelRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, svc := newServiceTestMock(t)
			tt.buildMock(mocks)

			channel, err := svc.SetupChannel(ctx, "C1", "T1", "U1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, channel)
		})
	}
}

func Test_schedulingService_SaveAction(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an invalid recurrence", func(t *testing.T) {
		_, svc := newServiceTestMock(t)
		action := newMessageAction()
		action.Recurrence = action.Recurrence.Clone(recurrence.WithFrequency(0))

		_, err := svc.SaveAction(ctx, action)
		assert.ErrorIs(t, err, domain.ErrInvalidRecurrence)
	})

	t.Run("Should reject an action without trigger", func(t *testing.T) {
		_, svc := newServiceTestMock(t)
		action := newMessageAction()
		action.Trigger = ""

		_, err := svc.SaveAction(ctx, action)
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
	})

	t.Run("Should create a new action", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(action *entity.ScheduledAction) error {
				_, err := uuid.Parse(action.ID)
				require.NoError(t, err)
				return nil
			}).Times(1)

		input := newMessageAction()
		saved, err := svc.SaveAction(ctx, input)
		require.NoError(t, err)

		assert.True(t, input.IsNew(), "input is not modified")
		assert.False(t, saved.IsNew())
		assert.Equal(t, fixedNow, saved.CreatedAt)
		assert.Equal(t, "Every day at 9:00 AM UTC", saved.Recurrence.DisplayString)
		require.NotNil(t, saved.FirstRecurrence)
		require.NotNil(t, saved.SecondRecurrence)
		assert.True(t, time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC).Equal(*saved.FirstRecurrence))
		assert.True(t, time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC).Equal(*saved.SecondRecurrence))
	})

	t.Run("Should update an existing action", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		existing := savedAction("a1")
		mocks.mockScheduledActionRepo.EXPECT().GetByID("a1").Return(existing, nil).Times(1)
		mocks.mockScheduledActionRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(action *entity.ScheduledAction) error {
				assert.Equal(t, "new text", action.Trigger)
				assert.Equal(t, existing.CreatedAt, action.CreatedAt)
				return nil
			}).Times(1)

		input := savedAction("a1")
		input.CreatedAt = time.Time{}
		input.Trigger = "new text"
		saved, err := svc.SaveAction(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "a1", saved.ID)
	})

	t.Run("Should not update a missing action", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().GetByID("gone").Return(nil, nil).Times(1)

		_, err := svc.SaveAction(ctx, savedAction("gone"))
		assert.ErrorIs(t, err, domain.ErrActionNotFound)
	})
}

func Test_schedulingService_ActionLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report missing actions", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().GetByID("nope").Return(nil, nil).Times(2)

		_, err := svc.GetAction(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrActionNotFound)
		assert.ErrorIs(t, svc.DeleteAction(ctx, "nope"), domain.ErrActionNotFound)
	})

	t.Run("Should list by channel", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().
			ListByChannel("C1").
			Return([]*entity.ScheduledAction{savedAction("a1")}, nil).Times(1)

		actions, err := svc.ListActions(ctx, "C1")
		require.NoError(t, err)
		assert.Len(t, actions, 1)
	})

	t.Run("Should delete an existing action", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().GetByID("a1").Return(savedAction("a1"), nil)
		mocks.mockScheduledActionRepo.EXPECT().Delete("a1").Return(nil).Times(1)

		require.NoError(t, svc.DeleteAction(ctx, "a1"))
	})

	t.Run("Should pause an action", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().GetByID("a1").Return(savedAction("a1"), nil)
		mocks.mockScheduledActionRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(action *entity.ScheduledAction) error {
				assert.True(t, action.IsPaused)
				return nil
			}).Times(1)

		require.NoError(t, svc.PauseAction(ctx, "a1"))
	})

	t.Run("Should skip missed runs when resuming", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		paused := savedAction("a1")
		paused.IsPaused = true
		longAgo := time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)
		paused.FirstRecurrence = &longAgo

		mocks.mockScheduledActionRepo.EXPECT().GetByID("a1").Return(paused, nil)
		mocks.mockScheduledActionRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(action *entity.ScheduledAction) error {
				assert.False(t, action.IsPaused)
				assert.True(t, time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC).Equal(*action.FirstRecurrence))
				return nil
			}).Times(1)

		require.NoError(t, svc.ResumeAction(ctx, "a1"))
	})

	t.Run("Should not write when already paused", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		paused := savedAction("a1")
		paused.IsPaused = true
		mocks.mockScheduledActionRepo.EXPECT().GetByID("a1").Return(paused, nil)

		require.NoError(t, svc.PauseAction(ctx, "a1"))
	})
}

func Test_schedulingService_RunDue(t *testing.T) {
	ctx := context.Background()

	t.Run("Should post a message and advance the runs", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().GetDue(fixedNow).Return([]*entity.ScheduledAction{savedAction("a1")}, nil)
		mocks.mockSlackClient.EXPECT().PostMessage("C1", gomock.Any()).Return("C1", "123.456", nil).Times(1)
		mocks.mockScheduledActionRepo.EXPECT().
			UpdateRuns(gomock.Any()).
			DoAndReturn(func(action *entity.ScheduledAction) error {
				assert.Equal(t, 1, action.Recurrence.TimesHasRun)
				assert.True(t, time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC).Equal(*action.FirstRecurrence))
				return nil
			}).Times(1)

		require.NoError(t, svc.RunDue(ctx, fixedNow))
	})

	t.Run("Should post behaviors as a direct message", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		action := savedAction("a1")
		action.ScheduleType = entity.ScheduleTypeBehavior
		action.BehaviorID = "b1"
		action.BehaviorGroupID = "g1"
		action.UseDM = true

		im := &slack.Channel{}
		im.ID = "D1"

		mocks.mockScheduledActionRepo.EXPECT().GetDue(fixedNow).Return([]*entity.ScheduledAction{action}, nil)
		mocks.mockSlackClient.EXPECT().
			OpenConversation(&slack.OpenConversationParameters{Users: []string{"U1"}, ReturnIM: true}).
			Return(im, false, false, nil).Times(1)
		mocks.mockSlackClient.EXPECT().PostMessage("D1", gomock.Any()).Return("D1", "1.1", nil).Times(1)
		mocks.mockScheduledActionRepo.EXPECT().UpdateRuns(gomock.Any()).Return(nil)

		require.NoError(t, svc.RunDue(ctx, fixedNow))
	})

	t.Run("Should delete an action after its last run", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		action := savedAction("a1")
		action.Recurrence = action.Recurrence.Clone(
			recurrence.WithTotalTimesToRun(recurrence.Int(2)),
			recurrence.WithTimesHasRun(1),
		)

		mocks.mockScheduledActionRepo.EXPECT().GetDue(fixedNow).Return([]*entity.ScheduledAction{action}, nil)
		mocks.mockSlackClient.EXPECT().PostMessage("C1", gomock.Any()).Return("C1", "1.1", nil)
		mocks.mockScheduledActionRepo.EXPECT().Delete("a1").Return(nil).Times(1)

		require.NoError(t, svc.RunDue(ctx, fixedNow))
	})

	t.Run("Should keep going when one action fails", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		failing := savedAction("a1")
		failing.Channel = "C-broken"
		working := savedAction("a2")

		mocks.mockScheduledActionRepo.EXPECT().GetDue(fixedNow).Return([]*entity.ScheduledAction{failing, working}, nil)
		mocks.mockSlackClient.EXPECT().
			PostMessage("C-broken", gomock.Any()).
			Return("", "", errors.New("not_in_channel")).Times(3)
		mocks.mockSlackClient.EXPECT().PostMessage("C1", gomock.Any()).Return("C1", "1.1", nil).Times(1)
		mocks.mockScheduledActionRepo.EXPECT().
			UpdateRuns(gomock.Any()).
			DoAndReturn(func(action *entity.ScheduledAction) error {
				if action.ID == "a1" {
					assert.Equal(t, 0, action.Recurrence.TimesHasRun)
				}
				return nil
			}).Times(2)

		err := svc.RunDue(ctx, fixedNow)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "action a1")
		assert.Contains(t, err.Error(), "not_in_channel")
		assert.NotContains(t, err.Error(), "action a2")
	})

	t.Run("Should fail when due actions cannot be loaded", func(t *testing.T) {
		mocks, svc := newServiceTestMock(t)
		mocks.mockScheduledActionRepo.EXPECT().GetDue(fixedNow).Return(nil, errors.New("locked"))

		assert.Error(t, svc.RunDue(ctx, fixedNow))
	})
}
