package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/diegoclair/slack-schedule-bot/internal/domain"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/slack-schedule-bot/pkg/logger"
	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

type schedulingService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	now         func() time.Time
	retryDelay  time.Duration
}

func newScheduling(dm contract.DataManager, slackClient contract.SlackClient) *schedulingService {
	return &schedulingService{
		dm:          dm,
		slackClient: slackClient,
		now:         time.Now,
		retryDelay:  time.Second,
	}
}

// SetupChannel loads a conversation and its members from Slack and stores them.
func (s *schedulingService) SetupChannel(ctx context.Context, slackChannelID, teamID, requestingUserID string) (*entity.ScheduleChannel, error) {
	info, err := s.slackClient.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: slackChannelID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get conversation info")
	}

	members, err := s.conversationMembers(slackChannelID)
	if err != nil {
		return nil, err
	}

	channel := entity.FromSlackChannel(info, teamID, members, requestingUserID)
	if err := s.dm.Channel().Upsert(channel); err != nil {
		return nil, errors.Wrap(err, "failed to save channel")
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"channel": channel.ID,
		"members": len(channel.Members),
	}).Debug("channel refreshed")

	return channel, nil
}

func (s *schedulingService) conversationMembers(channelID string) ([]string, error) {
	var members []string
	cursor := ""
	for {
		page, next, err := s.slackClient.GetUsersInConversation(&slack.GetUsersInConversationParameters{
			ChannelID: channelID,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get conversation members")
		}
		members = append(members, page...)
		if next == "" {
			return members, nil
		}
		cursor = next
	}
}

// SaveAction validates and stores an action, creating it when it has no id yet.
// The display string and next run times are recomputed on every save.
func (s *schedulingService) SaveAction(ctx context.Context, action *entity.ScheduledAction) (*entity.ScheduledAction, error) {
	if !action.HasValidRecurrence() {
		return nil, domain.ErrInvalidRecurrence
	}
	if !action.IsValid() {
		return nil, domain.ErrInvalidAction
	}

	saved := action.Clone()
	saved.Recurrence = saved.Recurrence.WithDescription()
	now := s.now()

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if saved.IsNew() {
			saved.ID = uuid.NewString()
			saved.CreatedAt = now
			if err := saved.UpdateNextRuns(now); err != nil {
				return err
			}
			return dm.ScheduledAction().Create(saved)
		}

		existing, err := dm.ScheduledAction().GetByID(saved.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrActionNotFound
		}
		saved.CreatedAt = existing.CreatedAt
		if err := saved.UpdateNextRuns(now); err != nil {
			return err
		}
		return dm.ScheduledAction().Update(saved)
	})
	if err != nil {
		return nil, err
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"action_id":  saved.ID,
		"recurrence": saved.Recurrence.DisplayString,
	}).Info("scheduled action saved")

	return saved, nil
}

func (s *schedulingService) GetAction(ctx context.Context, id string) (*entity.ScheduledAction, error) {
	action, err := s.dm.ScheduledAction().GetByID(id)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, domain.ErrActionNotFound
	}
	return action, nil
}

func (s *schedulingService) ListActions(ctx context.Context, channelID string) ([]*entity.ScheduledAction, error) {
	return s.dm.ScheduledAction().ListByChannel(channelID)
}

func (s *schedulingService) DeleteAction(ctx context.Context, id string) error {
	if _, err := s.GetAction(ctx, id); err != nil {
		return err
	}
	if err := s.dm.ScheduledAction().Delete(id); err != nil {
		return err
	}
	logger.G(ctx).WithField("action_id", id).Info("scheduled action deleted")
	return nil
}

func (s *schedulingService) PauseAction(ctx context.Context, id string) error {
	return s.setPaused(ctx, id, true)
}

// ResumeAction unpauses an action. Runs missed while paused are skipped.
func (s *schedulingService) ResumeAction(ctx context.Context, id string) error {
	return s.setPaused(ctx, id, false)
}

func (s *schedulingService) setPaused(ctx context.Context, id string, paused bool) error {
	action, err := s.GetAction(ctx, id)
	if err != nil {
		return err
	}
	if action.IsPaused == paused {
		return nil
	}

	action.IsPaused = paused
	if !paused {
		if err := action.UpdateNextRuns(s.now()); err != nil {
			return err
		}
	}
	if err := s.dm.ScheduledAction().Update(action); err != nil {
		return err
	}

	logger.G(ctx).WithFields(logrus.Fields{"action_id": id, "paused": paused}).Info("scheduled action updated")
	return nil
}

// RunDue posts every action due at now. One failing action does not stop the
// others; their errors are returned together.
func (s *schedulingService) RunDue(ctx context.Context, now time.Time) error {
	due, err := s.dm.ScheduledAction().GetDue(now)
	if err != nil {
		return errors.Wrap(err, "failed to load due actions")
	}

	var result *multierror.Error
	for _, action := range due {
		if err := s.run(ctx, action, now); err != nil {
			logger.G(ctx).WithError(err).WithField("action_id", action.ID).Error("scheduled action failed")
			result = multierror.Append(result, errors.Wrapf(err, "action %s", action.ID))
		}
	}

	return result.ErrorOrNil()
}

func (s *schedulingService) run(ctx context.Context, action *entity.ScheduledAction, now time.Time) error {
	postErr := s.post(ctx, action)
	if postErr == nil {
		action.Recurrence = action.Recurrence.Clone(recurrence.WithTimesHasRun(action.Recurrence.TimesHasRun + 1))
	}

	if action.Recurrence.IsExhausted() {
		logger.G(ctx).WithField("action_id", action.ID).Info("scheduled action finished its runs")
		return s.dm.ScheduledAction().Delete(action.ID)
	}

	// a failed post still moves on to the next run instead of retrying every tick
	if err := action.UpdateNextRuns(now); err != nil {
		return multierror.Append(postErr, err).ErrorOrNil()
	}
	if err := s.dm.ScheduledAction().UpdateRuns(action); err != nil {
		return multierror.Append(postErr, err).ErrorOrNil()
	}

	return postErr
}

func (s *schedulingService) post(ctx context.Context, action *entity.ScheduledAction) error {
	target := action.Target()
	if target != action.Channel {
		im, _, _, err := s.slackClient.OpenConversation(&slack.OpenConversationParameters{
			Users:    []string{target},
			ReturnIM: true,
		})
		if err != nil {
			return errors.Wrap(err, "failed to open direct message")
		}
		target = im.ID
	}

	text := messageText(action)
	return retry.Do(
		func() error {
			_, _, err := s.slackClient.PostMessage(target, slack.MsgOptionText(text, false))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(domain.SlackPostAttempts),
		retry.Delay(s.retryDelay),
		retry.LastErrorOnly(true),
	)
}

func messageText(action *entity.ScheduledAction) string {
	if action.ScheduleType == entity.ScheduleTypeMessage {
		return action.Trigger
	}

	text := fmt.Sprintf("Running scheduled action `%s` of skill `%s`", action.BehaviorID, action.BehaviorGroupID)
	if len(action.Arguments) == 0 {
		return text
	}
	args := make([]string, 0, len(action.Arguments))
	for _, arg := range action.Arguments {
		args = append(args, fmt.Sprintf("%s=%s", arg.Name, arg.Value))
	}
	return text + " with " + strings.Join(args, ", ")
}
