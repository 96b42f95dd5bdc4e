package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	ScheduledAction() ScheduledActionRepo
}

// ChannelRepo stores the channels actions post to
type ChannelRepo interface {
	Upsert(channel *entity.ScheduleChannel) error
	GetBySlackID(slackChannelID string) (*entity.ScheduleChannel, error)
}

// ScheduledActionRepo stores scheduled actions
type ScheduledActionRepo interface {
	Create(action *entity.ScheduledAction) error
	GetByID(id string) (*entity.ScheduledAction, error)
	Update(action *entity.ScheduledAction) error
	Delete(id string) error
	ListByChannel(channelID string) ([]*entity.ScheduledAction, error)
	ListByTeam(teamID string) ([]*entity.ScheduledAction, error)
	// GetDue returns unpaused actions whose first recurrence is at or before now.
	GetDue(now time.Time) ([]*entity.ScheduledAction, error)
	UpdateRuns(action *entity.ScheduledAction) error
}
