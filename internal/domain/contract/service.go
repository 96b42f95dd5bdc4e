package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain/entity"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

type SchedulingService interface {
	SetupChannel(ctx context.Context, slackChannelID, teamID, requestingUserID string) (*entity.ScheduleChannel, error)
	SaveAction(ctx context.Context, action *entity.ScheduledAction) (*entity.ScheduledAction, error)
	GetAction(ctx context.Context, id string) (*entity.ScheduledAction, error)
	ListActions(ctx context.Context, channelID string) ([]*entity.ScheduledAction, error)
	DeleteAction(ctx context.Context, id string) error
	PauseAction(ctx context.Context, id string) error
	ResumeAction(ctx context.Context, id string) error
	RunDue(ctx context.Context, now time.Time) error
}
