package service

import (
	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
)

type Instance struct {
	Scheduling contract.SchedulingService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient) *Instance {
	return &Instance{
		Scheduling: newScheduling(dm, slackClient),
	}
}
