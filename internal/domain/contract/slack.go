package contract

import "github.com/slack-go/slack"

//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

// SlackClient is the part of *slack.Client the bot uses
type SlackClient interface {
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)
	GetUsersInConversation(params *slack.GetUsersInConversationParameters) ([]string, string, error)
	OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
