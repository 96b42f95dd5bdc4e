package domain

import "github.com/pkg/errors"

var (
	ErrActionNotFound    = errors.New("scheduled action not found")
	ErrChannelNotFound   = errors.New("channel not found")
	ErrInvalidRecurrence = errors.New("recurrence is not valid")
	ErrInvalidAction     = errors.New("scheduled action is not valid")
	ErrNotAllowed        = errors.New("you cannot schedule actions in this channel")
)

// SlackPostAttempts bounds retries of a single Slack post.
const SlackPostAttempts = 3
