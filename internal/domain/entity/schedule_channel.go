package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// ScheduleChannel is a place scheduled actions can post to: a channel, a private
// group or a direct message.
type ScheduleChannel struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Context            string    `json:"context"`
	TeamID             string    `json:"teamId"`
	IsBotMember        bool      `json:"isBotMember"`
	IsSelfDM           bool      `json:"isSelfDm"`
	IsOtherDM          bool      `json:"isOtherDm"`
	IsPrivateChannel   bool      `json:"isPrivateChannel"`
	IsPrivateGroup     bool      `json:"isPrivateGroup"`
	IsArchived         bool      `json:"isArchived"`
	IsOrgShared        bool      `json:"isOrgShared"`
	IsExternallyShared bool      `json:"isExternallyShared"`
	IsReadOnly         bool      `json:"isReadOnly"`
	Members            []string  `json:"members"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}

const ContextSlack = "slack"

// FromSlackChannel builds a ScheduleChannel as seen by requestingUserID.
func FromSlackChannel(ch *slack.Channel, teamID string, members []string, requestingUserID string) *ScheduleChannel {
	channel := &ScheduleChannel{
		ID:                 ch.ID,
		Name:               ch.Name,
		Context:            ContextSlack,
		TeamID:             teamID,
		IsBotMember:        ch.IsMember || ch.IsIM,
		IsPrivateGroup:     ch.IsMpIM,
		IsPrivateChannel:   ch.IsPrivate && !ch.IsMpIM && !ch.IsIM,
		IsArchived:         ch.IsArchived,
		IsOrgShared:        ch.IsOrgShared,
		IsExternallyShared: ch.IsExtShared,
		IsReadOnly:         ch.IsReadOnly,
		Members:            append([]string{}, members...),
	}
	if ch.IsIM {
		channel.IsSelfDM = ch.User == requestingUserID
		channel.IsOtherDM = !channel.IsSelfDM
	}
	return channel
}

func (c ScheduleChannel) IsPublic() bool {
	return !c.IsSelfDM && !c.IsOtherDM && !c.IsPrivateGroup && !c.IsPrivateChannel
}

func (c ScheduleChannel) IsDM() bool {
	return c.IsSelfDM || c.IsOtherDM
}

// Prefix is "#" for public channels and a lock for everything else.
func (c ScheduleChannel) Prefix() string {
	if c.IsPublic() {
		return "#"
	}
	return "🔒 "
}

func (c ScheduleChannel) unformattedName() string {
	switch {
	case c.IsSelfDM:
		return "Direct message to you"
	case c.IsOtherDM:
		return "Direct message to someone else"
	default:
		return c.Name
	}
}

// DisplayName returns the channel name, prefixed when formatting is set.
func (c ScheduleChannel) DisplayName(formatting bool) string {
	name := c.unformattedName()
	if !formatting {
		return name
	}
	return strings.TrimSpace(c.Prefix() + name)
}

func (c ScheduleChannel) FormattedName() string {
	return c.DisplayName(true)
}

// Description completes sentences such as "Posts to ...".
func (c ScheduleChannel) Description() string {
	switch {
	case c.IsSelfDM:
		return "a direct message to you"
	case c.IsOtherDM:
		return "a direct message to someone else"
	case c.IsPrivateGroup:
		return "the private group " + c.FormattedName()
	default:
		return "the channel " + c.FormattedName()
	}
}

func (c ScheduleChannel) HasMember(userID string) bool {
	return slices.Contains(c.Members, userID)
}

// CanBeScheduledBy reports whether userID may schedule posts here: the bot must be
// able to write and private places need the user as a member.
func (c ScheduleChannel) CanBeScheduledBy(userID string) bool {
	if c.IsArchived || c.IsReadOnly || !c.IsBotMember || c.IsOtherDM {
		return false
	}
	if c.IsSelfDM || c.IsPublic() {
		return true
	}
	return c.HasMember(userID)
}
