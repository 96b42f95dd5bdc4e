package entity

import (
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestScheduleChannel_Names(t *testing.T) {
	tests := []struct {
		name            string
		channel         ScheduleChannel
		wantPublic      bool
		wantFormatted   string
		wantDescription string
	}{
		{
			name:            "Should format a public channel",
			channel:         ScheduleChannel{Name: "general"},
			wantPublic:      true,
			wantFormatted:   "#general",
			wantDescription: "the channel #general",
		},
		{
			name:            "Should lock a private channel",
			channel:         ScheduleChannel{Name: "secret", IsPrivateChannel: true},
			wantFormatted:   "🔒 secret",
			wantDescription: "the channel 🔒 secret",
		},
		{
			name:            "Should describe a private group",
			channel:         ScheduleChannel{Name: "mpdm-a-b", IsPrivateGroup: true},
			wantFormatted:   "🔒 mpdm-a-b",
			wantDescription: "the private group 🔒 mpdm-a-b",
		},
		{
			name:            "Should name a direct message to the user",
			channel:         ScheduleChannel{Name: "D1", IsSelfDM: true},
			wantFormatted:   "🔒 Direct message to you",
			wantDescription: "a direct message to you",
		},
		{
			name:            "Should name a direct message to someone else",
			channel:         ScheduleChannel{Name: "D2", IsOtherDM: true},
			wantFormatted:   "🔒 Direct message to someone else",
			wantDescription: "a direct message to someone else",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPublic, tt.channel.IsPublic())
			assert.Equal(t, tt.wantFormatted, tt.channel.FormattedName())
			assert.Equal(t, tt.wantDescription, tt.channel.Description())
		})
	}

	assert.Equal(t, "general", ScheduleChannel{Name: "general"}.DisplayName(false))
	assert.Equal(t, "#", ScheduleChannel{}.DisplayName(true))
}

func TestScheduleChannel_CanBeScheduledBy(t *testing.T) {
	tests := []struct {
		name    string
		channel ScheduleChannel
		want    bool
	}{
		{name: "Should allow a public channel with the bot", channel: ScheduleChannel{IsBotMember: true}, want: true},
		{name: "Should reject a channel without the bot", channel: ScheduleChannel{}, want: false},
		{name: "Should reject an archived channel", channel: ScheduleChannel{IsBotMember: true, IsArchived: true}, want: false},
		{name: "Should reject a read only channel", channel: ScheduleChannel{IsBotMember: true, IsReadOnly: true}, want: false},
		{
			name:    "Should allow a private channel the user is in",
			channel: ScheduleChannel{IsBotMember: true, IsPrivateChannel: true, Members: []string{"U1", "U2"}},
			want:    true,
		},
		{
			name:    "Should reject a private channel the user is not in",
			channel: ScheduleChannel{IsBotMember: true, IsPrivateChannel: true, Members: []string{"U2"}},
			want:    false,
		},
		{name: "Should allow the user's own DM", channel: ScheduleChannel{IsBotMember: true, IsSelfDM: true}, want: true},
		{name: "Should reject someone else's DM", channel: ScheduleChannel{IsBotMember: true, IsOtherDM: true}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.channel.CanBeScheduledBy("U1"))
		})
	}
}

func TestFromSlackChannel(t *testing.T) {
	t.Run("Should map a private channel", func(t *testing.T) {
		ch := &slack.Channel{IsMember: true}
		ch.ID = "C1"
		ch.Name = "secret"
		ch.IsPrivate = true

		channel := FromSlackChannel(ch, "T1", []string{"U1"}, "U1")

		assert.Equal(t, "C1", channel.ID)
		assert.Equal(t, "T1", channel.TeamID)
		assert.Equal(t, ContextSlack, channel.Context)
		assert.True(t, channel.IsPrivateChannel)
		assert.False(t, channel.IsPrivateGroup)
		assert.True(t, channel.IsBotMember)
		assert.True(t, channel.HasMember("U1"))
	})

	t.Run("Should tell the user's DM from someone else's", func(t *testing.T) {
		ch := &slack.Channel{}
		ch.ID = "D1"
		ch.IsIM = true
		ch.User = "U1"

		self := FromSlackChannel(ch, "T1", nil, "U1")
		assert.True(t, self.IsSelfDM)
		assert.True(t, self.IsBotMember)
		assert.False(t, self.IsPrivateChannel)

		other := FromSlackChannel(ch, "T1", nil, "U2")
		assert.True(t, other.IsOtherDM)
		assert.False(t, other.IsSelfDM)
	})

	t.Run("Should map a group DM to a private group", func(t *testing.T) {
		ch := &slack.Channel{IsMember: true}
		ch.IsMpIM = true
		ch.IsPrivate = true

		channel := FromSlackChannel(ch, "T1", nil, "U1")
		assert.True(t, channel.IsPrivateGroup)
		assert.False(t, channel.IsPrivateChannel)
	})
}
