package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/entity"
	"github.com/pkg/errors"
)

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

// Upsert inserts the channel or refreshes every flag of an existing one.
func (r *channelRepo) Upsert(channel *entity.ScheduleChannel) error {
	query := `
		INSERT INTO schedule_channels (slack_channel_id, slack_team_id, name, context,
			is_bot_member, is_self_dm, is_other_dm, is_private_channel, is_private_group,
			is_archived, is_org_shared, is_externally_shared, is_read_only, members,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slack_channel_id) DO UPDATE SET
			slack_team_id = excluded.slack_team_id,
			name = excluded.name,
			context = excluded.context,
			is_bot_member = excluded.is_bot_member,
			is_self_dm = excluded.is_self_dm,
			is_other_dm = excluded.is_other_dm,
			is_private_channel = excluded.is_private_channel,
			is_private_group = excluded.is_private_group,
			is_archived = excluded.is_archived,
			is_org_shared = excluded.is_org_shared,
			is_externally_shared = excluded.is_externally_shared,
			is_read_only = excluded.is_read_only,
			members = excluded.members,
			updated_at = excluded.updated_at
	`

	membersJSON, err := json.Marshal(channel.Members)
	if err != nil {
		return errors.Wrap(err, "failed to marshal members")
	}

	now := time.Now().UTC()
	if channel.CreatedAt.IsZero() {
		channel.CreatedAt = now
	}
	channel.UpdatedAt = now

	_, err = r.db.Exec(query,
		channel.ID,
		channel.TeamID,
		channel.Name,
		channel.Context,
		channel.IsBotMember,
		channel.IsSelfDM,
		channel.IsOtherDM,
		channel.IsPrivateChannel,
		channel.IsPrivateGroup,
		channel.IsArchived,
		channel.IsOrgShared,
		channel.IsExternallyShared,
		channel.IsReadOnly,
		string(membersJSON),
		channel.CreatedAt,
		channel.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to upsert channel")
	}

	return nil
}

func (r *channelRepo) GetBySlackID(slackChannelID string) (*entity.ScheduleChannel, error) {
	channel := &entity.ScheduleChannel{}
	query := `
		SELECT slack_channel_id, slack_team_id, name, context,
			is_bot_member, is_self_dm, is_other_dm, is_private_channel, is_private_group,
			is_archived, is_org_shared, is_externally_shared, is_read_only, members,
			created_at, updated_at
		FROM schedule_channels
		WHERE slack_channel_id = ?
	`

	var membersJSON string
	err := r.db.QueryRow(query, slackChannelID).Scan(
		&channel.ID,
		&channel.TeamID,
		&channel.Name,
		&channel.Context,
		&channel.IsBotMember,
		&channel.IsSelfDM,
		&channel.IsOtherDM,
		&channel.IsPrivateChannel,
		&channel.IsPrivateGroup,
		&channel.IsArchived,
		&channel.IsOrgShared,
		&channel.IsExternallyShared,
		&channel.IsReadOnly,
		&membersJSON,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get channel")
	}

	if err := json.Unmarshal([]byte(membersJSON), &channel.Members); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal members")
	}

	return channel, nil
}
