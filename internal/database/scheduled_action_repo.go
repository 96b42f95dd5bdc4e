package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/pkg/errors"
)

const scheduledActionColumns = `
	id, slack_team_id, schedule_type, behavior_id, behavior_group_id, trigger_text,
	arguments, recurrence, first_recurrence, second_recurrence, use_dm, channel,
	slack_user_id, is_paused, created_at, updated_at
`

type scheduledActionRepo struct {
	db dbConn
}

func newScheduledActionRepo(db dbConn) contract.ScheduledActionRepo {
	return &scheduledActionRepo{db: db}
}

func (r *scheduledActionRepo) Create(action *entity.ScheduledAction) error {
	query := `INSERT INTO scheduled_actions (` + scheduledActionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	argumentsJSON, recurrenceJSON, err := encodeActionColumns(action)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if action.CreatedAt.IsZero() {
		action.CreatedAt = now
	}
	action.UpdatedAt = now

	_, err = r.db.Exec(query,
		action.ID,
		action.TeamID,
		string(action.ScheduleType),
		action.BehaviorID,
		action.BehaviorGroupID,
		action.Trigger,
		argumentsJSON,
		recurrenceJSON,
		utcOrNil(action.FirstRecurrence),
		utcOrNil(action.SecondRecurrence),
		action.UseDM,
		action.Channel,
		action.UserID,
		action.IsPaused,
		action.CreatedAt.UTC(),
		action.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to create scheduled action")
	}

	return nil
}

func (r *scheduledActionRepo) GetByID(id string) (*entity.ScheduledAction, error) {
	query := `SELECT ` + scheduledActionColumns + ` FROM scheduled_actions WHERE id = ?`

	action, err := scanScheduledAction(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get scheduled action")
	}

	return action, nil
}

func (r *scheduledActionRepo) Update(action *entity.ScheduledAction) error {
	query := `
		UPDATE scheduled_actions SET
			schedule_type = ?,
			behavior_id = ?,
			behavior_group_id = ?,
			trigger_text = ?,
			arguments = ?,
			recurrence = ?,
			first_recurrence = ?,
			second_recurrence = ?,
			use_dm = ?,
			channel = ?,
			slack_user_id = ?,
			is_paused = ?,
			updated_at = ?
		WHERE id = ?
	`

	argumentsJSON, recurrenceJSON, err := encodeActionColumns(action)
	if err != nil {
		return err
	}
	action.UpdatedAt = time.Now().UTC()

	_, err = r.db.Exec(query,
		string(action.ScheduleType),
		action.BehaviorID,
		action.BehaviorGroupID,
		action.Trigger,
		argumentsJSON,
		recurrenceJSON,
		utcOrNil(action.FirstRecurrence),
		utcOrNil(action.SecondRecurrence),
		action.UseDM,
		action.Channel,
		action.UserID,
		action.IsPaused,
		action.UpdatedAt,
		action.ID,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update scheduled action")
	}

	return nil
}

func (r *scheduledActionRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM scheduled_actions WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "failed to delete scheduled action")
	}
	return nil
}

func (r *scheduledActionRepo) ListByChannel(channelID string) ([]*entity.ScheduledAction, error) {
	query := `SELECT ` + scheduledActionColumns + ` FROM scheduled_actions
		WHERE channel = ?
		ORDER BY created_at, id`
	return r.list(query, channelID)
}

func (r *scheduledActionRepo) ListByTeam(teamID string) ([]*entity.ScheduledAction, error) {
	query := `SELECT ` + scheduledActionColumns + ` FROM scheduled_actions
		WHERE slack_team_id = ?
		ORDER BY created_at, id`
	return r.list(query, teamID)
}

func (r *scheduledActionRepo) GetDue(now time.Time) ([]*entity.ScheduledAction, error) {
	query := `SELECT ` + scheduledActionColumns + ` FROM scheduled_actions
		WHERE is_paused = 0 AND first_recurrence IS NOT NULL AND first_recurrence <= ?
		ORDER BY first_recurrence, id`
	return r.list(query, now.UTC())
}

// UpdateRuns stores the run bookkeeping after a dispatch: the recurrence (for its
// run count) and the next run times.
func (r *scheduledActionRepo) UpdateRuns(action *entity.ScheduledAction) error {
	query := `
		UPDATE scheduled_actions SET
			recurrence = ?,
			first_recurrence = ?,
			second_recurrence = ?,
			updated_at = ?
		WHERE id = ?
	`

	recurrenceJSON, err := json.Marshal(action.Recurrence)
	if err != nil {
		return errors.Wrap(err, "failed to marshal recurrence")
	}
	action.UpdatedAt = time.Now().UTC()

	_, err = r.db.Exec(query,
		string(recurrenceJSON),
		utcOrNil(action.FirstRecurrence),
		utcOrNil(action.SecondRecurrence),
		action.UpdatedAt,
		action.ID,
	)
	if err != nil {
		return errors.Wrap(err, "failed to update scheduled action runs")
	}

	return nil
}

func (r *scheduledActionRepo) list(query string, args ...any) ([]*entity.ScheduledAction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scheduled actions")
	}
	defer rows.Close()

	actions := []*entity.ScheduledAction{}
	for rows.Next() {
		action, err := scanScheduledAction(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan scheduled action")
		}
		actions = append(actions, action)
	}

	return actions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScheduledAction(row rowScanner) (*entity.ScheduledAction, error) {
	action := &entity.ScheduledAction{}
	var (
		scheduleType     string
		argumentsJSON    string
		recurrenceJSON   string
		firstRecurrence  sql.NullTime
		secondRecurrence sql.NullTime
	)

	err := row.Scan(
		&action.ID,
		&action.TeamID,
		&scheduleType,
		&action.BehaviorID,
		&action.BehaviorGroupID,
		&action.Trigger,
		&argumentsJSON,
		&recurrenceJSON,
		&firstRecurrence,
		&secondRecurrence,
		&action.UseDM,
		&action.Channel,
		&action.UserID,
		&action.IsPaused,
		&action.CreatedAt,
		&action.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	action.ScheduleType = entity.ScheduleType(scheduleType)
	if err := json.Unmarshal([]byte(argumentsJSON), &action.Arguments); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal arguments")
	}
	if action.Recurrence, err = recurrence.FromJSON([]byte(recurrenceJSON)); err != nil {
		return nil, err
	}
	if firstRecurrence.Valid {
		action.FirstRecurrence = &firstRecurrence.Time
	}
	if secondRecurrence.Valid {
		action.SecondRecurrence = &secondRecurrence.Time
	}

	return action, nil
}

func encodeActionColumns(action *entity.ScheduledAction) (string, string, error) {
	arguments := action.Arguments
	if arguments == nil {
		arguments = []entity.Argument{}
	}
	argumentsJSON, err := json.Marshal(arguments)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to marshal arguments")
	}

	recurrenceJSON, err := json.Marshal(action.Recurrence)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to marshal recurrence")
	}

	return string(argumentsJSON), string(recurrenceJSON), nil
}

// utcOrNil stores run times in UTC so that they compare correctly as text.
func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
