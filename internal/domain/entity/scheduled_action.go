package entity

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

type ScheduleType string

const (
	// ScheduleTypeMessage posts Trigger as if a user had typed it.
	ScheduleTypeMessage ScheduleType = "message"
	// ScheduleTypeBehavior runs an action of a skill directly.
	ScheduleTypeBehavior ScheduleType = "behavior"
)

type Argument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UnmarshalJSON accepts any JSON value. Non-string values keep their JSON text,
// null becomes "".
func (a *Argument) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	a.Name = aux.Name
	a.Value = ""
	raw := bytes.TrimSpace(aux.Value)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, &a.Value); err == nil {
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return errors.Wrapf(err, "invalid value for argument %q", aux.Name)
	}
	a.Value = compact.String()
	return nil
}

// ScheduledAction is something the bot does on a recurrence: say a message or run
// an action, in a channel or as a direct message.
type ScheduledAction struct {
	ID              string                `json:"id,omitempty"`
	TeamID          string                `json:"teamId,omitempty"`
	ScheduleType    ScheduleType          `json:"scheduleType"`
	BehaviorID      string                `json:"behaviorId,omitempty"`
	BehaviorGroupID string                `json:"behaviorGroupId,omitempty"`
	Trigger         string                `json:"trigger,omitempty"`
	Arguments       []Argument            `json:"arguments"`
	Recurrence      recurrence.Recurrence `json:"recurrence"`
	// FirstRecurrence and SecondRecurrence are the next two run times.
	FirstRecurrence  *time.Time `json:"firstRecurrence"`
	SecondRecurrence *time.Time `json:"secondRecurrence"`
	UseDM            bool       `json:"useDM"`
	Channel          string     `json:"channel"`
	UserID           string     `json:"userId,omitempty"`
	IsPaused         bool       `json:"isPaused"`
	CreatedAt        time.Time  `json:"-"`
	UpdatedAt        time.Time  `json:"-"`
}

// NewWithDefaults returns a blank daily message in zone.
func NewWithDefaults(zone recurrence.Zone) *ScheduledAction {
	return &ScheduledAction{
		ScheduleType: ScheduleTypeMessage,
		Arguments:    []Argument{},
		Recurrence:   recurrence.NewWithDefaults(zone),
	}
}

// ScheduledActionFromJSON decodes a scheduled action. Run times may be RFC 3339
// strings, epoch milliseconds or null.
func ScheduledActionFromJSON(data []byte) (*ScheduledAction, error) {
	action := &ScheduledAction{}
	if err := json.Unmarshal(data, action); err != nil {
		return nil, err
	}
	return action, nil
}

func (a *ScheduledAction) UnmarshalJSON(data []byte) error {
	type plain ScheduledAction
	aux := struct {
		*plain
		FirstRecurrence  json.RawMessage `json:"firstRecurrence"`
		SecondRecurrence json.RawMessage `json:"secondRecurrence"`
	}{plain: (*plain)(a)}

	a.Recurrence = recurrence.New()
	if err := json.Unmarshal(data, &aux); err != nil {
		return errors.Wrap(err, "failed to decode scheduled action")
	}

	var err error
	if a.FirstRecurrence, err = timestampFromJSON(aux.FirstRecurrence); err != nil {
		return errors.Wrap(err, "invalid firstRecurrence")
	}
	if a.SecondRecurrence, err = timestampFromJSON(aux.SecondRecurrence); err != nil {
		return errors.Wrap(err, "invalid secondRecurrence")
	}
	if a.Arguments == nil {
		a.Arguments = []Argument{}
	}
	return nil
}

func timestampFromJSON(raw json.RawMessage) (*time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	var ms int64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return nil, errors.Errorf("unsupported timestamp %s", raw)
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}

func (a ScheduledAction) IsNew() bool {
	return a.ID == ""
}

// IsValidForScheduleType checks the target: messages need a trigger, behaviors
// need both ids.
func (a ScheduledAction) IsValidForScheduleType() bool {
	switch a.ScheduleType {
	case ScheduleTypeMessage:
		return len(a.Trigger) > 0
	case ScheduleTypeBehavior:
		return len(a.BehaviorID) > 0 && len(a.BehaviorGroupID) > 0
	default:
		return false
	}
}

func (a ScheduledAction) HasValidChannel() bool {
	return len(a.Channel) > 0
}

func (a ScheduledAction) HasValidRecurrence() bool {
	return a.Recurrence.IsValid()
}

func (a ScheduledAction) IsValid() bool {
	return a.IsValidForScheduleType() && a.HasValidChannel() && a.HasValidRecurrence()
}

// Clone returns a deep copy.
func (a ScheduledAction) Clone() *ScheduledAction {
	c := a
	c.Arguments = append([]Argument{}, a.Arguments...)
	c.Recurrence = a.Recurrence.Clone()
	c.FirstRecurrence = copyTime(a.FirstRecurrence)
	c.SecondRecurrence = copyTime(a.SecondRecurrence)
	return &c
}

// ForEqualityComparison drops the recurrence's presentation fields.
func (a ScheduledAction) ForEqualityComparison() *ScheduledAction {
	c := a.Clone()
	c.Recurrence = a.Recurrence.ForEqualityComparison()
	return c
}

// IsIdenticalTo compares everything a user can edit.
func (a ScheduledAction) IsIdenticalTo(other ScheduledAction) bool {
	return cmp.Equal(a.ForEqualityComparison(), other.ForEqualityComparison(),
		cmpopts.EquateEmpty(),
		cmpopts.IgnoreFields(ScheduledAction{}, "CreatedAt", "UpdatedAt"),
	)
}

// UpdateNextRuns recomputes the next two run times after now. The recurrence's
// intervals count from CreatedAt.
func (a *ScheduledAction) UpdateNextRuns(now time.Time) error {
	anchor := a.CreatedAt
	if anchor.IsZero() {
		anchor = now
	}
	runs, err := a.Recurrence.NextRuns(anchor, now, 2)
	if err != nil {
		return err
	}

	a.FirstRecurrence, a.SecondRecurrence = nil, nil
	if len(runs) > 0 {
		a.FirstRecurrence = &runs[0]
	}
	if len(runs) > 1 {
		a.SecondRecurrence = &runs[1]
	}
	return nil
}

// IsDue reports whether the next run is at or before now.
func (a ScheduledAction) IsDue(now time.Time) bool {
	return !a.IsPaused && a.FirstRecurrence != nil && !a.FirstRecurrence.After(now)
}

// Target is where the action posts: the channel, or the user to open a direct
// message with when UseDM is set.
func (a ScheduledAction) Target() string {
	if a.UseDM && a.UserID != "" {
		return a.UserID
	}
	return a.Channel
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
