package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/domain"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-schedule-bot/internal/domain/slack"
	"github.com/diegoclair/slack-schedule-bot/pkg/logger"
	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const nextRunLayout = "Mon Jan 2 at 3:04 PM MST"

type SlackHandler struct {
	scheduling    contract.SchedulingService
	signingSecret string
	defaultZone   recurrence.Zone
}

func New(scheduling contract.SchedulingService, signingSecret string, defaultZone recurrence.Zone) *SlackHandler {
	return &SlackHandler{
		scheduling:    scheduling,
		signingSecret: signingSecret,
		defaultZone:   defaultZone,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx := logger.WithFields(r.Context(), logrus.Fields{
		"team":    s.TeamID,
		"channel": s.ChannelID,
		"user":    s.UserID,
	})

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	logger.G(ctx).WithField("command", cmd.Type).Debug("slash command received")
	h.respond(w, h.handleCommand(ctx, cmd, &s))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAdd(ctx, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(ctx, slashCmd)
	case slackcmd.CmdRemove:
		return h.handleRemove(ctx, cmd, slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(ctx, cmd, slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(ctx, cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAdd(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	when, text, err := cmd.SplitSchedule()
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	rec, err := slackcmd.ParseWhen(when, h.defaultZone)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("%v. Try `/schedule help` for examples.", err))
	}

	channel, err := h.scheduling.SetupChannel(ctx, slashCmd.ChannelID, slashCmd.TeamID, slashCmd.UserID)
	if err != nil {
		logger.G(ctx).WithError(err).Error("failed to set up channel")
		return h.createErrorResponse("Failed to check this channel")
	}
	if !channel.CanBeScheduledBy(slashCmd.UserID) {
		return h.createErrorResponse(fmt.Sprintf("I can't schedule messages in %s. Invite me to the channel first.", channel.Description()))
	}

	action := entity.NewWithDefaults(h.defaultZone)
	action.TeamID = slashCmd.TeamID
	action.Trigger = text
	action.Channel = channel.ID
	action.UserID = slashCmd.UserID
	action.Recurrence = rec

	saved, err := h.scheduling.SaveAction(ctx, action)
	if err != nil {
		logger.G(ctx).WithError(err).Error("failed to save scheduled action")
		return h.createErrorResponse("Failed to schedule the message")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "✅ Scheduled `%s` in %s: *%s*", saved.ID, channel.FormattedName(), saved.Recurrence.DisplayString)
	if saved.FirstRecurrence != nil {
		fmt.Fprintf(&msg, "\nNext post: %s", h.formatRun(*saved.FirstRecurrence, saved.Recurrence.Zone()))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         msg.String(),
	}
}

func (h *SlackHandler) handleList(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	actions, err := h.scheduling.ListActions(ctx, slashCmd.ChannelID)
	if err != nil {
		logger.G(ctx).WithError(err).Error("failed to list scheduled actions")
		return h.createErrorResponse("Failed to list scheduled messages")
	}

	if len(actions) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No scheduled messages in this channel. Use `/schedule add <when> say <text>` to add one.",
		}
	}

	var list strings.Builder
	list.WriteString("*Scheduled messages:*\n")
	for _, action := range actions {
		description := action.Recurrence.DisplayString
		if description == "" {
			description = action.Recurrence.Describe()
		}
		fmt.Fprintf(&list, "• `%s` %s: %s", action.ID, description, actionSummary(action))
		if action.IsPaused {
			list.WriteString(" _(paused)_")
		} else if action.FirstRecurrence != nil {
			fmt.Fprintf(&list, " (next: %s)", h.formatRun(*action.FirstRecurrence, action.Recurrence.Zone()))
		}
		list.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleRemove(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	id, errMsg := h.channelAction(ctx, cmd, slashCmd)
	if errMsg != nil {
		return errMsg
	}
	if err := h.scheduling.DeleteAction(ctx, id); err != nil {
		return h.actionError(ctx, id, err, "Failed to remove the scheduled message")
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🗑️ Removed scheduled message `%s`", id),
	}
}

func (h *SlackHandler) handlePause(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	id, errMsg := h.channelAction(ctx, cmd, slashCmd)
	if errMsg != nil {
		return errMsg
	}
	if err := h.scheduling.PauseAction(ctx, id); err != nil {
		return h.actionError(ctx, id, err, "Failed to pause the scheduled message")
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("⏸️ Paused scheduled message `%s`", id),
	}
}

func (h *SlackHandler) handleResume(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	id, errMsg := h.channelAction(ctx, cmd, slashCmd)
	if errMsg != nil {
		return errMsg
	}
	if err := h.scheduling.ResumeAction(ctx, id); err != nil {
		return h.actionError(ctx, id, err, "Failed to resume the scheduled message")
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("▶️ Resumed scheduled message `%s`", id),
	}
}

// channelAction resolves the id argument to an action of the current channel.
func (h *SlackHandler) channelAction(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) (string, *slack.Msg) {
	id, err := cmd.ActionID()
	if err != nil {
		return "", h.createErrorResponse(fmt.Sprintf("Please give the id: `/schedule %s <id>`", cmd.Type))
	}

	action, err := h.scheduling.GetAction(ctx, id)
	if err != nil {
		return "", h.actionError(ctx, id, err, "Failed to find the scheduled message")
	}
	if action.Channel != slashCmd.ChannelID {
		return "", h.actionError(ctx, id, domain.ErrActionNotFound, "")
	}
	return id, nil
}

func (h *SlackHandler) actionError(ctx context.Context, id string, err error, message string) *slack.Msg {
	if errors.Is(err, domain.ErrActionNotFound) {
		return h.createErrorResponse(fmt.Sprintf("No scheduled message `%s` in this channel", id))
	}
	logger.G(ctx).WithError(err).WithField("action_id", id).Error(message)
	return h.createErrorResponse(message)
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) formatRun(t time.Time, zone recurrence.Zone) string {
	if zone.ID == "" {
		zone = h.defaultZone
	}
	if loc, err := time.LoadLocation(zone.ID); err == nil {
		t = t.In(loc)
	}
	return t.Format(nextRunLayout)
}

func actionSummary(action *entity.ScheduledAction) string {
	if action.ScheduleType == entity.ScheduleTypeBehavior {
		return fmt.Sprintf("run `%s`", action.BehaviorID)
	}
	return fmt.Sprintf("say “%s”", action.Trigger)
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(msg)
}
