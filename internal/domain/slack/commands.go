package slack

import (
	"strings"

	"github.com/pkg/errors"
)

type CommandType string

const (
	CmdAdd    CommandType = "add"
	CmdRemove CommandType = "remove"
	CmdList   CommandType = "list"
	CmdPause  CommandType = "pause"
	CmdResume CommandType = "resume"
	CmdHelp   CommandType = "help"
)

var (
	ErrMissingText     = errors.New("missing message: use `add <when> say <text>`")
	ErrMissingActionID = errors.New("missing action id")
)

type Command struct {
	Type CommandType
	Args []string
	// Rest is the text after the command word, spacing preserved.
	Rest string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
		Rest: strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), parts[0])),
	}

	switch strings.ToLower(parts[0]) {
	case "add", "new":
		cmd.Type = CmdAdd
	case "remove", "rm", "delete":
		cmd.Type = CmdRemove
	case "list", "ls":
		cmd.Type = CmdList
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, errors.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ActionID returns the id argument of remove, pause and resume.
func (c *Command) ActionID() (string, error) {
	if len(c.Args) == 0 {
		return "", ErrMissingActionID
	}
	return strings.Trim(c.Args[0], "`"), nil
}

// SplitSchedule splits "<when> say <text>" at the first " say ".
func (c *Command) SplitSchedule() (when, text string, err error) {
	lower := strings.ToLower(c.Rest)
	idx := strings.Index(lower, " say ")
	if idx < 0 {
		return "", "", ErrMissingText
	}
	when = strings.TrimSpace(c.Rest[:idx])
	text = strings.TrimSpace(c.Rest[idx+len(" say "):])
	if text == "" {
		return "", "", ErrMissingText
	}
	return when, text, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Schedule:*
• ` + "`/schedule add <when> say <text>`" + ` - Post a message on a schedule
• ` + "`/schedule list`" + ` - List the scheduled messages of this channel
• ` + "`/schedule remove <id>`" + ` - Delete a scheduled message

*Control:*
• ` + "`/schedule pause <id>`" + ` - Stop posting until resumed
• ` + "`/schedule resume <id>`" + ` - Post again, skipping the runs missed while paused

*When:*
• ` + "`every 15 minutes`" + `
• ` + "`every 2 hours at :15`" + `
• ` + "`every day at 9:30am`" + `
• ` + "`every weekday at 9am`" + `
• ` + "`every other week on mon, wed at 17:00`" + `
• ` + "`every month on the 15th at 10am`" + `
• ` + "`every month on the 2nd tue at 10am`" + `
• ` + "`every year on jan 1 at noon`" + `
Add ` + "`3 times`" + `, ` + "`once`" + ` or ` + "`twice`" + ` at the end to stop after that many posts.`
}
