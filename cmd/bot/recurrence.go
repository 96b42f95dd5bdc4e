package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/diegoclair/slack-schedule-bot/pkg/recurrence"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var recurrenceCmd = &cobra.Command{
	Use:   "recurrence",
	Short: "Inspect recurrence JSON documents",
	Long:  `Reads a recurrence JSON document from a file, or from stdin when no file or "-" is given.`,
}

var recurrenceDescribeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Print whether a recurrence is valid and how it reads",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := readRecurrence(cmd, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Type:        %s\n", r.TypeName())
		fmt.Fprintf(out, "Valid:       %t\n", r.IsValid())
		if r.IsValid() {
			fmt.Fprintf(out, "Description: %s\n", r.Describe())
		}
		if remaining, ok := r.TimesRemaining().Value(); ok {
			fmt.Fprintf(out, "Remaining:   %d\n", remaining)
		}
		return nil
	},
}

var recurrenceNextCmd = &cobra.Command{
	Use:   "next [file]",
	Short: "Print the next run times of a recurrence",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := readRecurrence(cmd, args)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		after, err := timeFlag(cmd, "after")
		if err != nil {
			return err
		}
		anchor, err := timeFlag(cmd, "anchor")
		if err != nil {
			return err
		}
		if anchor.IsZero() {
			anchor = after
		}

		runs, err := r.NextRuns(anchor, after, count)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if rule, err := r.RRule(anchor); err == nil {
			fmt.Fprintln(out, rule)
		}
		for _, run := range runs {
			fmt.Fprintln(out, run.Format(time.RFC1123))
		}
		return nil
	},
}

func init() {
	recurrenceNextCmd.Flags().Int("count", 5, "number of run times to print")
	recurrenceNextCmd.Flags().String("after", "", "print runs after this RFC 3339 time (default now)")
	recurrenceNextCmd.Flags().String("anchor", "", "RFC 3339 time the intervals count from (default --after)")

	recurrenceCmd.AddCommand(recurrenceDescribeCmd)
	recurrenceCmd.AddCommand(recurrenceNextCmd)
}

func readRecurrence(cmd *cobra.Command, args []string) (recurrence.Recurrence, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return recurrence.Recurrence{}, errors.Wrap(err, "failed to read recurrence")
	}
	return recurrence.FromJSON(data)
}

func timeFlag(cmd *cobra.Command, name string) (time.Time, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		if name == "after" {
			return time.Now(), nil
		}
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid --%s", name)
	}
	return t, nil
}
