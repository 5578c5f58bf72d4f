package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chrisedwards/statsrange/internal/daterange"
)

var (
	rangeTZ  string
	rangeNow string
)

var rangeCmd = &cobra.Command{
	Use:   "range <published-at>",
	Short: "Print the query window for a post",
	Long: `Print the number of calendar days, and the first and last query dates,
a stats query needs to cover the whole day a post was published.

published-at is an RFC 3339 timestamp such as 2024-01-10T08:00:00Z.
The publication day counts as day 1, so a post published today gives 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runRange,
}

func init() {
	rangeCmd.Flags().StringVar(&rangeTZ, "tz", "", "viewer timezone (IANA name)")
	rangeCmd.Flags().StringVar(&rangeNow, "now", "", "evaluate at this RFC 3339 instant instead of the current time")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	tz, err := rt.timezone(rangeTZ)
	if err != nil {
		return err
	}
	clock, err := clockFor(rangeNow)
	if err != nil {
		return err
	}

	w, err := daterange.NewWindow(args[0], tz, clock.Now())
	if err != nil {
		return err
	}
	rt.log.Debug("window computed", "published_at", args[0], "timezone", tz, "days", w.Days)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "days:     %d\n", w.Days)
	fmt.Fprintf(out, "start:    %s\n", w.Start)
	fmt.Fprintf(out, "end:      %s\n", w.End)
	fmt.Fprintf(out, "timezone: %s\n", tz)
	return nil
}

// clockFor returns a clock pinned to value, or the system clock when empty.
func clockFor(value string) (daterange.Clock, error) {
	if value == "" {
		return daterange.RealClock{}, nil
	}
	t, err := daterange.ParseInstant(value)
	if err != nil {
		return nil, fmt.Errorf("--now: %w", err)
	}
	return daterange.FixedClock{T: t}, nil
}

var boundsTZ string

var boundsCmd = &cobra.Command{
	Use:   "bounds <date>",
	Short: "Print the UTC start and end of a local calendar date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		tz, err := rt.timezone(boundsTZ)
		if err != nil {
			return err
		}
		start, end, err := daterange.DayBounds(args[0], tz)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "start: %s\n", start.Format(time.RFC3339Nano))
		fmt.Fprintf(out, "end:   %s\n", end.Format(time.RFC3339Nano))
		return nil
	},
}

func init() {
	boundsCmd.Flags().StringVar(&boundsTZ, "tz", "", "viewer timezone (IANA name)")
	rootCmd.AddCommand(boundsCmd)
}
