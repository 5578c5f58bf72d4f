package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/chrisedwards/statsrange/internal/daterange"
	"github.com/chrisedwards/statsrange/internal/feed"
	"github.com/chrisedwards/statsrange/internal/format"
)

var (
	feedTZ      string
	feedNow     string
	feedInclude []string
	feedExclude []string
	feedCache   string
)

var feedCmd = &cobra.Command{
	Use:   "feed <pages.json>",
	Short: "List feed posts with their query windows",
	Long: `Read a paginated feed response, store its posts, and print each post
with its publication date and the number of days its stats cover.

Use --include and --exclude with glob patterns on actor handles, for example
--include '*@mastodon.social' --exclude '@spam@*'.`,
	Args: cobra.ExactArgs(1),
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().StringVar(&feedTZ, "tz", "", "viewer timezone (IANA name)")
	feedCmd.Flags().StringVar(&feedNow, "now", "", "evaluate at this RFC 3339 instant instead of the current time")
	feedCmd.Flags().StringSliceVar(&feedInclude, "include", nil, "only actors matching these patterns")
	feedCmd.Flags().StringSliceVar(&feedExclude, "exclude", nil, "skip actors matching these patterns")
	feedCmd.Flags().StringVar(&feedCache, "cache", "", "persist synced posts to this file (overrides cache_path)")
	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	tz, err := rt.timezone(feedTZ)
	if err != nil {
		return err
	}
	loc, err := daterange.LoadLocation(tz)
	if err != nil {
		return err
	}
	clock, err := clockFor(feedNow)
	if err != nil {
		return err
	}
	now := clock.Now().In(loc)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening feed: %w", err)
	}
	defer f.Close()

	resp, err := feed.ReadResponse(f)
	if err != nil {
		return err
	}

	cachePath := rt.cfg.CachePath
	if feedCache != "" {
		cachePath = feedCache
	}
	store := feed.NewStore(cachePath, clock)
	if err := store.Load(); err != nil {
		rt.log.Warn("ignoring unreadable feed cache", "path", cachePath, "error", err)
	}
	store.Sync(resp)
	if err := store.Save(); err != nil {
		return fmt.Errorf("saving feed cache: %w", err)
	}

	posts := feed.NewFilter(feedInclude, feedExclude).Apply(store.Posts())
	rt.log.Debug("feed synced", "pages", len(resp.Pages), "posts", len(posts))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("AUTHOR", "TITLE", "PUBLISHED", "DAYS")
	for _, p := range posts {
		t.Row(p.Actor.Handle, p.Object.Name, format.SafeDisplayDate(rt.log, p.Object.Published, "feed", now), postDays(rt, p, now, loc))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}

func postDays(rt *app, p feed.Activity, now time.Time, loc *time.Location) string {
	published, err := daterange.ParseInstant(p.Object.Published)
	if err != nil {
		rt.log.Debug("skipping range for post", "id", p.ID, "error", err)
		return "-"
	}
	return strconv.Itoa(daterange.DayRangeAt(published, now, loc))
}
