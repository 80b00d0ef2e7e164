package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"

	"github.com/neilberkman/talentscout/internal/core/db"
)

var pruneBefore string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the question cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question cache statistics",
	RunE:  runCacheStats,
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete cached questions created before a date",
	Example: `  talentscout cache prune --before "last week"
  talentscout cache prune --before 2025-01-31`,
	RunE: runCachePrune,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached question set",
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cachePruneCmd, cacheClearCmd)
	cachePruneCmd.Flags().StringVar(&pruneBefore, "before", "", "Cutoff date, e.g. \"2 weeks ago\", \"yesterday\", 2025-01-31")
	_ = cachePruneCmd.MarkFlagRequired("before")
}

func openCache() (*db.DB, error) {
	database, err := db.New(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	database, err := openCache()
	if err != nil {
		return err
	}
	defer database.Close()

	stats, err := database.GetStats()
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	fmt.Printf("Cache:           %s", cfg.CachePath)
	if info, err := os.Stat(cfg.CachePath); err == nil {
		fmt.Printf(" (%s)", humanize.Bytes(uint64(info.Size())))
	}
	fmt.Println()
	fmt.Printf("Entries:         %s\n", humanize.Comma(int64(stats.TotalEntries)))
	fmt.Printf("Questions:       %s\n", humanize.Comma(int64(stats.TotalQuestions)))
	fmt.Printf("Cache hits:      %s\n", humanize.Comma(int64(stats.TotalHits)))

	if stats.TotalEntries > 0 {
		fmt.Printf("Oldest entry:    %s\n", humanize.Time(stats.OldestEntry))
		fmt.Printf("Newest entry:    %s\n", humanize.Time(stats.NewestEntry))
		fmt.Printf("Most reused:     %s (%d hits)\n", stats.TopStack, stats.TopStackHits)
	}

	return nil
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	cutoff := parseDate(w, pruneBefore, time.Now())
	if cutoff == nil {
		return fmt.Errorf("could not parse date %q", pruneBefore)
	}

	database, err := openCache()
	if err != nil {
		return err
	}
	defer database.Close()

	removed, err := database.PruneCache(*cutoff)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d cached question sets created before %s\n", removed, cutoff.Format("2006-01-02 15:04"))
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	database, err := openCache()
	if err != nil {
		return err
	}
	defer database.Close()

	removed, err := database.ClearCache()
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d cached question sets\n", removed)
	return nil
}

// parseDate tries natural language first, then a few fixed layouts
func parseDate(w *when.Parser, s string, now time.Time) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	result, err := w.Parse(s, now)
	if err == nil && result != nil {
		return &result.Time
	}

	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006/01/02",
		"01/02/2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, s, now.Location()); err == nil {
			return &t
		}
	}

	return nil
}
