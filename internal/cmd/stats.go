package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"climb/internal/domain"
)

// StatsCmd shows focus session statistics
type StatsCmd struct {
	Days int `help:"Limit to sessions started in the last N days (0 = all)" default:"0"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	container := cli.Container

	var stats domain.SessionStats
	var err error
	if s.Days > 0 {
		to := container.Clock.Now()
		from := to.Add(-time.Duration(s.Days) * 24 * time.Hour)
		stats, err = container.Tracker.StatsRange(ctx, from.UnixMilli(), to.UnixMilli())
	} else {
		stats, err = container.Tracker.Stats(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get session stats: %w", err)
	}

	if s.Days > 0 {
		fmt.Printf("Focus Sessions - last %d days\n\n", s.Days)
	} else {
		fmt.Println("Focus Sessions - all time")
		fmt.Println()
	}

	if stats.TotalSessions == 0 {
		fmt.Println("No completed sessions yet.")
		return nil
	}

	fmt.Println(strings.Repeat("─", 45))
	fmt.Printf("%-24s %s\n", "Sessions completed", formatNumber(stats.TotalSessions))
	fmt.Printf("%-24s %s\n", "Total focus time", domain.FormatTimeAway(stats.TotalFocusTime))
	fmt.Printf("%-24s %s\n", "Total duration", domain.FormatTimeAway(stats.TotalDuration))
	fmt.Printf("%-24s %s\n", "Points earned", formatNumber(stats.TotalPointsEarned))
	fmt.Printf("%-24s %s\n", "Avg focus per session", domain.FormatTimeAway(int64(stats.AverageFocusTime)))
	fmt.Printf("%-24s %.1f\n", "Avg exits per session", stats.AverageExitCount)
	fmt.Println(strings.Repeat("─", 45))

	return nil
}

// formatNumber formats a number with comma separators
func formatNumber(n int) string {
	if n == 0 {
		return "0"
	}

	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	// Add comma separators
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
