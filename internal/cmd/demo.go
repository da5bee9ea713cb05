package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	adapternotify "climb/internal/adapters/notify"
	adapterstorage "climb/internal/adapters/storage"
	"climb/internal/domain"
	"climb/internal/services"
	"climb/internal/theme"
)

// DemoCmd replays a scripted day against a throwaway database so the whole
// pipeline can be watched without waiting for real time to pass.
type DemoCmd struct{}

// demoClock is a manually advanced clock for the scripted run.
type demoClock struct {
	now time.Time
}

func (c *demoClock) Now() time.Time { return c.now }

func (c *demoClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// Run executes the demo command
func (d *DemoCmd) Run(cli *CLI) error {
	dir, err := os.MkdirTemp("", "climb-demo-")
	if err != nil {
		return fmt.Errorf("failed to create demo directory: %w", err)
	}
	defer os.RemoveAll(dir)

	repo, err := adapterstorage.NewSQLiteRepository(filepath.Join(dir, "demo.db"))
	if err != nil {
		return err
	}
	defer repo.Close()

	clock := &demoClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)}
	notifier := adapternotify.NewConsoleNotifier()
	tracker := services.NewTracker(repo, notifier, clock)
	ledger := services.NewLedger(repo, notifier, clock, map[string]int{"instagram": 10}, 25)
	streak := services.NewStreak(repo, clock)

	ctx := context.Background()
	const user = "demo"

	fmt.Println(theme.TitleStyle.Render("climb demo"))

	// A 25 minute session with one 2 minute excursion at minute 10
	fmt.Println(theme.SubtitleStyle.Render("1. Focus session"))
	tracker.Start(user, "demo-session", "Classic")
	clock.advance(10 * time.Minute)
	tracker.OnAppStateChanged(user, domain.AppStateBackground)
	clock.advance(2 * time.Minute)
	tracker.OnAppStateChanged(user, domain.AppStateActive)
	clock.advance(13 * time.Minute)
	record := tracker.End(ctx, user, 23)
	fmt.Printf("Focused %s of %s, left %d time(s)\n\n",
		domain.FormatTimeAway(record.TotalFocusTime),
		domain.FormatTimeAway(record.TotalDuration),
		record.ExitCount)

	// Eleven minutes of instagram against a 10 minute limit
	fmt.Println(theme.SubtitleStyle.Render("2. Usage limit"))
	ledger.RecordUsage(ctx, "Instagram", 6*60_000)
	ledger.RecordUsage(ctx, "instagram", 5*60_000)
	ledger.CheckAndNudge(ctx, "instagram")
	// Second check the same day stays quiet
	ledger.CheckAndNudge(ctx, "instagram")
	fmt.Println()

	// A team on a six day streak completing day seven
	fmt.Println(theme.SubtitleStyle.Render("3. Team streak"))
	team, err := streak.CreateTeam(ctx, "The Climbers", user, "Demo")
	if err != nil {
		return err
	}
	team.Members[0].PomodoroSessionsCompleted = 41
	team.Streak.CurrentStreak = 6
	team.Streak.RecomputeMultiplier()
	team.Streak.LastSessionDate = clock.Now().Add(-24 * time.Hour).UnixMilli()
	if err := repo.SaveTeam(ctx, team); err != nil {
		return err
	}

	breakdown, err := streak.RecordPomodoroResult(ctx, services.PomodoroResult{
		CompletedSuccessfully: true,
		FocusedMinutes:        23,
		TeamID:                team.ID,
		UserID:                user,
	})
	if err != nil {
		return err
	}
	fmt.Println(theme.StreakStyle.Render(
		fmt.Sprintf("🔥 Streak: %d days (x%.1f)", breakdown.NewStreak, breakdown.StreakMultiplier)))
	fmt.Println(theme.RewardStyle.Render(
		fmt.Sprintf("+%d points (%d base, %d bonus)",
			breakdown.TotalPoints, breakdown.BasePoints, breakdown.BonusPoints)))

	return nil
}
