package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"climb/internal/domain"
	"climb/internal/logging"
	"climb/internal/services"
	"climb/internal/theme"
)

// TrackCmd runs a focus session driven by app state events on stdin.
//
// Each input line is one event:
//
//	background | inactive - the user left the app
//	active                - the user came back
//	abort                 - discard the session without saving it
//	end                   - complete the session
//
// EOF completes the session like "end".
type TrackCmd struct {
	Preset  string `help:"Focus preset (classic, short, deep, study)" default:"classic"`
	Session string `help:"Outer pomodoro session id (generated when empty)"`
	Team    string `help:"Team id to credit the completed session to"`
}

// Run executes the track command
func (t *TrackCmd) Run(cli *CLI) error {
	preset, ok := domain.PresetByName(t.Preset)
	if !ok {
		names := make([]string, 0, len(domain.Presets))
		for _, p := range domain.Presets {
			names = append(names, p.ID)
		}
		return fmt.Errorf("unknown preset %q (available: %s)", t.Preset, strings.Join(names, ", "))
	}

	sessionID := t.Session
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	ctx := context.Background()
	container := cli.Container
	userID := container.UserID
	tracker := container.Tracker

	session := tracker.Start(userID, sessionID, preset.Name)
	fmt.Println(theme.TitleStyle.Render(
		fmt.Sprintf("Focus session started: %s (%d min)", preset.Name, preset.FocusMin)))
	logging.Logger.Info("Tracking focus session from stdin", "id", session.ID, "preset", preset.ID)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		event := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch event {
		case "":
			continue
		case "background", "inactive", "active":
			tracker.OnAppStateChanged(userID, domain.AppState(event))
		case "abort":
			tracker.Abort(userID)
			fmt.Println(theme.AbortedStyle.Render("Session aborted, nothing saved."))
			return nil
		case "end":
			return t.finish(ctx, cli)
		default:
			fmt.Println(theme.MutedStyle.Render(fmt.Sprintf("ignoring unknown event %q", event)))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}

	return t.finish(ctx, cli)
}

// finish completes the session, prints the summary and credits the team when
// one was given.
func (t *TrackCmd) finish(ctx context.Context, cli *CLI) error {
	container := cli.Container
	userID := container.UserID

	current := container.Tracker.Current(userID)
	if current == nil {
		return nil
	}

	// One point per focused minute
	focusMillis := container.Clock.Now().UnixMilli() - current.StartTime - current.TimeAway()
	points := int(focusMillis / 60_000)
	if points < 0 {
		points = 0
	}

	record := container.Tracker.End(ctx, userID, points)
	if record == nil {
		return nil
	}

	fmt.Println()
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Duration:"),
		domain.FormatTimeAway(record.TotalDuration))
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Focused: "),
		domain.FormatTimeAway(record.TotalFocusTime))
	fmt.Printf("%s %d\n", theme.LabelStyle.Render("Exits:   "), record.ExitCount)

	if t.Team == "" {
		return nil
	}

	breakdown, err := container.Streak.RecordPomodoroResult(ctx, services.PomodoroResult{
		CompletedSuccessfully:  true,
		DistractionsCount:      record.ExitCount,
		FocusedMinutes:         float64(record.TotalFocusTime) / 60_000.0,
		SessionDurationMinutes: int(record.TotalDuration / 60_000),
		TeamID:                 t.Team,
		UserID:                 userID,
	})
	if err != nil {
		return fmt.Errorf("failed to credit team: %w", err)
	}
	if breakdown == nil {
		fmt.Println(theme.MutedStyle.Render("Team not credited (unknown team or member)."))
		return nil
	}

	fmt.Println()
	fmt.Println(theme.StreakStyle.Render(
		fmt.Sprintf("🔥 Team streak: %d days (x%.1f)", breakdown.NewStreak, breakdown.StreakMultiplier)))
	fmt.Println(theme.RewardStyle.Render(
		fmt.Sprintf("+%d points (%d base, %d streak bonus)",
			breakdown.TotalPoints, breakdown.BasePoints, breakdown.BonusPoints)))
	return nil
}
