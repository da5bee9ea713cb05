package notify

import (
	"fmt"
	"io"
	"os"

	"climb/internal/logging"
	"climb/internal/ports"
	"climb/internal/theme"
)

var _ ports.Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier renders engine signals as styled lines on a writer,
// stdout by default.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier creates a new ConsoleNotifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stdout}
}

// NewConsoleNotifierTo creates a ConsoleNotifier writing to w.
func NewConsoleNotifierTo(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: w}
}

// FocusWarning reports a return from a mid-session excursion.
func (n *ConsoleNotifier) FocusWarning(exitCount int, presetName, timeAway string) {
	noun := "time"
	if exitCount != 1 {
		noun = "times"
	}
	fmt.Fprintln(n.out, theme.WarningStyle.Render(
		fmt.Sprintf("⚠ You left your %s session %d %s (away %s)", presetName, exitCount, noun, timeAway)))
	logging.Logger.Debug("Focus warning shown", "exits", exitCount, "away", timeAway)
}

// LimitNudge reports a crossed daily usage limit.
func (n *ConsoleNotifier) LimitNudge(appID string, usedMinutes, limitMinutes int) {
	fmt.Fprintln(n.out, theme.WarningStyle.Render(
		fmt.Sprintf("⏳ Daily limit reached for %s: %d of %d minutes used", appID, usedMinutes, limitMinutes)))
}

// PenaltyAlert reports points lost to a daily penalty.
func (n *ConsoleNotifier) PenaltyAlert(pointsLost int) {
	fmt.Fprintln(n.out, theme.PenaltyStyle.Render(
		fmt.Sprintf("✖ Penalty applied: -%d points", pointsLost)))
}

// SessionComplete reports a finished focus session.
func (n *ConsoleNotifier) SessionComplete(presetName string, pointsEarned int) {
	fmt.Fprintln(n.out, theme.RewardStyle.Render(
		fmt.Sprintf("✔ %s session complete: +%d points", presetName, pointsEarned)))
}
