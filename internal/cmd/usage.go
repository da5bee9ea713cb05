package cmd

import (
	"context"
	"fmt"

	"climb/internal/domain"
	"climb/internal/theme"
)

// UsageCmd records and inspects per-app daily usage
type UsageCmd struct {
	Check  UsageCheckCmd  `cmd:"check" help:"Run limit enforcement for an app (nudge and penalty)"`
	Record UsageRecordCmd `cmd:"record" help:"Add foreground time for an app"`
	Show   UsageShowCmd   `cmd:"show" help:"Show today's usage for an app"`
}

// UsageRecordCmd adds foreground time to today's total for an app
type UsageRecordCmd struct {
	App    string `arg:"" help:"App id (case-insensitive)"`
	Millis int64  `arg:"" help:"Foreground time to add, in milliseconds"`
}

// Run executes the record command
func (u *UsageRecordCmd) Run(cli *CLI) error {
	ctx := context.Background()
	ledger := cli.Container.Ledger

	ledger.RecordUsage(ctx, u.App, u.Millis)

	used := ledger.UsageMinutes(ctx, u.App)
	fmt.Printf("%s today: %d min\n", domain.NormalizeAppID(u.App), used)

	// Recording can cross the limit, so enforcement runs right after
	ledger.CheckAndNudge(ctx, u.App)
	return nil
}

// UsageShowCmd shows today's usage for an app
type UsageShowCmd struct {
	App string `arg:"" help:"App id (case-insensitive)"`
}

// Run executes the show command
func (u *UsageShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	ledger := cli.Container.Ledger

	appID := domain.NormalizeAppID(u.App)
	used := ledger.UsageMinutes(ctx, appID)
	limit := ledger.LimitMinutes(appID)

	fmt.Printf("%s %s\n", theme.LabelStyle.Render("App:  "), appID)
	fmt.Printf("%s %d min\n", theme.LabelStyle.Render("Used: "), used)
	if limit > 0 {
		fmt.Printf("%s %d min\n", theme.LabelStyle.Render("Limit:"), limit)
		if ledger.IsLimitExceeded(ctx, appID) {
			fmt.Println(theme.WarningStyle.Render("Daily limit reached."))
		}
	} else {
		fmt.Printf("%s none\n", theme.LabelStyle.Render("Limit:"))
	}
	return nil
}

// UsageCheckCmd runs the limit enforcement path for an app
type UsageCheckCmd struct {
	App string `arg:"" help:"App id (case-insensitive)"`
}

// Run executes the check command
func (u *UsageCheckCmd) Run(cli *CLI) error {
	ctx := context.Background()

	nudged, penalty := cli.Container.Ledger.CheckAndNudge(ctx, u.App)
	if !nudged && !penalty.Applied {
		fmt.Println("Nothing to enforce.")
	}
	return nil
}
