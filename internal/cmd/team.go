package cmd

import (
	"context"
	"fmt"

	"climb/internal/theme"
)

// TeamCmd manages team streaks and bonuses
type TeamCmd struct {
	Bonus    TeamBonusCmd    `cmd:"bonus" help:"Award streak-scaled points to a team"`
	Complete TeamCompleteCmd `cmd:"complete" help:"Record a completed session for the team streak"`
	Create   TeamCreateCmd   `cmd:"create" help:"Create a team owned by you"`
	Join     TeamJoinCmd     `cmd:"join" help:"Join an existing team"`
	Status   TeamStatusCmd   `cmd:"status" help:"Show a team's streak status"`
}

// TeamCreateCmd creates a team
type TeamCreateCmd struct {
	Name     string `arg:"" help:"Team name"`
	UserName string `help:"Your display name" default:""`
}

// Run executes the create command
func (t *TeamCreateCmd) Run(cli *CLI) error {
	userName := t.UserName
	if userName == "" {
		userName = cli.Container.UserID
	}

	team, err := cli.Container.Streak.CreateTeam(context.Background(), t.Name, cli.Container.UserID, userName)
	if err != nil {
		return err
	}

	fmt.Printf("Team %q created.\n", team.Name)
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("ID:"), theme.ValueStyle.Render(team.ID))
	return nil
}

// TeamJoinCmd joins an existing team
type TeamJoinCmd struct {
	TeamID   string `arg:"" help:"Team id"`
	UserName string `help:"Your display name" default:""`
}

// Run executes the join command
func (t *TeamJoinCmd) Run(cli *CLI) error {
	userName := t.UserName
	if userName == "" {
		userName = cli.Container.UserID
	}

	team, err := cli.Container.Streak.AddMember(context.Background(), t.TeamID, cli.Container.UserID, userName)
	if err != nil {
		return err
	}

	fmt.Printf("Joined team %q (%d members).\n", team.Name, len(team.Members))
	return nil
}

// TeamCompleteCmd records a completed session for the team streak
type TeamCompleteCmd struct {
	TeamID string `arg:"" help:"Team id"`
}

// Run executes the complete command
func (t *TeamCompleteCmd) Run(cli *CLI) error {
	streak, err := cli.Container.Streak.RecordSessionCompletion(context.Background(), t.TeamID, cli.Container.UserID)
	if err != nil {
		return err
	}
	if streak == nil {
		fmt.Println(theme.MutedStyle.Render("Nothing recorded (unknown team or member)."))
		return nil
	}

	fmt.Println(theme.StreakStyle.Render(
		fmt.Sprintf("🔥 Streak: %d days (x%.1f)", streak.CurrentStreak, streak.StreakMultiplier)))
	return nil
}

// TeamBonusCmd awards streak-scaled points to a team
type TeamBonusCmd struct {
	Points int    `arg:"" help:"Base points to scale by the streak multiplier"`
	TeamID string `arg:"" help:"Team id"`
}

// Run executes the bonus command
func (t *TeamBonusCmd) Run(cli *CLI) error {
	total, err := cli.Container.Streak.AwardBonus(context.Background(), t.TeamID, t.Points)
	if err != nil {
		return err
	}

	fmt.Println(theme.RewardStyle.Render(
		fmt.Sprintf("+%d points awarded (%d base)", total, t.Points)))
	return nil
}

// TeamStatusCmd shows a team's streak status
type TeamStatusCmd struct {
	TeamID string `arg:"" help:"Team id"`
}

// Run executes the status command
func (t *TeamStatusCmd) Run(cli *CLI) error {
	status, err := cli.Container.Streak.Status(context.Background(), t.TeamID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d days\n", theme.LabelStyle.Render("Current streak:    "), status.CurrentStreak)
	fmt.Printf("%s x%.1f\n", theme.LabelStyle.Render("Multiplier:        "), status.Multiplier)
	fmt.Printf("%s %d\n", theme.LabelStyle.Render("Team points:       "), status.TeamPoints)
	fmt.Printf("%s %d\n", theme.LabelStyle.Render("Team level:        "), status.TeamLevel)
	fmt.Printf("%s +%d pts for a 25 min session\n",
		theme.LabelStyle.Render("Estimated bonus:   "), status.EstimatedSessionBonus)
	if status.NextMilestone != nil {
		fmt.Printf("%s %s in %d days (+%d pts)\n",
			theme.LabelStyle.Render("Next milestone:    "),
			status.NextMilestone.Name, status.DaysToNextMilestone, status.NextMilestone.Bonus)
	}
	return nil
}
