package cmd

import (
	"fmt"

	"climb/internal/domain"
	"climb/internal/theme"
)

// BlockerCmd manages the distraction blocker
type BlockerCmd struct {
	Add     BlockerAddCmd     `cmd:"add" help:"Add a custom app to the block list"`
	Block   BlockerBlockCmd   `cmd:"block" help:"Mark an app as blocked"`
	Disable BlockerDisableCmd `cmd:"disable" help:"Disable the blocker"`
	Enable  BlockerEnableCmd  `cmd:"enable" help:"Enable the blocker"`
	Remove  BlockerRemoveCmd  `cmd:"remove" help:"Remove an app from the block list"`
	Show    BlockerShowCmd    `cmd:"show" help:"Show the blocker configuration" default:"1"`
	Unblock BlockerUnblockCmd `cmd:"unblock" help:"Mark an app as allowed"`
}

// BlockerShowCmd shows the blocker configuration
type BlockerShowCmd struct{}

// Run executes the show command
func (b *BlockerShowCmd) Run(cli *CLI) error {
	config := cli.Container.Blocker.Config()
	printBlockerConfig(config)

	sessionActive := cli.Container.Tracker.IsActive(cli.Container.UserID)
	active := config.ActiveBlockedApps(sessionActive)
	if len(active) > 0 {
		fmt.Println()
		fmt.Println(theme.WarningStyle.Render("Currently suppressed:"))
		for _, app := range active {
			fmt.Printf("  %s (%s)\n", app.Name, app.PackageName)
		}
	}
	return nil
}

// BlockerEnableCmd enables the blocker
type BlockerEnableCmd struct{}

// Run executes the enable command
func (b *BlockerEnableCmd) Run(cli *CLI) error {
	config, err := cli.Container.Blocker.SetEnabled(true)
	if err != nil {
		return err
	}
	printBlockerConfig(config)
	return nil
}

// BlockerDisableCmd disables the blocker
type BlockerDisableCmd struct{}

// Run executes the disable command
func (b *BlockerDisableCmd) Run(cli *CLI) error {
	config, err := cli.Container.Blocker.SetEnabled(false)
	if err != nil {
		return err
	}
	printBlockerConfig(config)
	return nil
}

// BlockerBlockCmd marks an app as blocked
type BlockerBlockCmd struct {
	App string `arg:"" help:"App id from the block list"`
}

// Run executes the block command
func (b *BlockerBlockCmd) Run(cli *CLI) error {
	config, err := cli.Container.Blocker.SetAppBlocked(b.App, true)
	if err != nil {
		return err
	}
	printBlockerConfig(config)
	return nil
}

// BlockerUnblockCmd marks an app as allowed
type BlockerUnblockCmd struct {
	App string `arg:"" help:"App id from the block list"`
}

// Run executes the unblock command
func (b *BlockerUnblockCmd) Run(cli *CLI) error {
	config, err := cli.Container.Blocker.SetAppBlocked(b.App, false)
	if err != nil {
		return err
	}
	printBlockerConfig(config)
	return nil
}

// BlockerAddCmd adds a custom app to the block list
type BlockerAddCmd struct {
	Package  string `arg:"" help:"Package or bundle identifier"`
	Category string `help:"App category" default:"other"`
	Name     string `help:"Display name (defaults to the package)" default:""`
}

// Run executes the add command
func (b *BlockerAddCmd) Run(cli *CLI) error {
	name := b.Name
	if name == "" {
		name = b.Package
	}

	config, err := cli.Container.Blocker.AddCustomApp(b.Package, name, b.Category)
	if err != nil {
		return err
	}
	printBlockerConfig(config)
	return nil
}

// BlockerRemoveCmd removes an app from the block list
type BlockerRemoveCmd struct {
	App string `arg:"" help:"App id from the block list"`
}

// Run executes the remove command
func (b *BlockerRemoveCmd) Run(cli *CLI) error {
	config, err := cli.Container.Blocker.RemoveApp(b.App)
	if err != nil {
		return err
	}
	printBlockerConfig(config)
	return nil
}

func printBlockerConfig(config domain.BlockerConfig) {
	state := theme.AbortedStyle.Render("disabled")
	if config.Enabled {
		state = theme.CompletedStyle.Render("enabled")
	}
	fmt.Printf("%s %s\n", theme.LabelStyle.Render("Blocker:"), state)
	fmt.Printf("%s %t\n", theme.LabelStyle.Render("Block on session start:"), config.BlockOnSessionStart)
	fmt.Println()

	for _, app := range config.BlockedApps {
		marker := theme.MutedStyle.Render("·")
		if app.IsBlocked {
			marker = theme.AbortedStyle.Render("✗")
		}
		fmt.Printf("  %s %s (%s) [%s]\n", marker, app.Name, app.PackageName, app.ID)
	}
}
