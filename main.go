package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"climb/internal/cmd"
	"climb/internal/config"
	"climb/version"
)

func main() {
	// Settings load before parsing so AfterApply can apply precedence
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	ctx := kong.Parse(&cli,
		kong.Name("climb"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
