package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"focado/internal/cmd"
	"focado/internal/config"
	"focado/version"
)

func main() {
	// Settings are loaded before parsing so flag defaults can yield to
	// settings.json in AfterApply
	var cli cmd.CLI
	cli.SetSettings(config.LoadSettings())

	ctx := kong.Parse(&cli,
		kong.Name("focado"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.Close()
		os.Exit(1)
	}
}
