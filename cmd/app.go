// Package cmd implements the CLI application to manage a marina's fleet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marina"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "fleet")
	c.Register(&addCmd{}, "fleet")
	c.Register(&removeCmd{}, "fleet")

	c.Register(&payCmd{}, "billing")
	c.Register(&monthCmd{}, "billing")
	c.Register(&statementCmd{}, "billing")

	c.Register(&sessionCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "marina.toml", "Path to the marina configuration file (TOML format)")
var fleetFile = flag.String("f", "", "Path to the fleet data file. Overrides the config file setting.")

// appConfig loads the configuration and applies the -f override.
func appConfig() (marina.Config, error) {
	cfg, err := marina.LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if *fleetFile != "" {
		cfg.File = *fleetFile
	}
	return cfg, nil
}

// errNoFleetFile is reported when neither the command line nor the config
// names a fleet file.
var errNoFleetFile = errors.New("no fleet file given (set -f or the file entry in marina.toml)")

// fleetPath resolves the fleet file for a command: the -f flag first, then
// the config file. Without either the command refuses to run.
func fleetPath(cfg marina.Config) (string, error) {
	if cfg.File == "" {
		return "", errNoFleetFile
	}
	return cfg.File, nil
}

// printMarkdown renders markdown for the terminal when stdout is one, and
// falls back to the raw text otherwise (pipes, redirects).
func printMarkdown(md string) {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		if out, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
