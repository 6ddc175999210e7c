package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marina"
	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

type statementCmd struct{}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show the monthly billing statement" }
func (*statementCmd) Usage() string {
	return `bms statement

  Shows, for each vessel, the charge the next month will add and the
  outstanding balance, with fleet totals. Nothing is modified.
`
}

func (*statementCmd) SetFlags(f *flag.FlagSet) {}

func (p *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	path, err := fleetPath(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	fleet, err := marina.LoadFleet(path, cfg.Capacity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Statement(fleet.All(), cfg.RateTable()))
	return subcommands.ExitSuccess
}
