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

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all vessels in the fleet" }
func (*listCmd) Usage() string {
	return `bms list

  Lists every vessel in the fleet, sorted by name, with its location and
  outstanding fees.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fmt.Println(renderer.Inventory(fleet.All()))
	return subcommands.ExitSuccess
}
