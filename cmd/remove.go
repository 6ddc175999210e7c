package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a vessel by name" }
func (*removeCmd) Usage() string {
	return `bms remove <name>

  Removes the vessel with that name from the fleet. The name is matched
  case-insensitively.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (p *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing the vessel name to remove")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

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

	if err := fleet.Remove(name); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %q\n", name)
	return subcommands.ExitSuccess
}
