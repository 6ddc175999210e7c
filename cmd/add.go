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

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a vessel from a fleet-file line" }
func (*addCmd) Usage() string {
	return `bms add <name,length,category,value,fees>

  Adds one vessel, given as a line in the fleet file format, e.g.

    bms add "Alice,20,slip,5,100.00"

  The category is one of slip, land, trailor, storage.
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing the vessel line to add")
		return subcommands.ExitUsageError
	}
	line := strings.Join(f.Args(), " ")

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

	v, err := marina.ParseVessel(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := fleet.Insert(v); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q (%s)\n", v.Name, v.Location.Category())
	return subcommands.ExitSuccess
}
