package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against a vessel's outstanding fees" }
func (*payCmd) Usage() string {
	return `bms pay <name> <amount>

  Subtracts the amount from the vessel's outstanding fees. A payment of the
  full balance or more is refused.
`
}

func (*payCmd) SetFlags(f *flag.FlagSet) {}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a vessel name and an amount")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args()[:f.NArg()-1], " ")
	amount, err := strconv.ParseFloat(f.Arg(f.NArg()-1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", f.Arg(f.NArg()-1))
		return subcommands.ExitUsageError
	}

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

	if err := fleet.RecordPayment(name, marina.M(amount)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if v, ok := fleet.Vessel(name); ok {
		fmt.Printf("%s now owes %s\n", v.Name, v.Outstanding)
	}
	return subcommands.ExitSuccess
}
