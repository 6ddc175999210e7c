package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type monthCmd struct{}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "apply a month of charges to every vessel" }
func (*monthCmd) Usage() string {
	return `bms month

  Adds one month of fees to every vessel: its length in feet times the rate
  for its location category. Running it twice bills two months.
`
}

func (*monthCmd) SetFlags(f *flag.FlagSet) {}

func (p *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fleet.ApplyMonthlyCharges(cfg.RateTable())

	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Monthly charges applied to %d vessels\n", fleet.Len())
	return subcommands.ExitSuccess
}
