package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/marina"
	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run an interactive menu session" }
func (*sessionCmd) Usage() string {
	return `bms session [<fleet-file>]

  Loads the fleet, runs the interactive menu until e(X)it, then writes the
  fleet back to the same file:

    (I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it

  While a session runs the fleet file is locked against other sessions.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (p *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := appConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if f.NArg() > 0 {
		cfg.File = f.Arg(0)
	}
	path, err := fleetPath(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	lock, err := marina.LockSession(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer lock.Unlock()

	fleet, err := marina.LoadFleet(path, cfg.Capacity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println()
	fmt.Println("Welcome to the Marina Boat Management")
	fmt.Println("--------------------------------------------")
	fmt.Println()

	runSession(fleet, cfg.RateTable(), os.Stdin, os.Stdout)

	if err := marina.SaveFleet(path, fleet); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println()
	fmt.Println("Exiting Boat Management")
	return subcommands.ExitSuccess
}

// runSession drives the menu loop over in/out until e(X)it or end of input.
// Operation errors are reported and the loop continues; the fleet stays
// valid throughout.
func runSession(fleet *marina.Fleet, rates marina.RateTable, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	prompt := func(msg string) (string, bool) {
		fmt.Fprint(out, msg)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	for {
		choice, ok := prompt("(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : ")
		if !ok {
			return
		}
		if choice == "" {
			fmt.Fprint(out, "Invalid option\n\n")
			continue
		}

		switch strings.ToUpper(choice[:1]) {
		case "I":
			fmt.Fprintln(out, renderer.Inventory(fleet.All()))

		case "A":
			line, ok := prompt("Please enter the boat data in CSV format                 : ")
			if !ok {
				return
			}
			v, err := marina.ParseVessel(line)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n\n", err)
				continue
			}
			if err := fleet.Insert(v); err != nil {
				fmt.Fprintf(out, "Error: %v\n\n", err)
			}

		case "R":
			name, ok := prompt("Please enter the boat name                               : ")
			if !ok {
				return
			}
			if err := fleet.Remove(name); err != nil {
				fmt.Fprintf(out, "%v\n\n", err)
			}

		case "P":
			name, ok := prompt("Please enter the boat name                               : ")
			if !ok {
				return
			}
			if _, found := fleet.FindByName(name); !found {
				fmt.Fprintf(out, "%v\n\n", marina.ErrNotFound)
				continue
			}
			raw, ok := prompt("Please enter the amount to be paid                       : ")
			if !ok {
				return
			}
			// amounts parse leniently, like the numeric fields of the fleet file
			amount, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err := fleet.RecordPayment(name, marina.M(amount)); err != nil {
				fmt.Fprintf(out, "%v\n\n", err)
			}

		case "M":
			fleet.ApplyMonthlyCharges(rates)
			fmt.Fprintln(out)

		case "X":
			return

		default:
			fmt.Fprintf(out, "Invalid option %s\n\n", choice[:1])
		}
	}
}
