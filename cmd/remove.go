package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/planner"
	"github.com/google/subcommands"
)

type removeCmd struct {
	index int
	yes   bool

	in io.Reader // confirmation answers, os.Stdin if nil
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a transaction by number" }
func (*removeCmd) Usage() string {
	return `fin remove -i <number> [-y]

  Removes the transaction with the given number, as shown by 'fin list'.
  Without -y, asks for a confirmation.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "Number of the transaction to remove")
	f.BoolVar(&c.yes, "y", false, "Do not ask for a confirmation")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, filename, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.Transaction(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	confirmed := c.yes
	if !confirmed {
		in := c.in
		if in == nil {
			in = os.Stdin
		}
		fmt.Printf("%s\nAre you sure you want to remove this transaction? (y/n): ", tx)
		scanner := bufio.NewScanner(in)
		confirmed = scanner.Scan() && planner.IsAffirmative(scanner.Text())
	}

	removed, ok, err := ledger.Remove(c.index, confirmed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !ok {
		fmt.Println("Nothing removed.")
		return subcommands.ExitSuccess
	}

	if err := planner.SaveLedger(filename, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed Transaction: %s\n", removed)
	return subcommands.ExitSuccess
}
