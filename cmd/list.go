package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planner/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the transactions with their number" }
func (*listCmd) Usage() string {
	return `fin list

  Lists all the transactions of the ledger. The number in the first column
  is the one to use with 'fin remove'.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(ledger))
	return subcommands.ExitSuccess
}
