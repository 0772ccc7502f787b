package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planner/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total income, total expenses and balance" }
func (*summaryCmd) Usage() string {
	return `fin summary

  Displays the total income, the total expenses and the balance of the ledger.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(ledger.Summary()))
	return subcommands.ExitSuccess
}
