package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planner"
	"github.com/etnz/planner/shell"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "open the interactive menu (default)" }
func (*shellCmd) Usage() string {
	return `fin shell

  Loads the ledger file and opens the interactive menu to add, list and
  remove transactions, manage savings goals, save and load.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(EnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, report, err := planner.OpenLedger(cfg.LedgerFile)
	if err != nil {
		// like a failed load in the menu: start over with an empty ledger.
		fmt.Printf("Error loading data: %v\n\n", err)
		ledger = planner.NewLedger()
	} else if len(report.Skipped) > 0 {
		fmt.Printf("Warning: %d malformed lines skipped (lines %v).\n\n", len(report.Skipped), report.Skipped)
	}

	if err := shell.New(ledger, cfg.LedgerFile, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
