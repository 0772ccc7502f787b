package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planner"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fin fmt [-o <file>]

  Validates and formats the ledger file. This command reads all transactions,
  drops the malformed lines, and writes them back with amounts rounded to two
  decimals. By default, it formats the ledger in-place. Use -o to write the
  result to another file.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file. Formats in-place by default.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(EnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := planner.NewLedger()
	report, err := planner.LoadLedger(cfg.LedgerFile, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	output := p.outputFile
	if output == "" {
		output = cfg.LedgerFile
	}
	if err := planner.SaveLedger(output, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %q: %v\n", output, report)
	return subcommands.ExitSuccess
}
