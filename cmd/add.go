package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/planner"
	"github.com/google/subcommands"
)

type addCmd struct {
	kind        string
	amount      string
	category    string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append an income or an expense to the ledger" }
func (*addCmd) Usage() string {
	return `fin add -type income|expense -a <amount> -c <category> [-m <description>]

  Appends a transaction dated today to the ledger file. Expenses are always
  stored as negative amounts.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "expense", "Transaction type: income or expense")
	f.StringVar(&c.amount, "a", "", "Amount")
	f.StringVar(&c.category, "c", "", "Category (e.g., Salary, Food, Rent)")
	f.StringVar(&c.description, "m", "", "Description")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || (c.kind != "income" && c.kind != "expense") {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := planner.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	category, err := planner.ParseText(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in category: %v\n", err)
		return subcommands.ExitUsageError
	}
	description, err := planner.ParseText(c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in description: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, filename, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var tx planner.Transaction
	if c.kind == "income" {
		tx = ledger.AddIncome(amount, category, description)
	} else {
		tx = ledger.AddExpense(amount, category, description)
	}

	if err := planner.SaveLedger(filename, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s to %s\n", tx, filename)
	return subcommands.ExitSuccess
}
