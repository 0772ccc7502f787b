// Package renderer turns ledger data into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/planner"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the income, expenses and balance of a ledger.
func SummaryMarkdown(s planner.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Total Income", s.Income.String()},
			{"Total Expenses", s.Expenses.String()},
			{md.Bold("Balance"), md.Bold(s.Balance.String())},
		},
	})
	doc.PlainText(fmt.Sprintf("%d transactions", s.Count))

	return doc.String()
}

// TransactionsMarkdown renders all the transactions with the index used to select them.
func TransactionsMarkdown(l *planner.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("All Transactions")
	if l.Len() == 0 {
		doc.PlainText("No transactions found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"#", "Date", "Category", "Description", "Amount"},
	}
	for i, tx := range l.Transactions() {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i),
			tx.Date.String(),
			tx.Category,
			tx.Description,
			tx.Amount.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// GoalsMarkdown renders the savings goals and their progress.
func GoalsMarkdown(l *planner.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Goals")
	if l.GoalCount() == 0 {
		doc.PlainText("No savings goals found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"#", "Name", "Target", "Deposited", "Complete", "Created"},
	}
	for i, g := range l.Goals() {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i),
			g.Name,
			g.Target.String(),
			g.Deposited.String(),
			g.PercentComplete().String(),
			g.Created.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
