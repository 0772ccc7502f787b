package planner

import "iter"

// Summary is the derived income, expenses and balance of a set of transactions.
type Summary struct {
	Income   Money // sum of positive amounts
	Expenses Money // sum of negative amounts, as a positive magnitude
	Balance  Money // Income - Expenses
	Count    int
}

// ComputeSummary sums the transactions. Zero amounts count as neither income nor expense.
func ComputeSummary(txs iter.Seq2[int, Transaction]) Summary {
	var s Summary
	for _, tx := range txs {
		s.Count++
		switch {
		case tx.IsIncome():
			s.Income = s.Income.Add(tx.Amount)
		case tx.IsExpense():
			s.Expenses = s.Expenses.Sub(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}
