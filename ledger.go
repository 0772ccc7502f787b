package planner

import (
	"fmt"
	"iter"
	"log"
	"slices"
)

// Ledger holds the transactions and the savings goals of a session.
//
// Both lists keep their insertion order, which is also the display order used
// to select records by their 1-based index.
type Ledger struct {
	transactions []Transaction
	goals        []SavingsGoal
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		goals:        make([]SavingsGoal, 0),
	}
}

// Append appends transactions to the ledger as is.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// AddTransaction appends a new transaction dated today. It never fails.
func (l *Ledger) AddTransaction(amount Money, category, description string) Transaction {
	tx := NewTransaction(amount, category, description)
	l.Append(tx)
	return tx
}

// AddIncome appends a new income dated today.
func (l *Ledger) AddIncome(amount Money, category, description string) Transaction {
	tx := NewIncome(amount, category, description)
	l.Append(tx)
	return tx
}

// AddExpense appends a new expense dated today, the amount is stored as -abs(amount).
func (l *Ledger) AddExpense(amount Money, category, description string) Transaction {
	tx := NewExpense(amount, category, description)
	l.Append(tx)
	return tx
}

// Remove removes the transaction at the given 1-based index, but only if confirmed.
//
// It returns the removed transaction and true on removal. An unconfirmed
// removal is a no-op. An index outside [1, Len()] returns ErrIndexOutOfRange
// and leaves the ledger unchanged.
func (l *Ledger) Remove(index int, confirmed bool) (Transaction, bool, error) {
	if err := checkIndex(index, len(l.transactions)); err != nil {
		return Transaction{}, false, err
	}
	if !confirmed {
		return Transaction{}, false, nil
	}
	removed := l.transactions[index-1]
	l.transactions = slices.Delete(l.transactions, index-1, index)
	log.Printf("removed transaction #%d: %v", index, removed)
	return removed, true, nil
}

// Replace swaps the whole list of transactions.
func (l *Ledger) Replace(txs []Transaction) {
	l.transactions = slices.Clone(txs)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transaction returns the transaction at the given 1-based index.
func (l *Ledger) Transaction(index int) (Transaction, error) {
	if err := checkIndex(index, len(l.transactions)); err != nil {
		return Transaction{}, err
	}
	return l.transactions[index-1], nil
}

// Transactions returns an iterator that yields each transaction with its 1-based index.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i+1, tx) {
				return
			}
		}
	}
}

// Summary computes the income, expenses and balance of the current transactions.
func (l *Ledger) Summary() Summary { return ComputeSummary(l.Transactions()) }

// AddGoal appends a new savings goal with nothing deposited. It never fails.
func (l *Ledger) AddGoal(name string, target Money) SavingsGoal {
	g := NewSavingsGoal(name, target)
	l.goals = append(l.goals, g)
	return g
}

// Deposit adds amount to the deposited balance of the goal at the given 1-based index, but only if confirmed.
//
// It returns the goal as it is after the operation. Deposits beyond the target
// are legal. A negative amount returns ErrNegativeDeposit, an invalid index
// returns ErrIndexOutOfRange, in both cases nothing changes.
func (l *Ledger) Deposit(index int, amount Money, confirmed bool) (SavingsGoal, error) {
	if err := checkIndex(index, len(l.goals)); err != nil {
		return SavingsGoal{}, err
	}
	if amount.IsNegative() {
		return l.goals[index-1], fmt.Errorf("%w: %s", ErrNegativeDeposit, amount)
	}
	if !confirmed {
		return l.goals[index-1], nil
	}
	g := &l.goals[index-1]
	g.Deposited = g.Deposited.Add(amount)
	return *g, nil
}

// GoalCount returns the number of savings goals.
func (l *Ledger) GoalCount() int { return len(l.goals) }

// Goals returns an iterator that yields each savings goal with its 1-based index.
func (l *Ledger) Goals() iter.Seq2[int, SavingsGoal] {
	return func(yield func(int, SavingsGoal) bool) {
		for i, g := range l.goals {
			if !yield(i+1, g) {
				return
			}
		}
	}
}

func checkIndex(index, n int) error {
	if index < 1 || index > n {
		return fmt.Errorf("%w: %d is not between 1 and %d", ErrIndexOutOfRange, index, n)
	}
	return nil
}
