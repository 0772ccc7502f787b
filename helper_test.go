package planner

import (
	"testing"
	"time"

	"github.com/etnz/planner/date"
	"github.com/google/go-cmp/cmp"
)

// cmpOpts compares Money and date.Date by value.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// fixClock sets today to the given day for the duration of the test.
func fixClock(t *testing.T, day string) {
	t.Helper()
	d := date.MustParse(day)
	restore := date.SetClock(func() time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local)
	})
	t.Cleanup(restore)
}

// tx is a helper for test to create a transaction from consts.
func tx(day, category, description string, amount float64) Transaction {
	return Transaction{Date: date.MustParse(day), Category: category, Description: description, Amount: M(amount)}
}

// ledgerOf creates a ledger holding the given transactions.
func ledgerOf(txs ...Transaction) *Ledger {
	l := NewLedger()
	l.Append(txs...)
	return l
}

func collect(l *Ledger) []Transaction {
	var txs []Transaction
	for _, tx := range l.Transactions() {
		txs = append(txs, tx)
	}
	return txs
}
