package planner

import (
	"fmt"

	"github.com/etnz/planner/date"
)

// SavingsGoal is a named target amount with an accumulating deposited balance.
//
// Goals only live for the duration of a session, they are never persisted.
type SavingsGoal struct {
	Name      string
	Target    Money
	Deposited Money
	Created   date.Date
}

// NewSavingsGoal creates a goal with nothing deposited yet, created today.
func NewSavingsGoal(name string, target Money) SavingsGoal {
	return SavingsGoal{
		Name:    name,
		Target:  target,
		Created: date.Today(),
	}
}

// PercentComplete returns deposited/target as a percentage.
// A goal with a zero target is always 0% complete. Values above 100% are
// returned as is.
func (g SavingsGoal) PercentComplete() Percent {
	if g.Target.IsZero() {
		return 0
	}
	ratio := g.Deposited.Decimal().Div(g.Target.Decimal()).Shift(2)
	return Percent(ratio.InexactFloat64())
}

// Remaining returns how much is left to deposit to reach the target. It is
// negative when the goal is over-funded.
func (g SavingsGoal) Remaining() Money { return g.Target.Sub(g.Deposited) }

func (g SavingsGoal) String() string {
	return fmt.Sprintf("%s: %s / %s (%s)", g.Name, g.Deposited, g.Target, g.PercentComplete())
}
