package shell

import (
	"strings"

	"github.com/etnz/planner"
)

// goals runs the savings goals sub-menu until the user goes back.
func (s *Shell) goals() error {
	for {
		s.printf("\n$$$$--- Savings Goals ---$$$$\n")
		s.printf("1. View Goals\n")
		s.printf("2. Add Goal\n")
		s.printf("3. Deposit\n")
		s.printf("4. Back\n")
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.showGoals(false)
		case "2":
			err = s.addGoal()
		case "3":
			err = s.deposit()
		case "4":
			s.printf("\n")
			return nil
		default:
			s.printf("Invalid choice. Please try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) showGoals(numbered bool) {
	if s.ledger.GoalCount() == 0 {
		s.printf("\nNo savings goals found.\n")
		return
	}
	s.printf("\nSavings Goals:\n")
	for i, g := range s.ledger.Goals() {
		if numbered {
			s.printf("%d. ", i)
		}
		s.printf("%s | %s | %s / %s | %s\n", g.Created, g.Name, g.Deposited.Plain(), g.Target.Plain(), g.PercentComplete())
	}
}

func (s *Shell) addGoal() error {
	name, err := s.prompt("Enter goal name: ")
	if err != nil {
		return err
	}
	answer, err := s.prompt("Enter target amount: ")
	if err != nil {
		return err
	}
	target, err := planner.ParseAmount(answer)
	if err != nil {
		s.printf("Please enter a valid amount: %v\n", err)
		return nil
	}
	s.ledger.AddGoal(strings.TrimSpace(name), target)
	s.printf("Savings goal added.\n")
	return nil
}

func (s *Shell) deposit() error {
	if s.ledger.GoalCount() == 0 {
		s.printf("\nNo savings goals found.\n")
		return nil
	}
	s.showGoals(true)

	answer, err := s.prompt("\nSelect goal to deposit into: ")
	if err != nil {
		return err
	}
	index, err := planner.ParseIndex(answer)
	if err != nil {
		s.printf("\nPlease enter a valid selection.\n")
		return nil
	}
	answer, err = s.prompt("Enter deposit amount: ")
	if err != nil {
		return err
	}
	amount, err := planner.ParseAmount(answer)
	if err != nil {
		s.printf("Please enter a valid amount: %v\n", err)
		return nil
	}
	// validate before asking for a confirmation.
	if _, err := s.ledger.Deposit(index, amount, false); err != nil {
		s.printf("\n%v\n", err)
		return nil
	}
	confirmed, err := s.confirm("Deposit " + amount.Plain() + "?")
	if err != nil {
		return err
	}
	g, err := s.ledger.Deposit(index, amount, confirmed)
	if err != nil {
		s.printf("\n%v\n", err)
		return nil
	}
	if confirmed {
		s.printf("Deposited %s into %q, now %s complete.\n", amount.Plain(), g.Name, g.PercentComplete())
	}
	return nil
}
