// Package shell implements the interactive menu of the planner.
//
// The shell reads one answer per line from its input and writes prompts and
// reports to its output. Malformed answers print a message and bring the user
// back to the menu; they never modify the ledger.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/etnz/planner"
)

const rule = "---------------------------------"

// Shell is an interactive session over a ledger.
type Shell struct {
	ledger   *planner.Ledger
	filename string
	in       *bufio.Scanner
	out      io.Writer
}

// New creates a shell editing ledger, saving to and loading from filename.
func New(ledger *planner.Ledger, filename string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		ledger:   ledger,
		filename: filename,
		in:       newScanner(in),
		out:      out,
	}
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), planner.MaxLineSize)
	return scanner
}

// Run runs the menu loop until the user exits, the input ends or ctx is done.
//
// Reaching the end of the input exits without saving.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		exit, err := s.step()
		if errors.Is(err, io.EOF) {
			s.printf("\nGoodbye!\n")
			return nil
		}
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// step prints the menu and executes the chosen option.
func (s *Shell) step() (exit bool, err error) {
	s.printf("$$$$--- Financial Planner Menu ---$$$$\n")
	s.printSummary()
	s.printf("1. Add Transactions\n")
	s.printf("2. Show Transactions\n")
	s.printf("3. Remove Transaction\n")
	s.printf("4. Savings Goals\n")
	s.printf("5. Save Data\n")
	s.printf("6. Load Data\n")
	s.printf("7. Exit\n")
	choice, err := s.prompt("Choose an option: ")
	if err != nil {
		return false, err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return false, s.addTransaction()
	case "2":
		s.showTransactions()
	case "3":
		return false, s.removeTransaction()
	case "4":
		return false, s.goals()
	case "5":
		s.save()
	case "6":
		s.load()
	case "7":
		return true, s.exit()
	default:
		s.printf("Invalid choice. Please try again.\n\n")
	}
	return false, nil
}

// prompt writes label and reads the answer. It returns io.EOF when the input is over.
func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// confirm asks a y/n question.
func (s *Shell) confirm(question string) (bool, error) {
	answer, err := s.prompt(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	return planner.IsAffirmative(answer), nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) printSummary() {
	sum := s.ledger.Summary()
	s.printf("\nSummary:\n")
	s.printf("Total Income:   %s\n", sum.Income.Plain())
	s.printf("Total Expenses: %s\n", sum.Expenses.Plain())
	s.printf("%s\n", rule)
	s.printf("Balance:        %s\n\n", sum.Balance.Plain())
}

func (s *Shell) addTransaction() error {
	kind, err := s.prompt("Choose a transaction type. (1. Income 2. Expense): ")
	if err != nil {
		return err
	}
	var (
		label    string
		examples string
		add      func(planner.Money, string, string) planner.Transaction
	)
	switch strings.TrimSpace(kind) {
	case "1":
		label, examples, add = "income", "Salary, Gift", s.ledger.AddIncome
	case "2":
		label, examples, add = "expense", "Food, Rent", s.ledger.AddExpense
	default:
		s.printf("Invalid transaction type.\n\n")
		return nil
	}

	answer, err := s.prompt(fmt.Sprintf("Enter %s amount: ", label))
	if err != nil {
		return err
	}
	amount, err := planner.ParseAmount(answer)
	if err != nil {
		s.printf("Please enter a valid amount: %v\n\n", err)
		return nil
	}
	answer, err = s.prompt(fmt.Sprintf("Enter category (e.g., %s): ", examples))
	if err != nil {
		return err
	}
	category, err := planner.ParseText(answer)
	if err != nil {
		s.printf("Invalid category: %v\n\n", err)
		return nil
	}
	answer, err = s.prompt("Enter description: ")
	if err != nil {
		return err
	}
	description, err := planner.ParseText(answer)
	if err != nil {
		s.printf("Invalid description: %v\n\n", err)
		return nil
	}
	tx := add(amount, category, description)
	log.Printf("added %s: %v", label, tx)
	s.printf("%s added.\n\n", strings.ToUpper(label[:1])+label[1:])
	return nil
}

func (s *Shell) listTransactions(numbered bool) {
	for i, tx := range s.ledger.Transactions() {
		if numbered {
			s.printf("%d. ", i)
		}
		s.printf("%s\n", tx)
	}
}

func (s *Shell) showTransactions() {
	if s.ledger.Len() == 0 {
		s.printf("\nNo transactions found.\n\n")
		return
	}
	s.printf("\nAll Transactions:\n")
	s.listTransactions(false)
	s.printf("\n")
}

func (s *Shell) removeTransaction() error {
	if s.ledger.Len() == 0 {
		s.printf("\nNo transactions found.\n\n")
		return nil
	}
	s.printf("\nRemove Transaction:\n")
	s.listTransactions(true)

	answer, err := s.prompt("\nSelect Transaction to remove: ")
	if err != nil {
		return err
	}
	index, err := planner.ParseIndex(answer)
	if err != nil {
		s.printf("\nPlease enter a valid selection.\n\n")
		return nil
	}
	if _, err := s.ledger.Transaction(index); err != nil {
		s.printf("\nInvalid Selection\n\n")
		return nil
	}
	confirmed, err := s.confirm("\nAre you sure you want to remove this transaction?")
	if err != nil {
		return err
	}
	removed, ok, err := s.ledger.Remove(index, confirmed)
	if err != nil {
		s.printf("\n%v\n\n", err)
		return nil
	}
	if ok {
		s.printf("\nRemoved Transaction: %s\n\n", removed)
	}
	return nil
}

func (s *Shell) save() {
	if err := planner.SaveLedger(s.filename, s.ledger); err != nil {
		s.printf("Error saving data: %v\n\n", err)
		return
	}
	s.printf("Data saved successfully.\n\n")
}

func (s *Shell) load() {
	report, err := planner.LoadLedger(s.filename, s.ledger)
	if errors.Is(err, planner.ErrNotFound) {
		s.printf("No data file found.\n\n")
		return
	}
	if err != nil {
		s.printf("Error loading data: %v\n\n", err)
		return
	}
	s.printf("Data loaded successfully from text file.\n")
	if len(report.Skipped) > 0 {
		s.printf("Warning: %d malformed lines skipped (lines %v).\n", len(report.Skipped), report.Skipped)
	}
	s.printf("\n")
}

func (s *Shell) exit() error {
	save, err := s.confirm("Would you like to save before exiting?")
	if err != nil {
		return err
	}
	if save {
		s.save()
	}
	s.printf("Goodbye!\n")
	return nil
}
