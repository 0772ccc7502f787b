package planner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/etnz/planner/date"
	"github.com/shopspring/decimal"
)

// separator between the fields of a ledger line.
const separator = " | "

// fieldCount is the number of fields of a well-formed ledger line.
const fieldCount = 4

// MaxLineSize is the longest line that can be read from a ledger file or typed in the shell.
const MaxLineSize = 16 << 20

// DecodeReport tells what DecodeLedger had to leave out.
type DecodeReport struct {
	Decoded int   // number of transactions decoded
	Skipped []int // 1-based line numbers of malformed lines
}

// String returns a one line description of the report.
func (r DecodeReport) String() string {
	if len(r.Skipped) == 0 {
		return fmt.Sprintf("%d transactions loaded", r.Decoded)
	}
	return fmt.Sprintf("%d transactions loaded, %d malformed lines skipped (lines %v)", r.Decoded, len(r.Skipped), r.Skipped)
}

// DecodeLedger reads transactions from r, one per line:
//
//	<date> | <category> | <description> | $<amount>
//
// Lines that do not have exactly 4 fields, or whose date cannot be parsed,
// are skipped and reported. Blank lines are ignored. An amount that cannot be
// parsed aborts the decoding, and no transaction is returned.
func DecodeLedger(r io.Reader) ([]Transaction, DecodeReport, error) {
	var report DecodeReport
	txs := make([]Transaction, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue // Skip empty lines
		}

		tx, err := decodeTransaction(line)
		if errors.Is(err, errMalformedLine) {
			log.Printf("skipping line %d: %v", lineNo, err)
			report.Skipped = append(report.Skipped, lineNo)
			continue
		}
		if err != nil {
			return nil, report, fmt.Errorf("line %d: %w", lineNo, err)
		}
		txs = append(txs, tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, report, fmt.Errorf("error reading from input: %w", err)
	}
	report.Decoded = len(txs)
	return txs, report, nil
}

// errMalformedLine marks the lines that are skipped rather than aborting the decoding.
var errMalformedLine = errors.New("malformed line")

func decodeTransaction(line string) (Transaction, error) {
	parts := strings.Split(line, separator)
	if len(parts) != fieldCount {
		return Transaction{}, fmt.Errorf("%w: want %d fields separated by %q, got %d", errMalformedLine, fieldCount, separator, len(parts))
	}
	day, err := date.Parse(parts[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", errMalformedLine, err)
	}
	amount, err := decimal.NewFromString(strings.TrimPrefix(parts[3], "$"))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w %q: %w", ErrMalformedAmount, parts[3], err)
	}
	return Transaction{
		Date:        day,
		Category:    parts[1],
		Description: parts[2],
		Amount:      M(amount),
	}, nil
}

// EncodeTransaction writes a single transaction to w, followed by a newline.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	if _, err := io.WriteString(w, tx.String()+"\n"); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes all the transactions of the ledger to w, in ledger order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
