package planner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultLedgerFile is the ledger file used when none is configured.
const DefaultLedgerFile = "financial.txt"

// LoadLedger replaces the transactions of the ledger with the ones decoded from filename.
//
// The ledger is only modified if the whole file could be decoded. If the file
// does not exist it returns ErrNotFound and the ledger is left untouched.
func LoadLedger(filename string, ledger *Ledger) (DecodeReport, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return DecodeReport{}, fmt.Errorf("%w: %q", ErrNotFound, filename)
	}
	if err != nil {
		return DecodeReport{}, fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()

	txs, report, err := DecodeLedger(f)
	if err != nil {
		return report, fmt.Errorf("could not decode ledger file %q: %w", filename, err)
	}
	ledger.Replace(txs)
	return report, nil
}

// OpenLedger loads a new ledger from filename. A missing file is not an
// error, it gives an empty ledger.
func OpenLedger(filename string) (*Ledger, DecodeReport, error) {
	ledger := NewLedger()
	report, err := LoadLedger(filename, ledger)
	if errors.Is(err, ErrNotFound) {
		return ledger, report, nil
	}
	if err != nil {
		return nil, report, err
	}
	return ledger, report, nil
}

// SaveLedger overwrites filename with all the transactions of the ledger.
func SaveLedger(filename string, ledger *Ledger) (err error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger %q: %w", filename, err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing ledger file %q: %w", filename, cerr)
		}
	}()

	return EncodeLedger(file, ledger)
}
