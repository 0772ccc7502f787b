package planner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeLedger(t *testing.T) {
	stream := `2024-05-01 | Salary | May paycheck | $2500.00
2024-05-02 | Food | Lunch | $-40.00

2024-05-03 | Gift | From grandma | 15
`
	txs, report, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	want := []Transaction{
		tx("2024-05-01", "Salary", "May paycheck", 2500),
		tx("2024-05-02", "Food", "Lunch", -40),
		tx("2024-05-03", "Gift", "From grandma", 15),
	}
	if diff := cmp.Diff(want, txs, cmpOpts); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
	if report.Decoded != 3 || len(report.Skipped) != 0 {
		t.Errorf("DecodeLedger() report = %+v, want 3 decoded and none skipped", report)
	}
}

func TestDecodeLedger_SkipsMalformedLines(t *testing.T) {
	stream := `2024-05-01 | Salary | May paycheck | $2500.00
2024-05-02 | Food | $-40.00
2024-05-03 | Food | Lunch | with | pipes | $-12.00
`
	txs, report, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	want := []Transaction{tx("2024-05-01", "Salary", "May paycheck", 2500)}
	if diff := cmp.Diff(want, txs, cmpOpts); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, report.Skipped); diff != "" {
		t.Errorf("Skipped mismatch (-want +got):\n%s", diff)
	}
	if got, want := report.String(), "1 transactions loaded, 2 malformed lines skipped (lines [2 3])"; got != want {
		t.Errorf("report.String() = %q, want %q", got, want)
	}
}

func TestDecodeLedger_SkipsUnreadableDates(t *testing.T) {
	stream := `2024-05-01 | Salary | May | $2500.00
05/02/2024 | Food | Lunch | $-40.00
May 3rd | Gift | Birthday | $15.00
`
	txs, report, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	want := []Transaction{tx("2024-05-01", "Salary", "May", 2500)}
	if diff := cmp.Diff(want, txs, cmpOpts); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, report.Skipped); diff != "" {
		t.Errorf("Skipped mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLedger_LongLine(t *testing.T) {
	description := strings.Repeat("x", 70000)
	stream := "2024-05-01 | Notes | " + description + " | $1.00\n2024-05-02 | Food | Lunch | $-40.00\n"

	txs, report, err := DecodeLedger(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	want := []Transaction{
		tx("2024-05-01", "Notes", description, 1),
		tx("2024-05-02", "Food", "Lunch", -40),
	}
	if diff := cmp.Diff(want, txs, cmpOpts); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
	if report.Decoded != 2 {
		t.Errorf("report.Decoded = %d, want 2", report.Decoded)
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		stream  string
		wantErr error
	}{
		{
			name:    "non numeric amount",
			stream:  "2024-05-01 | Salary | May | $2500.00\n2024-05-02 | Food | Lunch | $forty\n",
			wantErr: ErrMalformedAmount,
		},
		{
			name:    "double currency symbol",
			stream:  "2024-05-02 | Food | Lunch | $$40\n",
			wantErr: ErrMalformedAmount,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txs, _, err := DecodeLedger(strings.NewReader(tc.stream))
			if err == nil {
				t.Fatalf("DecodeLedger() expected an error, got %d transactions", len(txs))
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("DecodeLedger() error = %v, want %v", err, tc.wantErr)
			}
			if txs != nil {
				t.Errorf("DecodeLedger() must not return partial results, got %v", txs)
			}
		})
	}
}

func TestEncodeLedger(t *testing.T) {
	ledger := ledgerOf(
		tx("2024-05-03", "Rent", "June", -900),
		tx("2024-05-01", "Salary", "May paycheck", 2500),
		tx("2024-05-02", "Food", "Lunch", -40.456),
	)

	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	// ledger order is kept, amounts are rounded to 2 decimals.
	want := `2024-05-03 | Rent | June | $-900.00
2024-05-01 | Salary | May paycheck | $2500.00
2024-05-02 | Food | Lunch | $-40.46
`
	if got := buffer.String(); got != want {
		t.Errorf("EncodeLedger() output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := []Transaction{
		tx("2024-05-01", "Salary", "May paycheck", 2500),
		tx("2024-05-02", "Food", "Lunch", -40.456),
		tx("2024-05-03", "Misc", "", 0),
		tx("2024-05-04", "Gift", "Birthday", 12.3),
	}

	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, ledgerOf(original...)); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	got, report, err := DecodeLedger(&buffer)
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if report.Decoded != len(original) {
		t.Fatalf("decoded %d transactions, want %d", report.Decoded, len(original))
	}

	// amounts only survive to 2-decimal precision.
	want := make([]Transaction, len(original))
	for i, tx := range original {
		tx.Amount = tx.Amount.Round()
		want[i] = tx
	}
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
