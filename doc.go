// Package planner provides the types and functions behind a small personal
// finance planner. It is local-first: the ledger lives in memory during a
// session and is persisted to a human-readable text file.
//
// The core functionalities include:
//   - Ledger Management: recording income and expense transactions in an
//     ordered list, and removing them by their 1-based position.
//   - Savings Goals: session-local targets with an accumulating deposited
//     balance and a percent-complete indicator.
//   - Summary: total income, total expenses and balance, recomputed from the
//     transactions every time it is requested.
//   - Data Persistence: encoding and decoding the transactions to and from a
//     pipe-delimited text file, one transaction per line.
//
// This package serves as the foundational logic for the `fin` command-line
// tool and its interactive shell.
package planner
