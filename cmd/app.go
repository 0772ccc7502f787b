// Package cmd implements the CLI application to manage a personal finance ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/planner"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

const (
	EnvLedgerFile = "FIN_LEDGER_FILE"
	EnvVerbose    = "FIN_VERBOSE"
)

// EnvFile is the optional file holding environment variables.
const EnvFile = ".env"

// Commands are all the subcommands of the application.
// A main package will register them, and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&shellCmd{},
	&addCmd{},
	&listCmd{},
	&removeCmd{},
	&summaryCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (default $"+EnvLedgerFile+" or "+planner.DefaultLedgerFile+")")
var verbose = flag.Bool("verbose", false, "Print diagnostic logs (default $"+EnvVerbose+")")

// Config is the resolved configuration of the application.
type Config struct {
	LedgerFile string
	Verbose    bool
}

// LoadConfig resolves the configuration: flags first, then the environment,
// then the defaults. Variables found in envFile are added to the environment
// if not already set.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read %q: %w", envFile, err)
	}
	cfg := Config{
		LedgerFile: getEnv(EnvLedgerFile, planner.DefaultLedgerFile),
		Verbose:    getEnvBool(EnvVerbose, false),
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	if *verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

// Validate validates the configuration and returns an error if invalid
func (c Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.LedgerFile) == "" {
		errs = append(errs, "ledger file cannot be empty")
	}
	if fi, err := os.Stat(c.LedgerFile); err == nil && fi.IsDir() {
		errs = append(errs, fmt.Sprintf("ledger file %q is a directory", c.LedgerFile))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Setup loads the configuration and configures the logs accordingly.
func Setup() (Config, error) {
	cfg, err := LoadConfig(EnvFile)
	if err != nil {
		return cfg, err
	}
	log.SetPrefix("fin: ")
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// decodeLedger loads the configured ledger file. A missing file gives an empty ledger.
func decodeLedger() (*planner.Ledger, string, error) {
	cfg, err := LoadConfig(EnvFile)
	if err != nil {
		return nil, "", err
	}
	ledger, report, err := planner.OpenLedger(cfg.LedgerFile)
	if err != nil {
		return nil, cfg.LedgerFile, err
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %q: %v\n", cfg.LedgerFile, report)
	}
	log.Printf("%s: %v", cfg.LedgerFile, report)
	return ledger, cfg.LedgerFile, nil
}

// printMarkdown renders markdown for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("could not render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
