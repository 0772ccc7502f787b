package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setLedgerFile sets the -ledger-file flag for the duration of the test.
func setLedgerFile(t *testing.T, filename string) {
	t.Helper()
	prev := *ledgerFile
	*ledgerFile = filename
	t.Cleanup(func() { *ledgerFile = prev })
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte(EnvLedgerFile+"=from-dotenv.txt\n"+EnvVerbose+"=true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name        string
		envFile     string
		env         string
		flag        string
		want        string
		wantVerbose bool
	}{
		{name: "default", envFile: filepath.Join(dir, "missing.env"), want: "financial.txt"},
		{name: "environment", envFile: filepath.Join(dir, "missing.env"), env: "from-env.txt", want: "from-env.txt"},
		{name: "dotenv", envFile: envFile, want: "from-dotenv.txt", wantVerbose: true},
		{name: "environment wins over dotenv", envFile: envFile, env: "from-env.txt", want: "from-env.txt", wantVerbose: true},
		{name: "flag wins over all", envFile: envFile, env: "from-env.txt", flag: "from-flag.txt", want: "from-flag.txt", wantVerbose: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// t.Setenv restores the variables loaded by godotenv too.
			t.Setenv(EnvLedgerFile, tc.env)
			t.Setenv(EnvVerbose, "")
			// godotenv does not override variables that are set, even empty.
			os.Unsetenv(EnvVerbose)
			if tc.env == "" {
				os.Unsetenv(EnvLedgerFile)
			}
			setLedgerFile(t, tc.flag)

			cfg, err := LoadConfig(tc.envFile)
			if err != nil {
				t.Fatalf("LoadConfig() unexpected error: %v", err)
			}
			if cfg.LedgerFile != tc.want {
				t.Errorf("LedgerFile = %q, want %q", cfg.LedgerFile, tc.want)
			}
			if cfg.Verbose != tc.wantVerbose {
				t.Errorf("Verbose = %v, want %v", cfg.Verbose, tc.wantVerbose)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name        string
		config      Config
		errorString string
	}{
		{name: "valid", config: Config{LedgerFile: filepath.Join(dir, "financial.txt")}},
		{name: "empty ledger file", config: Config{LedgerFile: " "}, errorString: "ledger file cannot be empty"},
		{name: "directory", config: Config{LedgerFile: dir}, errorString: "is a directory"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.errorString == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errorString) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tc.errorString)
			}
		})
	}
}
