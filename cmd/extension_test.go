package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeExtension writes an executable script named fin-<name> in dir.
func writeExtension(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, ExtensionPrefix+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("failed to write extension: %v", err)
	}
}

func TestRunExtension(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	writeExtension(t, dir, "hello", `echo "$FIN_LEDGER_FILE $FIN_VERBOSE $1" > "`+out+`"`)
	writeExtension(t, dir, "fail", "exit 3")
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	cfg := Config{LedgerFile: filepath.Join(dir, "random.txt"), Verbose: true}

	found, code := RunExtension(cfg, "hello", []string{"world"})
	if !found || code != 0 {
		t.Fatalf("RunExtension(hello) = %v, %d, want true, 0", found, code)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	if got, want := strings.TrimSpace(string(content)), cfg.LedgerFile+" true world"; got != want {
		t.Errorf("extension saw %q, want %q", got, want)
	}

	if found, code := RunExtension(cfg, "fail", nil); !found || code != 3 {
		t.Errorf("RunExtension(fail) = %v, %d, want true, 3", found, code)
	}
	if found, _ := RunExtension(cfg, "no-such-extension", nil); found {
		t.Errorf("RunExtension(no-such-extension) found an extension")
	}
}

func TestIsCommand(t *testing.T) {
	for name, want := range map[string]bool{"shell": true, "add": true, "help": true, "hello": false} {
		if got := IsCommand(name); got != want {
			t.Errorf("IsCommand(%q) = %v, want %v", name, got, want)
		}
	}
}
