package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, code := RunExtension("does-not-exist", nil)
	if found || code != 0 {
		t.Errorf("RunExtension() = %v, %v, want false, 0", found, code)
	}
}

func TestRunExtensionExitCode(t *testing.T) {
	tempDir := t.TempDir()
	script := "#!/bin/sh\n" +
		`test "$FOLIO_CONFIG" = "folio.toml" || exit 3` + "\n" +
		`test "$1" = "arg" || exit 4` + "\n" +
		"exit 7\n"
	if err := os.WriteFile(filepath.Join(tempDir, "folio-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write folio-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("hello", []string{"arg"})
	if !found {
		t.Fatal("RunExtension() did not find folio-hello")
	}
	if code != 7 {
		t.Errorf("RunExtension() exit code = %d, want 7", code)
	}
}
