package folio

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// This file contains the logic to test the examples in the README.md file.
//
// To add a new testable example to the README.md file, you need to follow these steps:
//
// 1.  Add the command to the README.md file, wrapped in a ```bash ... ``` block.
// 2.  Add the expected output of the command, wrapped in a ```console ... ``` block.
//
// The test will automatically parse the README.md file, run the commands, and compare the output with the expected output.

// Command holds a command and its expected output.
type Command struct {
	Cmd      string
	Expected string
}

// buildFolio builds the folio command and returns the path to the executable.
func buildFolio(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "folio")

	buildCmd := exec.Command("go", "build", "-o", output, "./folio/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build folio command: %v\n%s", err, out)
	}

	return output
}

// parseReadme parses the README.md file to extract commands and their expected outputs.
func parseReadme(t *testing.T) []Command {
	t.Helper()

	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	re := regexp.MustCompile("(?m)```bash\\n(folio.*?)\n```\\n\\n```console\n((.|\\n)*?)```")
	matches := re.FindAllStringSubmatch(string(content), -1)

	var commands []Command
	for _, match := range matches {
		commands = append(commands, Command{Cmd: match[1], Expected: match[2]})
	}

	return commands
}

func TestReadme(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the folio command")
	}
	tmp := t.TempDir()
	folioPath := buildFolio(t, tmp)

	commands := parseReadme(t)
	if len(commands) == 0 {
		t.Fatal("no testable example found in README.md")
	}

	for _, cmd := range commands {
		args := strings.Fields(cmd.Cmd)
		t.Log("Running command:", folioPath, args)
		command := exec.Command(folioPath, args[1:]...)
		command.Dir = tmp
		command.Env = cleanEnv()
		output, err := command.CombinedOutput()
		if err != nil {
			t.Fatalf("failed to run command: %v, output: \n%s", err, output)
		}
		result := string(output)

		if cmd.Expected != result {
			t.Errorf("expected output:\n%q\nbut got:\n%q", cmd.Expected, result)
		}
	}
}

// cleanEnv returns the environment without any folio setting.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "FOLIO_") {
			env = append(env, kv)
		}
	}
	return env
}
