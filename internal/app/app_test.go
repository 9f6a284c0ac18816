// internal/app/app_test.go
package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDie(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	t.Setenv("DICESTATS_INPUT", "")
	t.Setenv("DICESTATS_OUT_DIR", "")
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunNoCommand(t *testing.T) {
	code, out, _ := run(t)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "Commands:") {
		t.Fatalf("expected usage plus command summary:\n%s", out)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	code, out, errOut := run(t, "swap")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut, `unknown command "swap"`) {
		t.Fatalf("stderr: %q", errOut)
	}
	if !strings.Contains(out, "Commands:") {
		t.Fatalf("expected command summary:\n%s", out)
	}
}

func TestRunHelpListsEveryCommandOnce(t *testing.T) {
	code, out, _ := run(t, "help")
	if code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	want := map[string]string{
		"basic":  "show basic analysis of the dice data",
		"chi_sq": "run a chi squared analysis of a die's rolls",
		"help":   "print help for a specific command or list all commands",
	}
	for name, summary := range want {
		line := fmt.Sprintf("  %-16s %s\n", name, summary)
		if strings.Count(out, line) != 1 {
			t.Fatalf("%q should appear exactly once:\n%s", line, out)
		}
	}
}

func TestRunHelpSingleCommand(t *testing.T) {
	code, out, _ := run(t, "help", "basic")
	if code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out, "ASCII histogram") {
		t.Fatalf("expected basic's full doc:\n%s", out)
	}
	if strings.Contains(out, "chi squared") {
		t.Fatalf("help basic leaked other docs:\n%s", out)
	}
}

func TestRunHelpUnknownCommand(t *testing.T) {
	code, _, errOut := run(t, "help", "swap")
	if code != 1 || !strings.Contains(errOut, "unknown command") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestRunVersionFlagContinuesProcessing(t *testing.T) {
	code, out, _ := run(t, "-v", "help")
	if code != 0 {
		t.Fatalf("exit %d, want 0", code)
	}
	if !strings.Contains(out, "dicestats version") {
		t.Fatalf("missing version line:\n%s", out)
	}
	if !strings.Contains(out, "Commands:") {
		t.Fatalf("processing did not continue past version:\n%s", out)
	}
}

func TestRunBasicParseFailureAbortsRun(t *testing.T) {
	dir := t.TempDir()
	writeDie(t, dir, "bad.txt", "My die\nabc\n")

	code, _, errOut := run(t, "basic", "-i", dir)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut, "bad.txt:2") {
		t.Fatalf("expected line-numbered parse error, got %q", errOut)
	}
}

func TestRunBasicEnvDefaultInput(t *testing.T) {
	dir := t.TempDir()
	writeDie(t, dir, "die.txt", "Env d2\n1\n2\n")

	t.Setenv("DICESTATS_INPUT", dir)
	t.Setenv("DICESTATS_OUT_DIR", "")
	var out, errBuf bytes.Buffer
	code := Run([]string{"basic"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr %s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Env d2") {
		t.Fatalf("env default ignored:\n%s", out.String())
	}
}

func TestRunBasicExplicitInputBeatsEnv(t *testing.T) {
	envDir := t.TempDir()
	writeDie(t, envDir, "env.txt", "From env\n1\n2\n")
	flagDir := t.TempDir()
	writeDie(t, flagDir, "flag.txt", "From flag\n1\n2\n")

	t.Setenv("DICESTATS_INPUT", envDir)
	t.Setenv("DICESTATS_OUT_DIR", "")
	var out, errBuf bytes.Buffer
	code := Run([]string{"basic", "-i", flagDir}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr %s", code, errBuf.String())
	}
	if strings.Contains(out.String(), "From env") || !strings.Contains(out.String(), "From flag") {
		t.Fatalf("flag should beat env:\n%s", out.String())
	}
}
