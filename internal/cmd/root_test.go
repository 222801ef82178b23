package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCommand executes a cobra command and returns the output and error.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// writeTestConfig writes a config whose data directory is absolute, so the
// commands never touch the process working directory.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "dentrack.yaml")
	data := "dentrack:\n" +
		"  data_dir: " + filepath.Join(dir, "tracker_data") + "\n" +
		"  rank: lion\n" +
		"  min_electives: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(rootCmd, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "dentrack") {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestEndToEndFlow(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := executeCommand(rootCmd, "--config", cfg, "--no-color", "init", "--scout", "Maya", "--scout", "Ben")
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Added 2 scout(s)") {
		t.Errorf("init output missing scout count:\n%s", out)
	}
	if !strings.Contains(out, "Next steps") {
		t.Errorf("First run should print onboarding help:\n%s", out)
	}

	out, err = executeCommand(rootCmd, "--config", cfg, "--no-color",
		"meeting", "add", "2026-01-10", "--title", "Den Meeting 1", "--covers", "Bobcat.1,Bobcat.2")
	if err != nil {
		t.Fatalf("meeting add failed: %v\n%s", err, out)
	}

	// Same date again must fail.
	_, err = executeCommand(rootCmd, "--config", cfg, "--no-color",
		"meeting", "add", "2026-01-10", "--title", "Duplicate")
	if err == nil {
		t.Fatal("Expected duplicate meeting date to fail")
	}

	out, err = executeCommand(rootCmd, "--config", cfg, "--no-color", "attend", "2026-01-10", "maya")
	if err != nil {
		t.Fatalf("attend failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Maya") {
		t.Errorf("attend should resolve roster casing:\n%s", out)
	}

	out, err = executeCommand(rootCmd, "--config", cfg, "--no-color", "status")
	if err != nil {
		t.Fatalf("status failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Maya", "Ben", "Bobcat", "Rank Eligibility"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}

	out, err = executeCommand(rootCmd, "--config", cfg, "--no-color", "plan", "--view", "needed")
	if err != nil {
		t.Fatalf("plan failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Meeting Planner") {
		t.Errorf("plan output missing header:\n%s", out)
	}

	out, err = executeCommand(rootCmd, "--config", cfg, "--no-color", "report", "Ben")
	if err != nil {
		t.Fatalf("report failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Missed Meetings") {
		t.Errorf("Ben missed the meeting; report should say so:\n%s", out)
	}

	out, err = executeCommand(rootCmd, "--config", cfg, "--no-color", "meeting", "report", "2026-01-10")
	if err != nil {
		t.Fatalf("meeting report failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Present") || !strings.Contains(out, "Absent") {
		t.Errorf("meeting report missing turnout:\n%s", out)
	}
}

// writeTestConfigRank is writeTestConfig with a configurable rank.
func writeTestConfigRank(t *testing.T, rank string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "dentrack.yaml")
	data := "dentrack:\n" +
		"  data_dir: " + filepath.Join(dir, "tracker_data") + "\n" +
		"  rank: " + rank + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestInitSeedsConfiguredRankCatalog(t *testing.T) {
	cfg := writeTestConfigRank(t, "tiger")

	out, err := executeCommand(rootCmd, "--config", cfg, "--no-color", "init", "--scout", "Tammy")
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}
	if strings.Contains(out, "0 catalog requirements") {
		t.Fatalf("Tiger init seeded an empty catalog:\n%s", out)
	}

	out, err = executeCommand(rootCmd, "--config", cfg, "--no-color", "plan", "--view", "all")
	if err != nil {
		t.Fatalf("plan failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Bobcat Tiger") {
		t.Errorf("Expected the Tiger catalog's required adventures in the planner:\n%s", out)
	}
	if strings.Contains(out, "Mountain Lion") {
		t.Errorf("Lion catalog leaked into a Tiger den:\n%s", out)
	}
}

func TestInitUnknownRankStartsEmpty(t *testing.T) {
	cfg := writeTestConfigRank(t, "eagle")

	out, err := executeCommand(rootCmd, "--config", cfg, "--no-color", "init")
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No built-in catalog") {
		t.Errorf("Expected a note about the missing catalog:\n%s", out)
	}
	if !strings.Contains(out, "0 catalog requirements") {
		t.Errorf("Unknown rank should seed an empty catalog:\n%s", out)
	}
}

func TestReportUnknownScout(t *testing.T) {
	cfg := writeTestConfig(t)
	if _, err := executeCommand(rootCmd, "--config", cfg, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := executeCommand(rootCmd, "--config", cfg, "report", "Nobody"); err == nil {
		t.Fatal("Expected error for scout not in roster")
	}
}

func TestAttendRejectsUnknownScout(t *testing.T) {
	cfg := writeTestConfig(t)
	if _, err := executeCommand(rootCmd, "--config", cfg, "init", "--scout", "Maya"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := executeCommand(rootCmd, "--config", cfg, "meeting", "add", "2026-01-10"); err != nil {
		t.Fatalf("meeting add failed: %v", err)
	}

	if _, err := executeCommand(rootCmd, "--config", cfg, "attend", "2026-01-10", "Ghost"); err == nil {
		t.Fatal("Expected error recording attendance for unknown scout")
	}
}

func TestPlanRejectsUnknownView(t *testing.T) {
	cfg := writeTestConfig(t)
	if _, err := executeCommand(rootCmd, "--config", cfg, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := executeCommand(rootCmd, "--config", cfg, "plan", "--view", "bogus"); err == nil {
		t.Fatal("Expected error for unknown plan view")
	}
}
