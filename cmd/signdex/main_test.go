package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"signdex/internal/importer"
	"signdex/internal/ledger"
	"signdex/internal/testsupport"
)

func TestImportCommandEndToEnd(t *testing.T) {
	configPath, cfg := newTestConfig(t, "hello", "thank you", "xyz123")
	root := testsupport.FlatDataset(t, "hello_1.mp4", "thankyou_1.mp4")

	stdout, _, err := runCLI(t, configPath, "import", root)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	var report importer.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("expected JSON report on non-TTY stdout, got %q: %v", stdout, err)
	}
	if len(report.Copied) != 2 {
		t.Fatalf("expected 2 copies, got %+v", report.Copied)
	}
	if !slices.Equal(report.Missing, []string{"xyz123"}) {
		t.Fatalf("unexpected missing: %v", report.Missing)
	}

	for _, name := range []string{"hello.mp4", "thank_you.mp4", "manifest.json", "_available_glosses.txt"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.AssetsDir, name)); err != nil {
			t.Fatalf("expected %s in assets dir: %v", name, err)
		}
	}
}

func TestImportCommandMissingDatasetFails(t *testing.T) {
	configPath, _ := newTestConfig(t, "hello")

	_, _, err := runCLI(t, configPath, "import", filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing dataset path")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImportCommandPartialSuccessExitsZero(t *testing.T) {
	configPath, _ := newTestConfig(t, "nothing matches this")
	root := testsupport.FlatDataset(t, "hello_1.mp4")

	if _, _, err := runCLI(t, configPath, "import", root); err != nil {
		t.Fatalf("unresolved glosses must not fail the command: %v", err)
	}
}

func TestResolveCommandWithExplicitTargets(t *testing.T) {
	configPath, cfg := newTestConfig(t)
	root := testsupport.FlatDataset(t, "hello_1.mp4")

	stdout, _, err := runCLI(t, configPath, "resolve", root, "hello", "xyz123")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	var entries []resolveEntry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("expected JSON entries, got %q: %v", stdout, err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if !entries[0].Resolved || entries[0].Tier != "exact" {
		t.Fatalf("unexpected hello entry: %+v", entries[0])
	}
	if entries[1].Resolved {
		t.Fatalf("expected xyz123 unresolved: %+v", entries[1])
	}

	// Resolve must not copy anything.
	if _, err := os.Stat(filepath.Join(cfg.Paths.AssetsDir, "hello.mp4")); err == nil {
		t.Fatal("resolve must not write assets")
	}
}

func TestGlossesCommandListsSorted(t *testing.T) {
	configPath, _ := newTestConfig(t)
	root := testsupport.FlatDataset(t, "water_1.mp4", "hello_1.mp4")

	stdout, _, err := runCLI(t, configPath, "glosses", root)
	if err != nil {
		t.Fatalf("glosses failed: %v", err)
	}
	if stdout != "hello\nwater\n" {
		t.Fatalf("unexpected listing: %q", stdout)
	}
}

func TestHistoryCommandShowsRecordedRun(t *testing.T) {
	configPath, _ := newTestConfig(t, "hello")
	root := testsupport.FlatDataset(t, "hello_1.mp4")

	if _, _, err := runCLI(t, configPath, "import", root); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	stdout, _, err := runCLI(t, configPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	var runs []ledger.Run
	if err := json.Unmarshal([]byte(stdout), &runs); err != nil {
		t.Fatalf("expected JSON runs, got %q: %v", stdout, err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Copied != 1 || runs[0].Missing != 0 {
		t.Fatalf("unexpected run counts: %+v", runs[0])
	}
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	stdout, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("expected config path in output: %q", stdout)
	}
	if _, _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}

	stdout, _, err = runCLI(t, target, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, "[dataset]") || !strings.Contains(stdout, "WLASL") {
		t.Fatalf("unexpected config show output: %q", stdout)
	}
}

func TestConfigValidateReportsSummary(t *testing.T) {
	configPath, _ := newTestConfig(t, "hello", "bye")

	stdout, _, err := runCLI(t, configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(stdout, "Configuration OK") {
		t.Fatalf("unexpected output: %q", stdout)
	}
	if !strings.Contains(stdout, "2 glosses") {
		t.Fatalf("expected vocabulary count in output: %q", stdout)
	}
}
