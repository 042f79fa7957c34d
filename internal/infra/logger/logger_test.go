package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLogUnderWorkspace(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}
	want := filepath.Join(root, ".dockyard", "logs", "dockyard.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time to be set")
	}

	L().Debug("crane.step", "step", 1)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	for _, s := range []string{`"msg":"logger.initialized"`, `"msg":"crane.step"`, `"step":1`} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %s in log, got:\n%s", s, out)
		}
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden.event")
	_ = cleanup()

	b, err := os.ReadFile(filepath.Join(root, ".dockyard", "logs", "dockyard.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(b), "hidden.event") {
		t.Fatalf("debug event written at info level:\n%s", b)
	}
}

func TestSetup_TagsRecordsWithCommandAndVersion(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Command: "run", Version: "1.2.3"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Info("run.completed", "tops", "CMZ")
	_ = cleanup()

	b, err := os.ReadFile(filepath.Join(root, ".dockyard", "logs", "dockyard.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 records, got %d:\n%s", len(lines), b)
	}
	for _, line := range lines {
		if !strings.Contains(line, `"cmd":"run"`) || !strings.Contains(line, `"version":"1.2.3"`) {
			t.Errorf("expected cmd and version on every record, got %s", line)
		}
	}
}
