package fsworkspace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/textpuzzle"
	"github.com/aalvaropc/dockyard/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "dockyard.yaml"))
	assertFileExists(t, filepath.Join(tmp, "puzzles", "sample.txt"))
	assertFileExists(t, filepath.Join(tmp, "puzzles", "sample.diagram"))
	assertFileExists(t, filepath.Join(tmp, "runs"))
	assertFileExists(t, filepath.Join(tmp, ".dockyard", "logs"))
}

func TestInitializer_Init_TemplatesAreUsable(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	p, err := textpuzzle.NewLoader().LoadPuzzle(filepath.Join(tmp, "puzzles", "sample.txt"), cfg.Crane.Stacks)
	if err != nil {
		t.Fatalf("sample puzzle does not load: %v", err)
	}
	if len(p.Instructions) != 4 {
		t.Fatalf("expected 4 instructions, got %d", len(p.Instructions))
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "dockyard.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing dockyard.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read dockyard.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected dockyard.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read dockyard.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "dockyard:") {
		t.Fatalf("expected dockyard.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}

func TestInitializer_Init_ReportsFailingPath(t *testing.T) {
	tmp := t.TempDir()
	// A file where the workspace directory should be.
	root := filepath.Join(tmp, "ws")
	if err := os.WriteFile(root, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false)
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Path != filepath.Join(root, domain.DefaultConfig().Paths.PuzzlesDir) {
		t.Fatalf("expected the puzzles dir as failing path, got %v", err)
	}
}

func TestInitializer_Init_RejectsEmptyRoot(t *testing.T) {
	err := NewInitializer().Init(domain.WorkspaceSpec{Root: "  "}, false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
