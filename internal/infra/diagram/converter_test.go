package diagram

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/dockyard/internal/domain"
)

const drawing = "    [D]    \n[N] [C]    \n[Z] [M] [P]\n 1   2   3 \n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestConverter_ReadsDrawingAndInstructions(t *testing.T) {
	p := writeFile(t, "day5.diagram", drawing+"\nmove 1 from 2 to 1\nmove 3 from 1 to 3\n")

	pz, err := NewConverter().ReadDiagram(p)
	if err != nil {
		t.Fatalf("ReadDiagram error: %v", err)
	}
	if pz.Name != "day5" || pz.Path != p {
		t.Fatalf("unexpected name/path %q %q", pz.Name, pz.Path)
	}
	if got := pz.Stacks.Strings(); got[0] != "ZN" || got[1] != "MCD" || got[2] != "P" {
		t.Fatalf("unexpected stacks %v", got)
	}
	if len(pz.Instructions) != 2 || pz.Instructions[1] != (domain.Instruction{Count: 3, Source: 0, Destination: 2}) {
		t.Fatalf("unexpected instructions %v", pz.Instructions)
	}
}

func TestConverter_DrawingOnly(t *testing.T) {
	pz, err := NewConverter().ReadDiagram(writeFile(t, "only.diagram", drawing))
	if err != nil {
		t.Fatalf("ReadDiagram error: %v", err)
	}
	if len(pz.Instructions) != 0 {
		t.Fatalf("expected no instructions, got %v", pz.Instructions)
	}
}

func TestConverter_Errors(t *testing.T) {
	c := NewConverter()

	_, err := c.ReadDiagram(filepath.Join(t.TempDir(), "missing.diagram"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	bad := writeFile(t, "bad.diagram", drawing+"\nmove one from 2 to 1\n")
	_, err = c.ReadDiagram(bad)
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected parse kind, got %v", err)
	}

	noHeader := writeFile(t, "nohdr.diagram", "[A] [B]\n[C] [D]\n")
	_, err = c.ReadDiagram(noHeader)
	var oe *domain.OpError
	if !domain.IsKind(err, domain.KindParse) || !errors.As(err, &oe) || oe.Path != noHeader {
		t.Fatalf("expected parse error carrying the path, got %v", err)
	}
}
