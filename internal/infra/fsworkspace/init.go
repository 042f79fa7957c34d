package fsworkspace

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/logger"
	"github.com/aalvaropc/dockyard/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

// Initializer scaffolds a workspace: dockyard.yaml, a sample puzzle and the
// directories the other commands write to.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init writes the workspace templates under spec.Root. Existing files are kept
// unless force is set. The directory layout follows domain.DefaultConfig,
// which is also what the bundled dockyard.yaml declares.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	if strings.TrimSpace(spec.Root) == "" {
		return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig}
	}
	root := filepath.Clean(spec.Root)
	paths := domain.DefaultConfig().Paths

	for _, d := range []string{paths.PuzzlesDir, paths.RunsDir, logger.Dir} {
		dir := filepath.Join(root, d)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return initErr(dir, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return initErr(filepath.Join(root, ".gitignore"), err)
	}

	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return initErr(dst, err)
		}
		return nil
	})
	var oe *domain.OpError
	if err != nil && !errors.As(err, &oe) {
		return initErr(root, err)
	}
	return err
}

func initErr(path string, err error) error {
	return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: path, Err: err}
}

func ensureGitignore(root string) error {
	const header = "# dockyard"
	entries := []string{
		filepath.ToSlash(domain.DefaultConfig().Paths.RunsDir) + "/",
		filepath.ToSlash(filepath.Dir(logger.Dir)) + "/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
