package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/ports"
)

// Workspace is a located dockyard workspace.
type Workspace struct {
	Root       string
	ConfigPath string // Root joined with the config file name
}

// Finder locates a workspace root by searching for dockyard.yaml upward.
// A puzzle file may be passed instead of a directory.
type Finder struct {
	ConfigFile string // defaults to ConfigFile
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot returns only the root of the workspace found by Locate.
func (f *Finder) FindRoot(startDir string) (string, error) {
	ws, err := f.Locate(startDir)
	if err != nil {
		return "", err
	}
	return ws.Root, nil
}

// Locate walks up from startDir to the nearest directory holding a regular
// dockyard.yaml file. A directory that happens to carry that name is not a
// workspace marker.
func (f *Finder) Locate(startDir string) (Workspace, error) {
	if startDir == "" {
		return Workspace{}, &domain.OpError{
			Op:   "workspacefinder.locate",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return Workspace{}, &domain.OpError{
			Op:   "workspacefinder.locate",
			Kind: domain.KindExecution,
			Path: startDir,
			Err:  err,
		}
	}

	// `dockyard run puzzles/day5.txt` style: start from the file's directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFile
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, name)
		if info, err := os.Stat(cfgPath); err == nil && info.Mode().IsRegular() {
			return Workspace{Root: cur, ConfigPath: cfgPath}, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return Workspace{}, &domain.OpError{
				Op:   "workspacefinder.locate",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
