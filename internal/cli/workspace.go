package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/dockyard/internal/domain"
	"github.com/aalvaropc/dockyard/internal/infra/logger"
	"github.com/aalvaropc/dockyard/internal/infra/runstore"
	"github.com/aalvaropc/dockyard/internal/infra/textpuzzle"
	"github.com/aalvaropc/dockyard/internal/infra/workspacefinder"
	"github.com/aalvaropc/dockyard/internal/ports"
)

type workspaceCtx struct {
	root    string
	found   bool
	cfgPath string // empty outside a workspace
	cfg     domain.Config

	puzzles ports.PuzzleLoader
	store   ports.ArtifactStore
}

// loadWorkspace resolves the workspace and wires its adapters. Outside a
// workspace it falls back to the default config rooted at the current
// directory.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	cfgPath := ""
	if found {
		cfgPath = filepath.Join(root, workspacefinder.ConfigFile)
		cfg, err = workspacefinder.LoadConfigFile(cfgPath)
		if err != nil {
			return nil, err
		}
	}

	logger.L().Debug("workspace.loaded", "root", root, "found", found, "config", cfgPath, "mode", string(cfg.Crane.Mode), "stacks", cfg.Crane.Stacks)

	return &workspaceCtx{
		root:    root,
		found:   found,
		cfgPath: cfgPath,
		cfg:     cfg,
		puzzles: textpuzzle.NewLoader(textpuzzle.WithPuzzlesDir(cfg.Paths.PuzzlesDir)),
		store:   runstore.NewJSONStore(root, cfg),
	}, nil
}

// resolveWorkspaceRoot returns the root and whether a dockyard.yaml was found
// there. An explicit flag must point at a real directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return "", false, &domain.OpError{
				Op:   "cli.workspace",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		return abs, fileExists(filepath.Join(abs, workspacefinder.ConfigFile)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}

// resolvePuzzlePath maps a puzzle argument to a file. Path-like arguments and
// existing files are used as given; bare names are looked up in the
// workspace puzzles dir, with and without a .txt extension.
func resolvePuzzlePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", &domain.OpError{
			Op:   "cli.puzzle",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("puzzle is required: %w", domain.ErrInvalidConfig),
		}
	}

	if looksLikePath(in) || fileExists(in) {
		p, err := filepath.Abs(in)
		if err != nil {
			return "", fmt.Errorf("invalid puzzle path: %w", err)
		}
		return p, nil
	}

	puzzlesDir := filepath.Join(ws.root, ws.cfg.Paths.PuzzlesDir)
	for _, candidate := range []string{in, in + ".txt"} {
		p := filepath.Join(puzzlesDir, candidate)
		if fileExists(p) {
			return p, nil
		}
	}

	return "", &domain.OpError{
		Op:   "cli.puzzle",
		Kind: domain.KindNotFound,
		Path: filepath.Join(puzzlesDir, in),
		Err:  domain.ErrNotFound,
	}
}

// craneSettings applies flag overrides on top of the workspace config.
func craneSettings(ws *workspaceCtx, modeFlag string, stacksFlag int) (domain.MoveMode, int, error) {
	mode := ws.cfg.Crane.Mode
	if strings.TrimSpace(modeFlag) != "" {
		m, err := domain.ParseMoveMode(modeFlag)
		if err != nil {
			return "", 0, &domain.OpError{Op: "cli.flags", Kind: domain.KindInvalidConfig, Err: err}
		}
		mode = m
	}

	stacks := ws.cfg.Crane.Stacks
	if stacksFlag != 0 {
		if stacksFlag < 1 || stacksFlag > domain.MaxStacks {
			return "", 0, &domain.OpError{
				Op:   "cli.flags",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("--stacks must be between 1 and %d: %w", domain.MaxStacks, domain.ErrInvalidConfig),
			}
		}
		stacks = stacksFlag
	}
	return mode, stacks, nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
