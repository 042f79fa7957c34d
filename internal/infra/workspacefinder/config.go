package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/dockyard/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker and configuration file name.
const ConfigFile = "dockyard.yaml"

// LoadConfig loads dockyard.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadConfigFile(filepath.Join(root, ConfigFile))
}

// LoadConfigFile loads a workspace config from an explicit path, such as the
// one returned by Finder.Locate.
func LoadConfigFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Dockyard.Crane.Mode != "" {
		mode, err := domain.ParseMoveMode(y.Dockyard.Crane.Mode)
		if err != nil {
			return cfg, invalidField(path, "crane.mode", err)
		}
		cfg.Crane.Mode = mode
	}
	if y.Dockyard.Crane.Stacks != nil {
		n := *y.Dockyard.Crane.Stacks
		if n < 1 || n > domain.MaxStacks {
			return cfg, invalidField(path, "crane.stacks",
				fmt.Errorf("%d out of range 1..%d: %w", n, domain.MaxStacks, domain.ErrInvalidConfig))
		}
		cfg.Crane.Stacks = n
	}
	if y.Dockyard.Paths.PuzzlesDir != "" {
		cfg.Paths.PuzzlesDir = y.Dockyard.Paths.PuzzlesDir
	}
	if y.Dockyard.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Dockyard.Paths.RunsDir
	}
	if y.Dockyard.Reports.Index != nil {
		cfg.Reports.Index = *y.Dockyard.Reports.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	Dockyard struct {
		Crane struct {
			Mode   string `yaml:"mode"`
			Stacks *int   `yaml:"stacks"`
		} `yaml:"crane"`

		Paths struct {
			PuzzlesDir string `yaml:"puzzles_dir"`
			RunsDir    string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Reports struct {
			Index *bool `yaml:"index"`
		} `yaml:"reports"`
	} `yaml:"dockyard"`
}

func invalidField(path, field string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %w", field, err),
	}
}
