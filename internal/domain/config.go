package domain

// Config represents the dockyard configuration loaded from dockyard.yaml.
type Config struct {
	Crane   CraneConfig
	Paths   PathsConfig
	Reports ReportsConfig
}

type CraneConfig struct {
	Mode   MoveMode
	Stacks int
}

type PathsConfig struct {
	PuzzlesDir string
	RunsDir    string
}

type ReportsConfig struct {
	Index bool
}

// DefaultConfig provides sane defaults if dockyard.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Crane: CraneConfig{
			Mode:   ModeSingle,
			Stacks: MaxStacks,
		},
		Paths: PathsConfig{
			PuzzlesDir: "puzzles",
			RunsDir:    "runs",
		},
		Reports: ReportsConfig{Index: true},
	}
}
