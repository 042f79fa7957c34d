package domain

import "time"

// RunResult is the outcome of simulating one puzzle under one move mode.
type RunResult struct {
	PuzzleName string
	PuzzlePath string
	Mode       MoveMode

	StartedAt time.Time
	EndedAt   time.Time

	// Initial and Final hold every stack rendered bottom to top.
	Initial []string
	Final   []string

	Steps int
	Tops  string
}
