package tui

import "github.com/aalvaropc/dockyard/internal/usecase"

type traceLoadedMsg struct {
	trace usecase.Trace
	err   error
}

// tickMsg advances autoplay. Ticks from an older play session carry a stale
// id and are dropped.
type tickMsg struct {
	id int
}
