package ports

import "github.com/aalvaropc/dockyard/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
