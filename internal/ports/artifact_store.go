package ports

import "github.com/aalvaropc/dockyard/internal/domain"

// ArtifactStore exports run reports.
type ArtifactStore interface {
	SaveRun(run domain.RunResult) (id string, err error)
}
