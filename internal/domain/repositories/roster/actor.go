package roster

import (
	"context"

	"castindex/internal/domain/models/roster"
)

// ActorMove reassigns one actor to a new containing folder.
type ActorMove struct {
	ActorID  string
	FolderID string
}

// ActorRepository defines data access operations for actors.
// The organizer reads the directory and submits folder reassignments as one
// batch; partial application on failure is the host's concern.
type ActorRepository interface {
	// Create creates a new actor
	Create(ctx context.Context, actor *roster.Actor) error

	// GetAllByProject retrieves all actors in a project (flat list)
	GetAllByProject(ctx context.Context, projectID string) ([]roster.Actor, error)

	// MoveToFolders applies a batch of folder reassignments
	MoveToFolders(ctx context.Context, projectID string, moves []ActorMove) error
}
