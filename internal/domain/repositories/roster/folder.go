package roster

import (
	"context"

	"castindex/internal/domain/models/roster"
)

// FolderRepository defines data access operations for folders.
// This is the host's folder directory and folder creation contract: the
// organizer only ever reads the tree and ensures folders exist, it never
// renames or deletes.
type FolderRepository interface {
	// Create creates a new folder
	Create(ctx context.Context, folder *roster.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id, projectID string) (*roster.Folder, error)

	// CreateIfNotExists returns the folder with the exact name and parent if
	// one exists, otherwise creates it. Repeated calls with the same
	// arguments never produce duplicates.
	CreateIfNotExists(ctx context.Context, projectID, kind string, parentID *string, name string) (*roster.Folder, error)

	// GetAllByKind retrieves all folders of one entity kind in a project (flat list)
	GetAllByKind(ctx context.Context, projectID, kind string) ([]roster.Folder, error)

	// GetPath computes the display path for a folder
	GetPath(ctx context.Context, folderID *string, projectID string) (string, error)
}
