package roster

import (
	"context"
)

// OrganizerService reconciles a project's actors into alphabetical folders.
type OrganizerService interface {
	// Organize ensures the letter folder tree exists and moves every
	// in-scope actor into its letter folder. Running it twice with the same
	// configuration moves nothing the second time.
	Organize(ctx context.Context, req *OrganizeRequest) (*OrganizeResult, error)
}

// CatalogService produces the folder choice list consumed by the
// configuration dialog.
type CatalogService interface {
	// FolderOptions lists every folder of the kind as a selectable option,
	// preceded by a synthetic "all actors" option.
	FolderOptions(ctx context.Context, projectID, kind string) ([]FolderOption, error)
}

// OrganizeRequest is the validated configuration record collected by the
// external dialog.
type OrganizeRequest struct {
	ProjectID         string  `json:"-"`
	Kind              string  `json:"kind"`
	CreateAllLetters  bool    `json:"create_all_letters"`
	GroupByType       bool    `json:"group_by_type"`
	RootFolderID      *string `json:"root_folder_id"`      // nil = no restriction
	IncludeSubfolders bool    `json:"include_subfolders"`
}

// OrganizeResult summarizes one reconciliation run.
type OrganizeResult struct {
	Moved   int    `json:"moved"`
	Message string `json:"message"`
}

// FolderOption is one entry of the folder choice list. FolderID is nil for
// the synthetic "all actors" option.
type FolderOption struct {
	FolderID       *string `json:"folder_id"`
	Label          string  `json:"label"`
	Direct         int     `json:"direct"`
	WithSubfolders int     `json:"with_subfolders"`
}
