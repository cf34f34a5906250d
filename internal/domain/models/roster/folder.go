package roster

import (
	"time"
)

// Folder is a container node in the host's folder tree. Kind restricts which
// entity kind the folder may contain; folders used by the organizer are
// filtered to the kind being organized.
type Folder struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Name      string    `json:"name" db:"name"`
	Kind      string    `json:"kind" db:"kind"`
	Path      string    `json:"path,omitempty"` // Computed display path, not stored in DB
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
