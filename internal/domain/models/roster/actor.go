package roster

import (
	"time"
)

// Actor is a named, typed entity owned by the host document store.
// FolderID is nil for actors sitting at the project root.
type Actor struct {
	ID        string    `json:"id" db:"id"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Name      string    `json:"name" db:"name"`
	Type      string    `json:"type" db:"actor_type"` // categorical tag (hero, villain, npc, ...)
	FolderID  *string   `json:"folder_id" db:"folder_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
