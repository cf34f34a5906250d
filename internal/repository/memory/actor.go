package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"castindex/internal/domain"
	models "castindex/internal/domain/models/roster"
	rosterRepo "castindex/internal/domain/repositories/roster"
)

// ActorRepository is an in-memory ActorRepository, used by tests and the
// seed command's dry-run mode.
type ActorRepository struct {
	mu     sync.Mutex
	actors map[string]*models.Actor
}

// NewActorRepository creates an empty in-memory actor repository
func NewActorRepository() *ActorRepository {
	return &ActorRepository{
		actors: make(map[string]*models.Actor),
	}
}

// Create creates a new actor
func (r *ActorRepository) Create(ctx context.Context, actor *models.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if actor.ID == "" {
		actor.ID = uuid.NewString()
	}
	now := time.Now()
	if actor.CreatedAt.IsZero() {
		actor.CreatedAt = now
	}
	actor.UpdatedAt = now

	stored := *actor
	r.actors[actor.ID] = &stored
	return nil
}

// GetAllByProject retrieves all actors in a project
func (r *ActorRepository) GetAllByProject(ctx context.Context, projectID string) ([]models.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var actors []models.Actor
	for _, actor := range r.actors {
		if actor.ProjectID == projectID {
			actors = append(actors, *actor)
		}
	}

	sort.Slice(actors, func(i, j int) bool {
		if actors[i].Name != actors[j].Name {
			return actors[i].Name < actors[j].Name
		}
		return actors[i].ID < actors[j].ID
	})

	return actors, nil
}

// MoveToFolders applies a batch of folder reassignments. The whole batch is
// validated before any actor is touched so a bad move leaves the store
// unchanged.
func (r *ActorRepository) MoveToFolders(ctx context.Context, projectID string, moves []rosterRepo.ActorMove) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, move := range moves {
		actor, ok := r.actors[move.ActorID]
		if !ok || actor.ProjectID != projectID {
			return fmt.Errorf("actor %s: %w", move.ActorID, domain.ErrNotFound)
		}
	}

	now := time.Now()
	for _, move := range moves {
		folderID := move.FolderID
		actor := r.actors[move.ActorID]
		actor.FolderID = &folderID
		actor.UpdatedAt = now
	}

	return nil
}

var _ rosterRepo.ActorRepository = (*ActorRepository)(nil)
