package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"castindex/internal/domain"
	models "castindex/internal/domain/models/roster"
	rosterRepo "castindex/internal/domain/repositories/roster"
)

// FolderRepository is an in-memory FolderRepository, used by tests and the
// seed command's dry-run mode.
type FolderRepository struct {
	mu      sync.Mutex
	folders map[string]*models.Folder
}

// NewFolderRepository creates an empty in-memory folder repository
func NewFolderRepository() *FolderRepository {
	return &FolderRepository{
		folders: make(map[string]*models.Folder),
	}
}

// Create creates a new folder
func (r *FolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.findByNameAndParent(folder.ProjectID, folder.Kind, folder.Name, folder.ParentID); existing != nil {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("folder %q already exists at this level", folder.Name),
			ResourceType: "folder",
			ResourceID:   existing.ID,
		}
	}

	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}
	now := time.Now()
	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = now
	}
	folder.UpdatedAt = now

	stored := *folder
	r.folders[folder.ID] = &stored
	return nil
}

// GetByID retrieves a folder by ID
func (r *FolderRepository) GetByID(ctx context.Context, id, projectID string) (*models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.folders[id]
	if !ok || folder.ProjectID != projectID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	copied := *folder
	return &copied, nil
}

// CreateIfNotExists returns the folder with the exact name and parent if one
// exists, otherwise creates it
func (r *FolderRepository) CreateIfNotExists(ctx context.Context, projectID, kind string, parentID *string, name string) (*models.Folder, error) {
	r.mu.Lock()
	if existing := r.findByNameAndParent(projectID, kind, name, parentID); existing != nil {
		copied := *existing
		r.mu.Unlock()
		return &copied, nil
	}
	r.mu.Unlock()

	folder := &models.Folder{
		ProjectID: projectID,
		ParentID:  parentID,
		Name:      name,
		Kind:      kind,
	}
	if err := r.Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// GetAllByKind retrieves all folders of one kind in a project
func (r *FolderRepository) GetAllByKind(ctx context.Context, projectID, kind string) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var folders []models.Folder
	for _, folder := range r.folders {
		if folder.ProjectID == projectID && folder.Kind == kind {
			folders = append(folders, *folder)
		}
	}

	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Name != folders[j].Name {
			return folders[i].Name < folders[j].Name
		}
		return folders[i].ID < folders[j].ID
	})

	return folders, nil
}

// GetPath computes the display path for a folder via parent walk
func (r *FolderRepository) GetPath(ctx context.Context, folderID *string, projectID string) (string, error) {
	if folderID == nil {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var segments []string
	currentID := folderID
	for hops := 0; currentID != nil && hops <= len(r.folders); hops++ {
		folder, ok := r.folders[*currentID]
		if !ok || folder.ProjectID != projectID {
			return "", fmt.Errorf("folder %s: %w", *currentID, domain.ErrNotFound)
		}
		segments = append([]string{folder.Name}, segments...)
		currentID = folder.ParentID
	}

	return strings.Join(segments, " / "), nil
}

// findByNameAndParent must be called with the mutex held
func (r *FolderRepository) findByNameAndParent(projectID, kind, name string, parentID *string) *models.Folder {
	for _, folder := range r.folders {
		if folder.ProjectID != projectID || folder.Kind != kind || folder.Name != name {
			continue
		}
		if (folder.ParentID == nil) != (parentID == nil) {
			continue
		}
		if folder.ParentID == nil || *folder.ParentID == *parentID {
			return folder
		}
	}
	return nil
}

var _ rosterRepo.FolderRepository = (*FolderRepository)(nil)
