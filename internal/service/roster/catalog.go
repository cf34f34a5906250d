package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	rosterRepo "castindex/internal/domain/repositories/roster"
	rosterSvc "castindex/internal/domain/services/roster"
	"castindex/internal/kinds"
)

// catalogService implements the CatalogService interface
type catalogService struct {
	folderRepo rosterRepo.FolderRepository
	actorRepo  rosterRepo.ActorRepository
	kinds      *kinds.Registry
	logger     *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	folderRepo rosterRepo.FolderRepository,
	actorRepo rosterRepo.ActorRepository,
	kindRegistry *kinds.Registry,
	logger *slog.Logger,
) rosterSvc.CatalogService {
	return &catalogService{
		folderRepo: folderRepo,
		actorRepo:  actorRepo,
		kinds:      kindRegistry,
		logger:     logger,
	}
}

// FolderOptions builds the folder choice list for the configuration dialog:
// one option per folder labeled with its breadcrumb and direct/with-subfolder
// actor counts, duplicate breadcrumbs disambiguated with an id fragment, the
// synthetic "no restriction" option first and the rest sorted by label.
func (s *catalogService) FolderOptions(ctx context.Context, projectID, kindID string) ([]rosterSvc.FolderOption, error) {
	kind, err := s.kinds.Get(kindID)
	if err != nil {
		return nil, err
	}

	folders, err := s.folderRepo.GetAllByKind(ctx, projectID, kind.FolderKind)
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}

	actors, err := s.actorRepo.GetAllByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load actors: %w", err)
	}

	ix := NewFolderIndex(folders)

	// Direct containment counts per folder
	direct := make(map[string]int, len(folders))
	for _, actor := range actors {
		if actor.FolderID != nil {
			direct[*actor.FolderID]++
		}
	}

	// Breadcrumbs, counting duplicates for disambiguation
	crumbs := make(map[string]string, len(folders))
	labelUses := make(map[string]int, len(folders))
	for _, folder := range folders {
		crumb := ix.Path(folder.ID)
		crumbs[folder.ID] = crumb
		labelUses[crumb]++
	}

	options := make([]rosterSvc.FolderOption, 0, len(folders)+1)
	for _, folder := range folders {
		crumb := crumbs[folder.ID]
		if labelUses[crumb] > 1 {
			crumb = fmt.Sprintf("%s [%s]", crumb, idFragment(folder.ID))
		}

		withSubfolders := 0
		for folderID := range ix.DescendantsOf(folder.ID) {
			withSubfolders += direct[folderID]
		}

		folderID := folder.ID
		options = append(options, rosterSvc.FolderOption{
			FolderID:       &folderID,
			Label:          fmt.Sprintf("%s (%d/%d)", crumb, direct[folder.ID], withSubfolders),
			Direct:         direct[folder.ID],
			WithSubfolders: withSubfolders,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})

	all := rosterSvc.FolderOption{
		Label:          fmt.Sprintf("%s (%d)", kind.Label, len(actors)),
		Direct:         len(actors),
		WithSubfolders: len(actors),
	}

	s.logger.Debug("folder catalog built",
		"project_id", projectID,
		"kind", kindID,
		"folders", len(folders),
		"actors", len(actors),
	)

	return append([]rosterSvc.FolderOption{all}, options...), nil
}

// idFragment returns the short suffix used to tell identically labeled
// folders apart.
func idFragment(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
