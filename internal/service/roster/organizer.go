package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"castindex/internal/domain"
	models "castindex/internal/domain/models/roster"
	rosterRepo "castindex/internal/domain/repositories/roster"
	"castindex/internal/domain/services"
	rosterSvc "castindex/internal/domain/services/roster"
	"castindex/internal/kinds"
)

// wildcardType is the single partition used when type grouping is disabled.
// Partition values never collide with it: when grouping is on, keys carry the
// actor's raw type tag instead.
const wildcardType = "*"

// untypedFolderName names the type folder for actors whose type tag is empty.
// An empty tag still forms its own partition rather than being dropped.
const untypedFolderName = "untyped"

// bucketKey identifies one destination letter folder.
type bucketKey struct {
	actorType string // wildcardType when grouping is disabled
	letter    string
}

// organizerService implements the OrganizerService interface
type organizerService struct {
	folderRepo rosterRepo.FolderRepository
	actorRepo  rosterRepo.ActorRepository
	kinds      *kinds.Registry
	notifier   services.Notifier
	logger     *slog.Logger
}

// NewOrganizerService creates a new organizer service
func NewOrganizerService(
	folderRepo rosterRepo.FolderRepository,
	actorRepo rosterRepo.ActorRepository,
	kindRegistry *kinds.Registry,
	notifier services.Notifier,
	logger *slog.Logger,
) rosterSvc.OrganizerService {
	return &organizerService{
		folderRepo: folderRepo,
		actorRepo:  actorRepo,
		kinds:      kindRegistry,
		notifier:   notifier,
		logger:     logger,
	}
}

// Organize runs one reconciliation: resolve the in-scope actors, ensure the
// letter folder tree exists (creating only what is missing) and move every
// misplaced actor into its letter folder in a single batch. The run is
// idempotent; a second run with the same configuration moves nothing and
// creates no folders.
func (s *organizerService) Organize(ctx context.Context, req *rosterSvc.OrganizeRequest) (*rosterSvc.OrganizeResult, error) {
	if err := validateOrganizeRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	kind, err := s.kinds.Get(req.Kind)
	if err != nil {
		return nil, err
	}

	folders, err := s.folderRepo.GetAllByKind(ctx, req.ProjectID, kind.FolderKind)
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}

	actors, err := s.actorRepo.GetAllByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("load actors: %w", err)
	}

	ix := NewFolderIndex(folders)

	inScope := make([]models.Actor, 0, len(actors))
	for i := range actors {
		if ix.InScope(&actors[i], req.RootFolderID, req.IncludeSubfolders) {
			inScope = append(inScope, actors[i])
		}
	}
	if len(inScope) == 0 {
		return s.finish(ctx, 0, "no actors in the selected scope")
	}

	letters := lettersFor(req, inScope)
	if len(letters) == 0 {
		return s.finish(ctx, 0, "no actor name yields a usable letter")
	}

	partitions := partitionsFor(req, inScope)

	plan, err := s.ensureFolders(ctx, req, kind, partitions, letters)
	if err != nil {
		return nil, err
	}

	var moves []rosterRepo.ActorMove
	for i := range inScope {
		actor := &inScope[i]
		letter, ok := LetterFor(actor.Name)
		if !ok {
			s.logger.Debug("actor has no letter bucket, skipping",
				"actor_id", actor.ID,
				"name", actor.Name,
			)
			continue
		}

		key := bucketKey{actorType: wildcardType, letter: letter}
		if req.GroupByType {
			key.actorType = actor.Type
		}

		targetID, ok := plan[key]
		if !ok {
			// The ensure pass covers every required key; this only fires if
			// the folder list changed underneath the run.
			s.logger.Warn("no target folder for bucket, skipping actor",
				"actor_id", actor.ID,
				"type", key.actorType,
				"letter", letter,
			)
			continue
		}

		if actor.FolderID != nil && *actor.FolderID == targetID {
			continue
		}

		moves = append(moves, rosterRepo.ActorMove{ActorID: actor.ID, FolderID: targetID})
	}

	if len(moves) == 0 {
		return s.finish(ctx, 0, "all actors are already in their letter folders")
	}

	if err := s.actorRepo.MoveToFolders(ctx, req.ProjectID, moves); err != nil {
		return nil, fmt.Errorf("move actors: %w", err)
	}

	mode := "flat"
	if req.GroupByType {
		mode = "grouped by type"
	}

	s.logger.Info("organize run complete",
		"project_id", req.ProjectID,
		"kind", req.Kind,
		"moved", len(moves),
		"letters", len(letters),
		"partitions", len(partitions),
		"group_by_type", req.GroupByType,
	)

	return s.finish(ctx, len(moves), fmt.Sprintf("moved %d actors into letter folders (%s)", len(moves), mode))
}

// finish reports the run outcome through the notification sink and returns
// the summary result.
func (s *organizerService) finish(ctx context.Context, moved int, message string) (*rosterSvc.OrganizeResult, error) {
	s.notifier.Notify(ctx, services.SeverityInfo, message)
	return &rosterSvc.OrganizeResult{Moved: moved, Message: message}, nil
}

// ensureFolders materializes the folder tree for the run and returns the
// bucket-to-folder plan. Type folders are ensured under the configured root
// before their letter children so every target id is resolvable at
// assignment time. Each ensure reuses a folder with the exact name and
// parent when one exists.
func (s *organizerService) ensureFolders(
	ctx context.Context,
	req *rosterSvc.OrganizeRequest,
	kind *kinds.Kind,
	partitions []string,
	letters []string,
) (map[bucketKey]string, error) {
	plan := make(map[bucketKey]string, len(partitions)*len(letters))

	for _, partition := range partitions {
		base := req.RootFolderID

		if req.GroupByType {
			name := partition
			if name == "" {
				name = untypedFolderName
			}
			typeFolder, err := s.folderRepo.CreateIfNotExists(ctx, req.ProjectID, kind.FolderKind, req.RootFolderID, name)
			if err != nil {
				return nil, fmt.Errorf("ensure type folder %q: %w", name, err)
			}
			base = &typeFolder.ID
		}

		for _, letter := range letters {
			letterFolder, err := s.folderRepo.CreateIfNotExists(ctx, req.ProjectID, kind.FolderKind, base, letter)
			if err != nil {
				return nil, fmt.Errorf("ensure letter folder %q: %w", letter, err)
			}
			plan[bucketKey{actorType: partition, letter: letter}] = letterFolder.ID
		}
	}

	return plan, nil
}

// lettersFor returns the letter set to materialize: all 26 letters when
// configured, otherwise the distinct letters actually observed in scope.
func lettersFor(req *rosterSvc.OrganizeRequest, inScope []models.Actor) []string {
	if req.CreateAllLetters {
		return AllLetters()
	}

	seen := make(map[string]bool)
	for i := range inScope {
		if letter, ok := LetterFor(inScope[i].Name); ok {
			seen[letter] = true
		}
	}

	letters := make([]string, 0, len(seen))
	for letter := range seen {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	return letters
}

// partitionsFor returns the type partitions for the run: the sorted distinct
// type tags in scope when grouping, otherwise the single wildcard partition.
func partitionsFor(req *rosterSvc.OrganizeRequest, inScope []models.Actor) []string {
	if !req.GroupByType {
		return []string{wildcardType}
	}

	seen := make(map[string]bool)
	for i := range inScope {
		seen[inScope[i].Type] = true
	}

	partitions := make([]string, 0, len(seen))
	for partition := range seen {
		partitions = append(partitions, partition)
	}
	sort.Strings(partitions)
	return partitions
}
