package roster

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"castindex/internal/domain"
	models "castindex/internal/domain/models/roster"
	rosterSvc "castindex/internal/domain/services/roster"
	"castindex/internal/kinds"
	"castindex/internal/repository/memory"
)

func newCatalogFixture(t *testing.T) (*memory.FolderRepository, *memory.ActorRepository, rosterSvc.CatalogService) {
	t.Helper()

	registry, err := kinds.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	folders := memory.NewFolderRepository()
	actors := memory.NewActorRepository()

	return folders, actors, NewCatalogService(folders, actors, registry, logger)
}

func TestFolderOptions(t *testing.T) {
	folders, actors, catalog := newCatalogFixture(t)
	ctx := context.Background()

	villains, err := folders.CreateIfNotExists(ctx, testProject, "actor", nil, "Villains")
	if err != nil {
		t.Fatalf("CreateIfNotExists() error: %v", err)
	}
	bosses, err := folders.CreateIfNotExists(ctx, testProject, "actor", &villains.ID, "Bosses")
	if err != nil {
		t.Fatalf("CreateIfNotExists() error: %v", err)
	}
	heroes, err := folders.CreateIfNotExists(ctx, testProject, "actor", nil, "Heroes")
	if err != nil {
		t.Fatalf("CreateIfNotExists() error: %v", err)
	}

	cast := []struct {
		name   string
		folder *string
	}{
		{name: "Zuko", folder: &villains.ID},
		{name: "Ozai", folder: &villains.ID},
		{name: "Azula", folder: &bosses.ID},
		{name: "Aang", folder: &heroes.ID},
		{name: "bob", folder: nil},
	}
	for _, entry := range cast {
		actor := &models.Actor{ProjectID: testProject, Name: entry.name, Type: "any", FolderID: entry.folder}
		if err := actors.Create(ctx, actor); err != nil {
			t.Fatalf("Create(%q) error: %v", entry.name, err)
		}
	}

	options, err := catalog.FolderOptions(ctx, testProject, kinds.DefaultKind)
	if err != nil {
		t.Fatalf("FolderOptions() error: %v", err)
	}
	if len(options) != 4 {
		t.Fatalf("got %d options, want 4 (synthetic + 3 folders)", len(options))
	}

	// The synthetic option comes first, counts every actor and carries no
	// folder id.
	all := options[0]
	if all.FolderID != nil {
		t.Errorf("synthetic option has folder id %q", *all.FolderID)
	}
	if all.Label != "All actors (5)" {
		t.Errorf("synthetic label = %q, want %q", all.Label, "All actors (5)")
	}
	if all.Direct != 5 || all.WithSubfolders != 5 {
		t.Errorf("synthetic counts = %d/%d, want 5/5", all.Direct, all.WithSubfolders)
	}

	wantLabels := []string{
		"Heroes (1/1)",
		"Villains (2/3)",
		"Villains / Bosses (1/1)",
	}
	for i, want := range wantLabels {
		got := options[i+1]
		if got.Label != want {
			t.Errorf("options[%d].Label = %q, want %q", i+1, got.Label, want)
		}
		if got.FolderID == nil {
			t.Errorf("options[%d] has no folder id", i+1)
		}
	}

	if options[2].Direct != 2 || options[2].WithSubfolders != 3 {
		t.Errorf("Villains counts = %d/%d, want 2/3", options[2].Direct, options[2].WithSubfolders)
	}
}

func TestFolderOptionsUnknownKind(t *testing.T) {
	_, _, catalog := newCatalogFixture(t)

	_, err := catalog.FolderOptions(context.Background(), testProject, "spaceship")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

// fixedFolderRepo serves a canned folder list. The host store permits
// same-named folders at the project root (its uniqueness index does not cover
// a missing parent), so the catalog has to disambiguate labels the
// repositories themselves would refuse to create.
type fixedFolderRepo struct {
	folders []models.Folder
}

func (r *fixedFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	return errors.New("not supported")
}

func (r *fixedFolderRepo) GetByID(ctx context.Context, id, projectID string) (*models.Folder, error) {
	return nil, domain.ErrNotFound
}

func (r *fixedFolderRepo) CreateIfNotExists(ctx context.Context, projectID, kind string, parentID *string, name string) (*models.Folder, error) {
	return nil, errors.New("not supported")
}

func (r *fixedFolderRepo) GetAllByKind(ctx context.Context, projectID, kind string) ([]models.Folder, error) {
	return r.folders, nil
}

func (r *fixedFolderRepo) GetPath(ctx context.Context, folderID *string, projectID string) (string, error) {
	return "", nil
}

func TestFolderOptionsDisambiguatesDuplicateLabels(t *testing.T) {
	registry, err := kinds.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	folderRepo := &fixedFolderRepo{
		folders: []models.Folder{
			{ID: "folder-aaaa1111", ProjectID: testProject, Name: "Archive", Kind: "actor"},
			{ID: "folder-bbbb2222", ProjectID: testProject, Name: "Archive", Kind: "actor"},
		},
	}
	catalog := NewCatalogService(folderRepo, memory.NewActorRepository(), registry, logger)

	options, err := catalog.FolderOptions(context.Background(), testProject, kinds.DefaultKind)
	if err != nil {
		t.Fatalf("FolderOptions() error: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("got %d options, want 3", len(options))
	}

	if options[1].Label != "Archive [1111] (0/0)" {
		t.Errorf("options[1].Label = %q, want %q", options[1].Label, "Archive [1111] (0/0)")
	}
	if options[2].Label != "Archive [2222] (0/0)" {
		t.Errorf("options[2].Label = %q, want %q", options[2].Label, "Archive [2222] (0/0)")
	}
}
