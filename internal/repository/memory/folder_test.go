package memory

import (
	"context"
	"errors"
	"testing"

	"castindex/internal/domain"
	models "castindex/internal/domain/models/roster"
	rosterRepo "castindex/internal/domain/repositories/roster"
)

const testProject = "c0ffee00-0000-4000-8000-000000000001"

func TestFolderCreateRejectsDuplicates(t *testing.T) {
	repo := NewFolderRepository()
	ctx := context.Background()

	first := &models.Folder{ProjectID: testProject, Name: "A", Kind: "actor"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	err := repo.Create(ctx, &models.Folder{ProjectID: testProject, Name: "A", Kind: "actor"})
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("duplicate Create() error = %v, want ConflictError", err)
	}
	if conflict.ResourceID != first.ID {
		t.Errorf("conflict.ResourceID = %q, want %q", conflict.ResourceID, first.ID)
	}
}

func TestFolderCreateIfNotExists(t *testing.T) {
	repo := NewFolderRepository()
	ctx := context.Background()

	first, err := repo.CreateIfNotExists(ctx, testProject, "actor", nil, "A")
	if err != nil {
		t.Fatalf("CreateIfNotExists() error: %v", err)
	}
	again, err := repo.CreateIfNotExists(ctx, testProject, "actor", nil, "A")
	if err != nil {
		t.Fatalf("repeated CreateIfNotExists() error: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("repeated ensure created a second folder: %q vs %q", again.ID, first.ID)
	}

	// Same name under a different parent is a distinct folder.
	nested, err := repo.CreateIfNotExists(ctx, testProject, "actor", &first.ID, "A")
	if err != nil {
		t.Fatalf("nested CreateIfNotExists() error: %v", err)
	}
	if nested.ID == first.ID {
		t.Errorf("nested folder reused the root folder id")
	}

	folders, err := repo.GetAllByKind(ctx, testProject, "actor")
	if err != nil {
		t.Fatalf("GetAllByKind() error: %v", err)
	}
	if len(folders) != 2 {
		t.Errorf("got %d folders, want 2", len(folders))
	}
}

func TestFolderGetPath(t *testing.T) {
	repo := NewFolderRepository()
	ctx := context.Background()

	root, err := repo.CreateIfNotExists(ctx, testProject, "actor", nil, "Villains")
	if err != nil {
		t.Fatalf("CreateIfNotExists() error: %v", err)
	}
	child, err := repo.CreateIfNotExists(ctx, testProject, "actor", &root.ID, "Bosses")
	if err != nil {
		t.Fatalf("CreateIfNotExists() error: %v", err)
	}

	path, err := repo.GetPath(ctx, &child.ID, testProject)
	if err != nil {
		t.Fatalf("GetPath() error: %v", err)
	}
	if path != "Villains / Bosses" {
		t.Errorf("GetPath() = %q, want %q", path, "Villains / Bosses")
	}

	path, err = repo.GetPath(ctx, nil, testProject)
	if err != nil || path != "" {
		t.Errorf("GetPath(nil) = %q, %v; want empty, nil", path, err)
	}
}

func TestActorMoveToFolders(t *testing.T) {
	actors := NewActorRepository()
	folders := NewFolderRepository()
	ctx := context.Background()

	folder, err := folders.CreateIfNotExists(ctx, testProject, "actor", nil, "A")
	if err != nil {
		t.Fatalf("CreateIfNotExists() error: %v", err)
	}

	actor := &models.Actor{ProjectID: testProject, Name: "Aang", Type: "hero"}
	if err := actors.Create(ctx, actor); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	moves := []rosterRepo.ActorMove{{ActorID: actor.ID, FolderID: folder.ID}}
	if err := actors.MoveToFolders(ctx, testProject, moves); err != nil {
		t.Fatalf("MoveToFolders() error: %v", err)
	}

	stored, err := actors.GetAllByProject(ctx, testProject)
	if err != nil {
		t.Fatalf("GetAllByProject() error: %v", err)
	}
	if len(stored) != 1 || stored[0].FolderID == nil || *stored[0].FolderID != folder.ID {
		t.Errorf("actor not moved: %+v", stored)
	}

	// A move naming an unknown actor fails without touching anything.
	bad := []rosterRepo.ActorMove{
		{ActorID: actor.ID, FolderID: folder.ID},
		{ActorID: "missing", FolderID: folder.ID},
	}
	if err := actors.MoveToFolders(ctx, testProject, bad); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MoveToFolders() error = %v, want ErrNotFound", err)
	}
}
