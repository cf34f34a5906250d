package main

import (
	"context"
	"fmt"

	models "castindex/internal/domain/models/roster"
	rosterRepo "castindex/internal/domain/repositories/roster"
	"castindex/internal/kinds"
)

type seedActor struct {
	name      string
	actorType string
	folder    string // seed folder name, empty for project root
}

// seedDemoData populates a project with a small folder tree and a cast of
// actors spanning several letters and types, including names the letter
// classifier cannot bucket.
func seedDemoData(ctx context.Context, folderRepo rosterRepo.FolderRepository, actorRepo rosterRepo.ActorRepository, projectID string) error {
	// A nested tree with a duplicated breadcrumb tail so the catalog's
	// disambiguation path is visible in demos.
	villains, err := folderRepo.CreateIfNotExists(ctx, projectID, kinds.DefaultKind, nil, "Villains")
	if err != nil {
		return fmt.Errorf("seed folder: %w", err)
	}
	bosses, err := folderRepo.CreateIfNotExists(ctx, projectID, kinds.DefaultKind, &villains.ID, "Bosses")
	if err != nil {
		return fmt.Errorf("seed folder: %w", err)
	}
	heroes, err := folderRepo.CreateIfNotExists(ctx, projectID, kinds.DefaultKind, nil, "Heroes")
	if err != nil {
		return fmt.Errorf("seed folder: %w", err)
	}

	folderIDs := map[string]*string{
		"":         nil,
		"Villains": &villains.ID,
		"Bosses":   &bosses.ID,
		"Heroes":   &heroes.ID,
	}

	cast := []seedActor{
		{name: "Aang", actorType: "hero", folder: "Heroes"},
		{name: "bob", actorType: "hero", folder: ""},
		{name: "Zuko", actorType: "villain", folder: "Villains"},
		{name: "Azula", actorType: "villain", folder: "Bosses"},
		{name: "100 Goblins", actorType: "npc", folder: ""},
		{name: "¡Élan!", actorType: "npc", folder: ""},
	}

	for _, entry := range cast {
		actor := &models.Actor{
			ProjectID: projectID,
			Name:      entry.name,
			Type:      entry.actorType,
			FolderID:  folderIDs[entry.folder],
		}
		if err := actorRepo.Create(ctx, actor); err != nil {
			return fmt.Errorf("seed actor %q: %w", entry.name, err)
		}
	}

	return nil
}
