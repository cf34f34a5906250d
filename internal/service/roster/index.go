package roster

import (
	"strings"

	models "castindex/internal/domain/models/roster"
)

// PathSeparator joins breadcrumb segments in display labels.
const PathSeparator = " / "

// FolderIndex is a transient index over one project's folder tree, built once
// per run from the host's flat folder list. It answers descendant-set, scope
// and breadcrumb queries without going back to the repository.
type FolderIndex struct {
	byID        map[string]*models.Folder
	children    map[string][]string
	descendants map[string]map[string]bool // folder id -> reachable ids, inclusive of itself
}

// NewFolderIndex builds the index from a flat folder list. Descendant sets
// are filled by a memoized depth-first walk; children are resolved before
// their parents complete, so every set is computed exactly once. A visiting
// guard keeps malformed parent links from looping (the host guarantees the
// tree is acyclic, this is only a safety stop).
func NewFolderIndex(folders []models.Folder) *FolderIndex {
	ix := &FolderIndex{
		byID:        make(map[string]*models.Folder, len(folders)),
		children:    make(map[string][]string),
		descendants: make(map[string]map[string]bool, len(folders)),
	}

	for i := range folders {
		folder := &folders[i]
		ix.byID[folder.ID] = folder
		if folder.ParentID != nil {
			ix.children[*folder.ParentID] = append(ix.children[*folder.ParentID], folder.ID)
		}
	}

	visiting := make(map[string]bool)
	for id := range ix.byID {
		ix.fill(id, visiting)
	}

	return ix
}

func (ix *FolderIndex) fill(id string, visiting map[string]bool) map[string]bool {
	if set, ok := ix.descendants[id]; ok {
		return set
	}

	set := map[string]bool{id: true}
	if visiting[id] {
		return set
	}
	visiting[id] = true

	for _, childID := range ix.children[id] {
		for folderID := range ix.fill(childID, visiting) {
			set[folderID] = true
		}
	}

	delete(visiting, id)
	ix.descendants[id] = set
	return set
}

// Get returns the indexed folder for an id.
func (ix *FolderIndex) Get(id string) (*models.Folder, bool) {
	folder, ok := ix.byID[id]
	return folder, ok
}

// DescendantsOf returns the inclusive descendant set for a folder id, or nil
// when the id is not part of the tree. Callers must not mutate the returned map.
func (ix *FolderIndex) DescendantsOf(id string) map[string]bool {
	return ix.descendants[id]
}

// Path computes the breadcrumb label for a folder: ancestor names from the
// root down to the folder itself, joined with the path separator.
func (ix *FolderIndex) Path(id string) string {
	var segments []string

	currentID := &id
	for hops := 0; currentID != nil && hops <= len(ix.byID); hops++ {
		folder, ok := ix.byID[*currentID]
		if !ok {
			break
		}
		segments = append([]string{folder.Name}, segments...)
		currentID = folder.ParentID
	}

	return strings.Join(segments, PathSeparator)
}

// InScope reports whether an actor falls inside the configured scope.
// A nil root means no restriction. An actor without a containing folder is
// only in scope when the root is nil. Otherwise the actor's folder must equal
// the root, or be one of its descendants when includeSubfolders is set.
func (ix *FolderIndex) InScope(actor *models.Actor, rootID *string, includeSubfolders bool) bool {
	if rootID == nil {
		return true
	}
	if actor.FolderID == nil {
		return false
	}
	if *actor.FolderID == *rootID {
		return true
	}
	if !includeSubfolders {
		return false
	}
	return ix.descendants[*rootID][*actor.FolderID]
}
