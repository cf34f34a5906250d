package kinds

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"castindex/internal/domain"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the entity kinds the organizer may operate on.
type Registry struct {
	kinds map[string]*Kind
	order []string
	mu    sync.RWMutex
}

// NewRegistry creates a new kind registry from the embedded YAML file.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		kinds: make(map[string]*Kind),
	}

	if err := r.loadFile("config/kinds.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load kind registry: %w", err)
	}

	return r, nil
}

// loadFile loads one registry YAML file
func (r *Registry) loadFile(filename string) error {
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var file kindFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range file.Kinds {
		kind := file.Kinds[i]
		if kind.ID == "" {
			return fmt.Errorf("kind entry %d in %s has no id", i, filename)
		}
		if kind.FolderKind == "" {
			kind.FolderKind = kind.ID
		}
		r.kinds[kind.ID] = &kind
		r.order = append(r.order, kind.ID)
	}

	return nil
}

// Get returns the kind for an id
func (r *Registry) Get(id string) (*Kind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, ok := r.kinds[id]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", id, domain.ErrNotFound)
	}
	return kind, nil
}

// All returns every registered kind in file order
func (r *Registry) All() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Kind, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, *r.kinds[id])
	}
	return all
}
