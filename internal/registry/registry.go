// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions, allowing the CLI
// to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes a playable board configuration.
type Variant struct {
	// ID is a unique identifier (e.g., "2048", "2048_big").
	// Used for CLI arguments and saved games.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Size is the board dimension.
	Size int
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by size then ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Size != result[j].Size {
			return result[i].Size < result[j].Size
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
