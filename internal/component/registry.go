// internal/component/registry.go
//
// A super-light registry: cmd/web constructs each component with its
// dependencies, calls Register, and then mounts every registered router
// under its prefix.  Components carry their own chi.Router so route shapes
// stay local to the code that handles them.
package component

import (
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Component is one mountable feature area (public site, admin API).
type Component interface {
	// Prefix is the mount point, "/" for the public site.
	Prefix() string
	// Routes builds the component's router.  Called once at startup.
	Routes() chi.Router
}

var (
	mu       sync.RWMutex
	registry []Component
)

// Register adds a constructed component to the mount list.
func Register(c Component) {
	mu.Lock()
	registry = append(registry, c)
	mu.Unlock()
}

// All returns registered components ordered by prefix length, longest
// first, so "/admin" mounts before the catch-all "/".
func All() []Component {
	mu.RLock()
	out := make([]Component, len(registry))
	copy(out, registry)
	mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Prefix()) > len(out[j].Prefix())
	})
	return out
}
