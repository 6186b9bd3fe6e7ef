// Package content owns the default content registry, the editable-element
// schema, and the resolver that overlays stored customizations on the
// defaults.  Every public page reads its copy through ResolvePage or
// ResolveProduct; the admin write path funnels through SaveCustomization
// and SaveComponent so the cache never serves a stale overlay for long.
package content

// EntityType discriminates which table a customization row points at.
type EntityType string

const (
	EntityPage    EntityType = "page"
	EntityProduct EntityType = "product"
)

// Map is resolved content: component name → element id → value.
type Map map[string]map[string]string

// Clone deep-copies m so callers and the cache never share inner maps.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for comp, elems := range m {
		inner := make(map[string]string, len(elems))
		for id, val := range elems {
			inner[id] = val
		}
		out[comp] = inner
	}
	return out
}

// Get returns the value at [component][elementID], or "" when absent.
// Convenience for templates.
func (m Map) Get(component, elementID string) string {
	if elems, ok := m[component]; ok {
		return elems[elementID]
	}
	return ""
}
