package system

import (
	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/relation"
)

// maxInheritDepth bounds the prototype-chain walk. The domain guarantees a
// DAG, but a mis-built world must not hang resolution.
const maxInheritDepth = 32

// ResolveKind determines the effective kind of an item and its display
// name by walking its inherits-from ancestry. The kind is the nearest
// ancestor tagged as an item kind; the display name favors the most
// specific prototype passed on the way there. Returns NilEntity when the
// entity does not resolve to any kind — callers treat that as "not an
// item", not as an error.
func ResolveKind(w *ecs.World, item ecs.EntityID) (ecs.EntityID, string) {
	return resolveKind(w, item, 0)
}

// resolveKind walks inherits-from edges in insertion order; the first edge
// that reaches a kind wins. This is a deliberate tightening of the looser
// last-edge-wins behavior an unordered component scan would produce.
func resolveKind(w *ecs.World, item ecs.EntityID, depth int) (ecs.EntityID, string) {
	if depth > maxInheritDepth {
		return ecs.NilEntity, ""
	}
	for _, base := range w.Targets(item, relation.InheritsFrom) {
		if w.Has(base, component.CTagItemKind) {
			// Direct instance of a kind: the instance's own name, when it
			// has one, beats the generic kind name.
			if n := entityName(w, item); n != "" {
				return base, n
			}
			return base, entityName(w, base)
		}
		if kind, _ := resolveKind(w, base, depth+1); kind != ecs.NilEntity {
			return kind, entityName(w, base)
		}
	}
	return ecs.NilEntity, ""
}

// entityName returns the Name component value, or "".
func entityName(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CName); c != nil {
		return c.(component.Name).Value
	}
	return ""
}
