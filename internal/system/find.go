package system

import (
	"lootvault/internal/component"
	"lootvault/internal/ecs"
)

// FindItem searches the holder's container for the first item resolving to
// kind. With activeOnly set, items lacking the Active (equipped) marker are
// skipped. Returns NilEntity when nothing matches; enumeration order decides
// between multiple matches, there is no secondary ranking.
func FindItem(w *ecs.World, holder, kind ecs.EntityID, activeOnly bool) ecs.EntityID {
	container := NormalizeContainer(w, holder)
	for _, item := range ListItems(w, container) {
		if activeOnly && !w.Has(item, component.CTagActive) {
			continue
		}
		if k, _ := ResolveKind(w, item); k == kind {
			return item
		}
	}
	return ecs.NilEntity
}
