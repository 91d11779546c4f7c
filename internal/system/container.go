package system

import (
	"fmt"

	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/relation"
)

// NormalizeContainer resolves any holder reference to the concrete
// container entity owning its contents: a container is returned unchanged,
// an inventory-owner is followed through its owns-inventory edge. A ref
// that is neither is a caller contract violation and panics — silently
// recovering would corrupt subsequent transfers.
func NormalizeContainer(w *ecs.World, ref ecs.EntityID) ecs.EntityID {
	if w.Has(ref, component.CTagContainer) {
		return ref
	}
	if c := w.Target(ref, relation.OwnsInventory); c != ecs.NilEntity {
		return c
	}
	panic(fmt.Sprintf("entity %d is neither a container nor an inventory owner", ref))
}

// ListItems returns the items currently held by container, in containment
// edge insertion order. The slice is a snapshot: moving or destroying
// entries while ranging over it is safe and affects neither the remaining
// entries nor their order.
func ListItems(w *ecs.World, container ecs.EntityID) []ecs.EntityID {
	return w.Related(relation.ContainedBy, container)
}
