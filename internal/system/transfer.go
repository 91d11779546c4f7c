package system

import (
	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/relation"
)

// TransferItem moves item into the holder's container. A stackable item
// (one carrying Amount) merges into an existing stack of the same kind at
// the destination: the destination stack absorbs the amount and keeps its
// identity, the source entity is destroyed. Everything else is a plain
// re-containment: the contained-by edge is re-pointed, replacing the old
// container atomically.
func TransferItem(w *ecs.World, dest, item ecs.EntityID) {
	transferOne(w, NormalizeContainer(w, dest), item)
}

// TransferAll moves every item from the src holder into the dest holder,
// merging stacks along the way. Safe while iterating: ListItems snapshots
// membership, so each transferOne removing the visited item from src does
// not disturb the remaining entries.
func TransferAll(w *ecs.World, dest, src ecs.EntityID) {
	d := NormalizeContainer(w, dest)
	s := NormalizeContainer(w, src)
	for _, item := range ListItems(w, s) {
		transferOne(w, d, item)
	}
}

// transferOne expects dest to already be a concrete container.
func transferOne(w *ecs.World, dest, item ecs.EntityID) {
	if c := w.Get(item, component.CAmount); c != nil {
		amount := c.(component.Amount)
		if kind, _ := ResolveKind(w, item); kind != ecs.NilEntity {
			target := FindItem(w, dest, kind, false)
			if target != ecs.NilEntity && target != item {
				if tc := w.Get(target, component.CAmount); tc != nil {
					stack := tc.(component.Amount)
					stack.Value += amount.Value
					w.Add(target, stack)
					w.DestroyEntity(item)
					return
				}
			}
		}
	}
	w.Relate(item, relation.ContainedBy, dest)
}
