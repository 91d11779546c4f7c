package ecs

// World is the central entity registry: a component store plus a
// relationship-edge store. It is not safe for concurrent use; callers
// treat each simulation step as an atomic critical section.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component

	exclusive map[RelationType]bool
	// targets[rel][src] and sources[rel][dst] are ordered edge lists;
	// they mirror each other and must be mutated together.
	targets map[RelationType]map[EntityID][]EntityID
	sources map[RelationType]map[EntityID][]EntityID
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
		exclusive:  make(map[RelationType]bool),
		targets:    make(map[RelationType]map[EntityID][]EntityID),
		sources:    make(map[RelationType]map[EntityID][]EntityID),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and removes all its components and
// relationship edges, in both directions. Destroying an entity that is
// already dead is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	for _, store := range w.components {
		delete(store, id)
	}
	for rel := range w.targets {
		for _, dst := range w.targets[rel][id] {
			w.sources[rel][dst] = removeID(w.sources[rel][dst], id)
		}
		delete(w.targets[rel], id)
	}
	for rel := range w.sources {
		for _, src := range w.sources[rel][id] {
			w.targets[rel][src] = removeID(w.targets[rel][src], id)
		}
		delete(w.sources[rel], id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches a component to an entity, replacing any existing component
// of the same type.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// RegisterExclusive marks a relation as single-target: Relate replaces any
// prior edge of that relation instead of accumulating edges.
func (w *World) RegisterExclusive(rel RelationType) {
	w.exclusive[rel] = true
}

// Relate attaches a (src, rel, dst) edge. For exclusive relations the prior
// target, if any, is detached in the same step, so the replacement is atomic
// from the caller's point of view. Duplicate edges are ignored.
func (w *World) Relate(src EntityID, rel RelationType, dst EntityID) {
	if w.exclusive[rel] {
		for _, old := range w.targets[rel][src] {
			if old == dst {
				return
			}
			w.sources[rel][old] = removeID(w.sources[rel][old], src)
		}
		delete(w.targets[rel], src)
	} else {
		for _, old := range w.targets[rel][src] {
			if old == dst {
				return
			}
		}
	}
	if w.targets[rel] == nil {
		w.targets[rel] = make(map[EntityID][]EntityID)
	}
	if w.sources[rel] == nil {
		w.sources[rel] = make(map[EntityID][]EntityID)
	}
	w.targets[rel][src] = append(w.targets[rel][src], dst)
	w.sources[rel][dst] = append(w.sources[rel][dst], src)
}

// Target returns the first target of (src, rel), or NilEntity. For
// exclusive relations this is the single target.
func (w *World) Target(src EntityID, rel RelationType) EntityID {
	if edges := w.targets[rel][src]; len(edges) > 0 {
		return edges[0]
	}
	return NilEntity
}

// Targets returns a snapshot of all targets of (src, rel) in edge
// insertion order. The returned slice is owned by the caller.
func (w *World) Targets(src EntityID, rel RelationType) []EntityID {
	edges := w.targets[rel][src]
	if len(edges) == 0 {
		return nil
	}
	out := make([]EntityID, len(edges))
	copy(out, edges)
	return out
}

// Related returns a snapshot of all sources whose rel edge points at dst,
// in edge insertion order. Because the slice is a copy, callers may move or
// destroy entities while ranging over it without corrupting traversal.
func (w *World) Related(rel RelationType, dst EntityID) []EntityID {
	edges := w.sources[rel][dst]
	if len(edges) == 0 {
		return nil
	}
	out := make([]EntityID, len(edges))
	copy(out, edges)
	return out
}

// removeID returns s with the first occurrence of id removed, preserving
// order.
func removeID(s []EntityID, id EntityID) []EntityID {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
