// Package factory builds worlds: base kinds, prototypes, containers and
// item instances. Prototypes carry default component values; instantiation
// copies those defaults onto the new entity and links it into the
// inheritance graph.
package factory

import (
	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/relation"
)

// Registry holds the well-known entities of a world: the base Item
// capability, the built-in kinds, and every named kind and prototype
// defined since.
type Registry struct {
	Item  ecs.EntityID // base capability all kinds derive from
	Sword ecs.EntityID
	Armor ecs.EntityID
	Coin  ecs.EntityID

	kinds      map[string]ecs.EntityID
	prototypes map[string]ecs.EntityID
}

// NewRegistry registers relation rules on w and creates the base Item
// capability plus the built-in Sword, Armor and Coin kinds.
func NewRegistry(w *ecs.World) *Registry {
	relation.Register(w)

	r := &Registry{
		kinds:      make(map[string]ecs.EntityID),
		prototypes: make(map[string]ecs.EntityID),
	}
	r.Item = w.CreateEntity()
	w.Add(r.Item, component.Name{Value: "Item"})

	r.Sword = r.DefineKind(w, "Sword")
	r.Armor = r.DefineKind(w, "Armor")
	r.Coin = r.DefineKind(w, "Coin")
	return r
}

// DefineKind creates a new item-category entity deriving from the base
// Item capability. Defining an already-known name returns the existing
// kind.
func (r *Registry) DefineKind(w *ecs.World, name string) ecs.EntityID {
	if id, ok := r.kinds[name]; ok {
		return id
	}
	id := w.CreateEntity()
	w.Add(id, component.Name{Value: name})
	w.Add(id, component.TagItemKind{})
	w.Relate(id, relation.InheritsFrom, r.Item)
	r.kinds[name] = id
	return id
}

// Kind returns the kind entity registered under name, or NilEntity.
func (r *Registry) Kind(name string) ecs.EntityID {
	return r.kinds[name]
}

// DefinePrototype creates a template entity deriving from kind. attack and
// health become default components copied onto every instance; zero means
// the component is absent.
func (r *Registry) DefinePrototype(w *ecs.World, name string, kind ecs.EntityID, attack, health int) ecs.EntityID {
	if id, ok := r.prototypes[name]; ok {
		return id
	}
	id := w.CreateEntity()
	w.Add(id, component.Name{Value: name})
	w.Add(id, component.TagPrototype{})
	w.Relate(id, relation.InheritsFrom, kind)
	if attack != 0 {
		w.Add(id, component.Attack{Damage: attack})
	}
	if health != 0 {
		w.Add(id, component.Health{Current: health, Max: health})
	}
	r.prototypes[name] = id
	return id
}

// Prototype returns the prototype entity registered under name, or
// NilEntity.
func (r *Registry) Prototype(name string) ecs.EntityID {
	return r.prototypes[name]
}

// Instantiate creates a concrete item from a prototype or kind: a fresh
// entity linked via inherits-from, with the prototype's default Attack and
// Health copied so each instance decays independently.
func Instantiate(w *ecs.World, proto ecs.EntityID) ecs.EntityID {
	id := w.CreateEntity()
	w.Relate(id, relation.InheritsFrom, proto)
	if c := w.Get(proto, component.CAttack); c != nil {
		w.Add(id, c.(component.Attack))
	}
	if c := w.Get(proto, component.CHealth); c != nil {
		w.Add(id, c.(component.Health))
	}
	return id
}

// InstantiateStack creates a stackable instance of proto holding amount
// units.
func InstantiateStack(w *ecs.World, proto ecs.EntityID, amount int) ecs.EntityID {
	id := Instantiate(w, proto)
	w.Add(id, component.Amount{Value: amount})
	return id
}

// NewContainer creates a named container entity.
func NewContainer(w *ecs.World, name string) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Name{Value: name})
	w.Add(id, component.TagContainer{})
	return id
}

// NewOwner creates a named agent with the given health, backed by a fresh
// inventory container.
func NewOwner(w *ecs.World, name string, health int) (owner, inventory ecs.EntityID) {
	owner = w.CreateEntity()
	w.Add(owner, component.Name{Value: name})
	if health != 0 {
		w.Add(owner, component.Health{Current: health, Max: health})
	}
	inventory = NewContainer(w, name+" inventory")
	w.Relate(owner, relation.OwnsInventory, inventory)
	return owner, inventory
}
