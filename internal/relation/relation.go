// Package relation defines the relationship vocabulary of the simulation:
// prototype inheritance, item containment and inventory ownership.
package relation

import "lootvault/internal/ecs"

const (
	// InheritsFrom links an instance or prototype to the entity it derives
	// defaults and kind from. The inheritance graph is a DAG in practice;
	// resolution still guards against accidental cycles.
	InheritsFrom ecs.RelationType = 1

	// ContainedBy links an item to the single container holding it.
	// Exclusive: relating an item to a new container replaces the old edge.
	ContainedBy ecs.RelationType = 2

	// OwnsInventory links an agent to the container that backs its
	// inventory. Exclusive: one inventory per agent.
	OwnsInventory ecs.RelationType = 3
)

// Register configures relation storage rules on a world. Call once right
// after ecs.NewWorld.
func Register(w *ecs.World) {
	w.RegisterExclusive(ContainedBy)
	w.RegisterExclusive(OwnsInventory)
}
