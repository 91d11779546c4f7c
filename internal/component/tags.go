package component

import "lootvault/internal/ecs"

const (
	CTagActive    ecs.ComponentType = 5
	CTagContainer ecs.ComponentType = 6
	CTagItemKind  ecs.ComponentType = 7
	CTagPrototype ecs.ComponentType = 8
)

// TagActive marks an item as currently equipped/worn. Only active items are
// eligible for equipment-scoped lookups such as armor defense.
type TagActive struct{}

func (TagActive) Type() ecs.ComponentType { return CTagActive }

// TagContainer marks an entity that owns items via the contained-by
// relation.
type TagContainer struct{}

func (TagContainer) Type() ecs.ComponentType { return CTagContainer }

// TagItemKind marks a canonical item-category entity (Sword, Armor, Coin).
// Kind resolution terminates at the nearest tagged ancestor.
type TagItemKind struct{}

func (TagItemKind) Type() ecs.ComponentType { return CTagItemKind }

// TagPrototype marks a template entity instances inherit from. Prototypes
// carry default component values and are never placed in containers.
type TagPrototype struct{}

func (TagPrototype) Type() ecs.ComponentType { return CTagPrototype }
