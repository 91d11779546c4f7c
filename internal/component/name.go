package component

import "lootvault/internal/ecs"

const CName ecs.ComponentType = 1

// Name is the display name of an entity (item instance, prototype, kind,
// container or agent alike).
type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }
