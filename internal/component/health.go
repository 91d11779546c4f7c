package component

import "lootvault/internal/ecs"

const CHealth ecs.ComponentType = 2

// Health is remaining structural integrity: hit points on an agent,
// durability on a weapon or armor. Current is signed and may go negative
// transiently during damage resolution; the entity is destroyed once it
// reaches zero or below.
type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }
