package component

import "lootvault/internal/ecs"

const CAttack ecs.ComponentType = 3

// Attack is the damage a weapon deals per use.
type Attack struct {
	Damage int
}

func (Attack) Type() ecs.ComponentType { return CAttack }
