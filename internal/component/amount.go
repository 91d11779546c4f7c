package component

import "lootvault/internal/ecs"

const CAmount ecs.ComponentType = 4

// Amount is the stack size of a stackable item: how many logical units one
// entity slot represents. Always positive; merging two stacks of the same
// kind sums their Amounts and destroys the emptied source entity.
type Amount struct {
	Value int
}

func (Amount) Type() ecs.ComponentType { return CAmount }
