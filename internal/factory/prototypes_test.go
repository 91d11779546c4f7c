package factory

import (
	"testing"

	"lootvault/internal/component"
	"lootvault/internal/ecs"
)

func TestInstantiateCopiesDefaults(t *testing.T) {
	w := ecs.NewWorld()
	reg := NewRegistry(w)
	proto := reg.DefinePrototype(w, "IronSword", reg.Sword, 2, 5)

	a := Instantiate(w, proto)
	b := Instantiate(w, proto)

	// Each instance decays independently of its siblings and the template.
	hp := w.Get(a, component.CHealth).(component.Health)
	hp.Current = 1
	w.Add(a, hp)

	if got := w.Get(b, component.CHealth).(component.Health).Current; got != 5 {
		t.Fatalf("sibling instance health should stay 5, got %d", got)
	}
	if got := w.Get(proto, component.CHealth).(component.Health).Current; got != 5 {
		t.Fatalf("prototype default health should stay 5, got %d", got)
	}
	if got := w.Get(a, component.CAttack).(component.Attack).Damage; got != 2 {
		t.Fatalf("instance attack should be copied from the prototype, got %d", got)
	}
}

func TestDefineKindIsIdempotent(t *testing.T) {
	w := ecs.NewWorld()
	reg := NewRegistry(w)
	first := reg.DefineKind(w, "Potion")
	second := reg.DefineKind(w, "Potion")
	if first != second {
		t.Fatalf("redefining a kind should return the original entity: %v vs %v", first, second)
	}
}

func TestNewOwnerLinksInventory(t *testing.T) {
	w := ecs.NewWorld()
	NewRegistry(w)
	owner, inventory := NewOwner(w, "Player", 10)
	if owner == ecs.NilEntity || inventory == ecs.NilEntity {
		t.Fatal("owner and inventory should both exist")
	}
	if !w.Has(inventory, component.CTagContainer) {
		t.Fatal("inventory should carry the container tag")
	}
	if w.Has(owner, component.CTagContainer) {
		t.Fatal("the owner itself is not a container")
	}
}
