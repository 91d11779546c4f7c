package system

import (
	"testing"

	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/factory"
	"lootvault/internal/relation"
)

// newTestWorld builds a world with the built-in kinds and the standard
// prototype chain used across the system tests.
func newTestWorld() (*ecs.World, *factory.Registry) {
	w := ecs.NewWorld()
	reg := factory.NewRegistry(w)
	reg.DefinePrototype(w, "IronSword", reg.Sword, 2, 5)
	reg.DefinePrototype(w, "WoodenArmor", reg.Armor, 0, 10)
	reg.DefinePrototype(w, "GoldCoin", reg.Coin, 0, 0)
	return w, reg
}

func TestResolveKindThroughPrototype(t *testing.T) {
	w, reg := newTestWorld()
	item := factory.Instantiate(w, reg.Prototype("IronSword"))

	kind, name := ResolveKind(w, item)
	if kind != reg.Sword {
		t.Fatalf("expected kind Sword (%v), got %v", reg.Sword, kind)
	}
	if name != "IronSword" {
		t.Fatalf("display name should favor the prototype, got %q", name)
	}
}

func TestResolveKindDirectInstance(t *testing.T) {
	w, reg := newTestWorld()
	item := factory.Instantiate(w, reg.Sword)

	kind, name := ResolveKind(w, item)
	if kind != reg.Sword {
		t.Fatalf("expected kind Sword, got %v", kind)
	}
	// No prototype in between and no own name: fall back to the kind name.
	if name != "Sword" {
		t.Fatalf("expected name %q, got %q", "Sword", name)
	}
}

func TestResolveKindDirectInstanceOwnName(t *testing.T) {
	w, reg := newTestWorld()
	item := factory.Instantiate(w, reg.Sword)
	w.Add(item, component.Name{Value: "Rustbiter"})

	_, name := ResolveKind(w, item)
	if name != "Rustbiter" {
		t.Fatalf("direct instance should keep its own name, got %q", name)
	}
}

func TestResolveKindDeepChain(t *testing.T) {
	w, reg := newTestWorld()
	// Sword ← IronSword ← MasterworkIronSword ← instance
	master := w.CreateEntity()
	w.Add(master, component.Name{Value: "MasterworkIronSword"})
	w.Add(master, component.TagPrototype{})
	w.Relate(master, relation.InheritsFrom, reg.Prototype("IronSword"))

	item := factory.Instantiate(w, master)
	kind, name := ResolveKind(w, item)
	if kind != reg.Sword {
		t.Fatalf("expected root kind Sword, got %v", kind)
	}
	if name != "MasterworkIronSword" {
		t.Fatalf("display name should be the most specific prototype, got %q", name)
	}
}

func TestResolveKindNonItem(t *testing.T) {
	w, _ := newTestWorld()
	stray := w.CreateEntity()

	kind, name := ResolveKind(w, stray)
	if kind != ecs.NilEntity || name != "" {
		t.Fatalf("non-item should resolve to no kind, got (%v, %q)", kind, name)
	}
}

func TestResolveKindSurvivesInheritanceCycle(t *testing.T) {
	w, _ := newTestWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.Relate(a, relation.InheritsFrom, b)
	w.Relate(b, relation.InheritsFrom, a)

	// A mis-built cyclic graph must terminate with no kind, not hang.
	kind, _ := ResolveKind(w, a)
	if kind != ecs.NilEntity {
		t.Fatalf("cyclic chain should resolve to no kind, got %v", kind)
	}
}

func TestResolveKindTotalOverCatalogChain(t *testing.T) {
	// Every item instantiated from a registered prototype resolves to the
	// root kind reachable through its inheritance edges.
	w, reg := newTestWorld()
	cases := map[string]ecs.EntityID{
		"IronSword":   reg.Sword,
		"WoodenArmor": reg.Armor,
		"GoldCoin":    reg.Coin,
	}
	for proto, wantKind := range cases {
		item := factory.Instantiate(w, reg.Prototype(proto))
		kind, _ := ResolveKind(w, item)
		if kind != wantKind {
			t.Errorf("%s: expected kind %v, got %v", proto, wantKind, kind)
		}
	}
}
