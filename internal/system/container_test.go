package system

import (
	"testing"

	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/factory"
	"lootvault/internal/relation"
)

func TestNormalizeContainerPassesContainersThrough(t *testing.T) {
	w, _ := newTestWorld()
	chest := factory.NewContainer(w, "Chest")
	if got := NormalizeContainer(w, chest); got != chest {
		t.Fatalf("container should normalize to itself, got %v", got)
	}
}

func TestNormalizeContainerFollowsOwner(t *testing.T) {
	w, _ := newTestWorld()
	player, inventory := factory.NewOwner(w, "Player", 10)
	if got := NormalizeContainer(w, player); got != inventory {
		t.Fatalf("owner should normalize to its inventory %v, got %v", inventory, got)
	}
}

func TestNormalizeContainerPanicsOnBadRef(t *testing.T) {
	w, _ := newTestWorld()
	stray := w.CreateEntity()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a ref that is neither container nor owner")
		}
	}()
	NormalizeContainer(w, stray)
}

func TestListItemsReturnsContents(t *testing.T) {
	w, reg := newTestWorld()
	chest := factory.NewContainer(w, "Chest")
	sword := factory.Instantiate(w, reg.Prototype("IronSword"))
	armor := factory.Instantiate(w, reg.Prototype("WoodenArmor"))
	w.Relate(sword, relation.ContainedBy, chest)
	w.Relate(armor, relation.ContainedBy, chest)

	items := ListItems(w, chest)
	if len(items) != 2 || items[0] != sword || items[1] != armor {
		t.Fatalf("expected [sword armor] in insertion order, got %v", items)
	}
}

func TestListItemsEmptyContainer(t *testing.T) {
	w, _ := newTestWorld()
	chest := factory.NewContainer(w, "Chest")
	if items := ListItems(w, chest); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
}

func TestFindItemByKind(t *testing.T) {
	w, reg := newTestWorld()
	chest := factory.NewContainer(w, "Chest")
	sword := factory.Instantiate(w, reg.Prototype("IronSword"))
	armor := factory.Instantiate(w, reg.Prototype("WoodenArmor"))
	w.Relate(sword, relation.ContainedBy, chest)
	w.Relate(armor, relation.ContainedBy, chest)

	if got := FindItem(w, chest, reg.Armor, false); got != armor {
		t.Fatalf("expected armor %v, got %v", armor, got)
	}
	if got := FindItem(w, chest, reg.Coin, false); got != ecs.NilEntity {
		t.Fatalf("expected no coin match, got %v", got)
	}
}

func TestFindItemActiveOnly(t *testing.T) {
	w, reg := newTestWorld()
	player, inventory := factory.NewOwner(w, "Player", 10)
	carried := factory.Instantiate(w, reg.Prototype("WoodenArmor"))
	worn := factory.Instantiate(w, reg.Prototype("WoodenArmor"))
	w.Relate(carried, relation.ContainedBy, inventory)
	w.Relate(worn, relation.ContainedBy, inventory)
	w.Add(worn, component.TagActive{})

	// Normalization through the owner plus the active filter: the carried
	// armor enumerates first but is skipped.
	if got := FindItem(w, player, reg.Armor, true); got != worn {
		t.Fatalf("expected the worn armor %v, got %v", worn, got)
	}
	if got := FindItem(w, player, reg.Armor, false); got != carried {
		t.Fatalf("without the filter the first match wins, got %v", got)
	}
}
