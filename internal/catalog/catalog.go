// Package catalog loads scenario content — kinds, prototypes and starting
// containers — from YAML and populates a world with it.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/factory"
	"lootvault/internal/relation"
)

// Catalog is the YAML scenario shape.
type Catalog struct {
	Kinds      []string    `yaml:"kinds"`
	Prototypes []Prototype `yaml:"prototypes"`
	Containers []Container `yaml:"containers"`
	Owners     []Owner     `yaml:"owners"`
}

// Prototype declares a template items are instantiated from. Attack and
// Health of zero mean the component is absent.
type Prototype struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Attack    int    `yaml:"attack"`
	Health    int    `yaml:"health"`
	Stackable bool   `yaml:"stackable"`
}

// Container declares a free-standing container and its starting contents.
type Container struct {
	Name     string  `yaml:"name"`
	Contents []Entry `yaml:"contents"`
}

// Owner declares an agent with an inventory container.
type Owner struct {
	Name     string  `yaml:"name"`
	Health   int     `yaml:"health"`
	Contents []Entry `yaml:"contents"`
	Equipped []Entry `yaml:"equipped"`
}

// Entry is one starting item: an instance of a prototype, optionally a
// stack of the given amount.
type Entry struct {
	Prototype string `yaml:"prototype"`
	Amount    int    `yaml:"amount"`
}

// Load reads and parses a catalog file.
func Load(path string) (Catalog, error) {
	var c Catalog
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in scenario: a chest with a sword, armor and a
// coin stack, and a player carrying a smaller coin stack.
func Default() Catalog {
	return Catalog{
		Kinds: []string{"Sword", "Armor", "Coin"},
		Prototypes: []Prototype{
			{Name: "IronSword", Kind: "Sword", Attack: 2, Health: 5},
			{Name: "WoodenArmor", Kind: "Armor", Health: 10},
			{Name: "GoldCoin", Kind: "Coin", Stackable: true},
		},
		Containers: []Container{
			{Name: "Chest", Contents: []Entry{
				{Prototype: "IronSword"},
				{Prototype: "WoodenArmor"},
				{Prototype: "GoldCoin", Amount: 30},
			}},
		},
		Owners: []Owner{
			{Name: "Player", Health: 10, Contents: []Entry{
				{Prototype: "GoldCoin", Amount: 20},
			}},
		},
	}
}

// Build populates w from the catalog and returns the named containers and
// owners. Unknown kind or prototype references are errors.
func (c Catalog) Build(w *ecs.World, reg *factory.Registry) (map[string]ecs.EntityID, error) {
	for _, name := range c.Kinds {
		reg.DefineKind(w, name)
	}
	for _, p := range c.Prototypes {
		kind := reg.Kind(p.Kind)
		if kind == ecs.NilEntity {
			return nil, fmt.Errorf("prototype %q: unknown kind %q", p.Name, p.Kind)
		}
		reg.DefinePrototype(w, p.Name, kind, p.Attack, p.Health)
	}

	named := make(map[string]ecs.EntityID)
	for _, def := range c.Containers {
		container := factory.NewContainer(w, def.Name)
		named[def.Name] = container
		if err := c.fill(w, reg, container, def.Contents, false); err != nil {
			return nil, fmt.Errorf("container %q: %w", def.Name, err)
		}
	}
	for _, def := range c.Owners {
		owner, inventory := factory.NewOwner(w, def.Name, def.Health)
		named[def.Name] = owner
		if err := c.fill(w, reg, inventory, def.Contents, false); err != nil {
			return nil, fmt.Errorf("owner %q: %w", def.Name, err)
		}
		if err := c.fill(w, reg, inventory, def.Equipped, true); err != nil {
			return nil, fmt.Errorf("owner %q: %w", def.Name, err)
		}
	}
	return named, nil
}

// fill instantiates entries into container, marking them active when
// equipped is set.
func (c Catalog) fill(w *ecs.World, reg *factory.Registry, container ecs.EntityID, entries []Entry, equipped bool) error {
	for _, e := range entries {
		proto := reg.Prototype(e.Prototype)
		if proto == ecs.NilEntity {
			return fmt.Errorf("unknown prototype %q", e.Prototype)
		}
		var item ecs.EntityID
		if e.Amount > 0 || c.stackable(e.Prototype) {
			amount := e.Amount
			if amount <= 0 {
				amount = 1
			}
			item = factory.InstantiateStack(w, proto, amount)
		} else {
			item = factory.Instantiate(w, proto)
		}
		if equipped {
			w.Add(item, component.TagActive{})
		}
		w.Relate(item, relation.ContainedBy, container)
	}
	return nil
}

// stackable reports whether the named prototype was declared stackable.
func (c Catalog) stackable(name string) bool {
	for _, p := range c.Prototypes {
		if p.Name == name {
			return p.Stackable
		}
	}
	return false
}
