package system

import (
	"lootvault/internal/component"
	"lootvault/internal/ecs"
)

// AttackOutcome reports everything one attack did, so a presentation layer
// can render a combat log without re-deriving world state.
type AttackOutcome struct {
	NoEffect bool // weapon lacks an Attack component; nothing happened

	ArmorConsulted bool // defender had active armor equipped
	ArmorAbsorbed  int  // damage soaked by the armor
	ArmorDestroyed bool

	WeaponDestroyed bool

	DamageDealt       int // damage that reached the defender's health
	DefenderDestroyed bool
}

// ResolveAttack resolves one attack of weapon against defender. armorKind
// selects which item kind counts as armor for the defender's equipment
// lookup. The pipeline order is a contract: armor absorption, then weapon
// durability, then defender health, each stage destroying its entity the
// moment health reaches zero or below.
func ResolveAttack(w *ecs.World, defender, weapon, armorKind ecs.EntityID) AttackOutcome {
	var out AttackOutcome

	atkComp := w.Get(weapon, component.CAttack)
	if atkComp == nil {
		// A dud weapon is a reported condition, not an error; no state
		// changes, not even durability.
		out.NoEffect = true
		return out
	}
	damage := atkComp.(component.Attack).Damage
	carried := damage

	// Stage 1: armor absorption.
	armor := FindItem(w, defender, armorKind, true)
	if armor != ecs.NilEntity {
		out.ArmorConsulted = true
		if hc := w.Get(armor, component.CHealth); hc != nil {
			hp := hc.(component.Health)
			hp.Current -= damage
			if hp.Current <= 0 {
				// Armor breaks; only the overshoot carries through.
				out.ArmorAbsorbed = damage + hp.Current
				out.ArmorDestroyed = true
				carried = -hp.Current
				w.DestroyEntity(armor)
			} else {
				out.ArmorAbsorbed = damage
				carried = 0
				w.Add(armor, hp)
			}
		}
		// Armor without Health absorbs nothing; the full hit carries.
	}

	// Stage 2: weapon durability, spent whether or not the hit landed on
	// flesh.
	if hc := w.Get(weapon, component.CHealth); hc != nil {
		hp := hc.(component.Health)
		hp.Current--
		if hp.Current <= 0 {
			out.WeaponDestroyed = true
			w.DestroyEntity(weapon)
		} else {
			w.Add(weapon, hp)
		}
	}

	// Stage 3: defender health.
	if carried != 0 {
		out.DamageDealt = carried
		if hc := w.Get(defender, component.CHealth); hc != nil {
			hp := hc.(component.Health)
			hp.Current -= carried
			if hp.Current <= 0 {
				out.DefenderDestroyed = true
				w.DestroyEntity(defender)
			} else {
				w.Add(defender, hp)
			}
		}
	}

	return out
}
