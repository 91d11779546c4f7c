// Package demo is an interactive terminal front end for the simulation
// core: two containers side by side, item transfer, equipping, and attack
// resolution with a running combat log.
package demo

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lootvault/internal/catalog"
	"lootvault/internal/component"
	"lootvault/internal/ecs"
	"lootvault/internal/factory"
	"lootvault/internal/system"
)

// maxLogLines is how many recent message lines the bottom panel keeps.
const maxLogLines = 6

// Session is one running demo: a world built from a catalog plus the UI
// cursor state.
type Session struct {
	screen tcell.Screen
	world  *ecs.World
	reg    *factory.Registry

	chest     ecs.EntityID // free-standing container panel
	player    ecs.EntityID // the defending owner
	playerInv ecs.EntityID // the owner's container, resolved up front

	panel  int // 0 = chest, 1 = player
	cursor int
	log    []string
}

// NewSession builds a world from cat and prepares a session on screen.
// The catalog must declare at least one container and one owner.
func NewSession(screen tcell.Screen, cat catalog.Catalog) (*Session, error) {
	w := ecs.NewWorld()
	reg := factory.NewRegistry(w)
	named, err := cat.Build(w, reg)
	if err != nil {
		return nil, err
	}
	if len(cat.Containers) == 0 || len(cat.Owners) == 0 {
		return nil, fmt.Errorf("catalog needs at least one container and one owner")
	}
	player := named[cat.Owners[0].Name]
	return &Session{
		screen:    screen,
		world:     w,
		reg:       reg,
		chest:     named[cat.Containers[0].Name],
		player:    player,
		playerInv: system.NormalizeContainer(w, player),
		log:       []string{"[t] take  [T] take all  [e] equip  [a] attack player  [q] quit"},
	}, nil
}

// Run drives the input loop until the player quits.
func (s *Session) Run() {
	for {
		s.clampCursor()
		s.draw()

		ev := s.screen.PollEvent()
		if ev == nil {
			// The screen was finalized (e.g. the SSH connection dropped).
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return
			}
			s.handleKey(ev)
		}
	}
}

func (s *Session) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyTab:
		s.panel = 1 - s.panel
		s.cursor = 0
		return
	case tcell.KeyUp:
		s.cursor--
		return
	case tcell.KeyDown:
		s.cursor++
		return
	}
	switch ev.Rune() {
	case 'k':
		s.cursor--
	case 'j':
		s.cursor++
	case '\t':
		s.panel = 1 - s.panel
		s.cursor = 0
	case 't':
		s.transferSelected()
	case 'T':
		s.transferAll()
	case 'e':
		s.toggleEquip()
	case 'a':
		s.attackPlayer()
	}
}

// focused returns the container the cursor panel points at and the other
// one.
func (s *Session) focused() (from, to ecs.EntityID) {
	if s.panel == 0 {
		return s.chest, s.playerInv
	}
	return s.playerInv, s.chest
}

// selected returns the item under the cursor, or NilEntity.
func (s *Session) selected() ecs.EntityID {
	from, _ := s.focused()
	items := system.ListItems(s.world, from)
	if s.cursor < 0 || s.cursor >= len(items) {
		return ecs.NilEntity
	}
	return items[s.cursor]
}

func (s *Session) transferSelected() {
	item := s.selected()
	if item == ecs.NilEntity {
		s.say("Nothing selected.")
		return
	}
	_, name := system.ResolveKind(s.world, item)
	_, to := s.focused()
	system.TransferItem(s.world, to, item)
	s.say(fmt.Sprintf("Moved %s.", name))
}

func (s *Session) transferAll() {
	from, to := s.focused()
	system.TransferAll(s.world, to, from)
	s.say("Moved everything across.")
}

func (s *Session) toggleEquip() {
	item := s.selected()
	if item == ecs.NilEntity {
		s.say("Nothing selected.")
		return
	}
	_, name := system.ResolveKind(s.world, item)
	if s.world.Has(item, component.CTagActive) {
		s.world.Remove(item, component.CTagActive)
		s.say(fmt.Sprintf("Unequipped %s.", name))
		return
	}
	s.world.Add(item, component.TagActive{})
	s.say(fmt.Sprintf("Equipped %s.", name))
}

func (s *Session) attackPlayer() {
	if !s.world.Alive(s.player) {
		s.say("The player is already destroyed.")
		return
	}
	weapon := s.selected()
	if weapon == ecs.NilEntity {
		s.say("Select a weapon first.")
		return
	}
	_, name := system.ResolveKind(s.world, weapon)
	out := system.ResolveAttack(s.world, s.player, weapon, s.reg.Armor)
	s.say(describeAttack(name, out))
	if out.DefenderDestroyed {
		s.say("The player is destroyed. Game over — [q] to quit.")
	}
}

// describeAttack renders one outcome record as a combat-log line.
func describeAttack(weapon string, out system.AttackOutcome) string {
	if out.NoEffect {
		return fmt.Sprintf("%s has no effect.", weapon)
	}
	line := fmt.Sprintf("%s hits", weapon)
	if out.ArmorConsulted {
		line += fmt.Sprintf(", armor soaks %d", out.ArmorAbsorbed)
		if out.ArmorDestroyed {
			line += " and shatters"
		}
	}
	if out.DamageDealt > 0 {
		line += fmt.Sprintf(", %d damage through", out.DamageDealt)
	} else {
		line += ", nothing gets through"
	}
	if out.WeaponDestroyed {
		line += fmt.Sprintf("; %s breaks", weapon)
	}
	return line + "."
}

func (s *Session) say(msg string) {
	s.log = append(s.log, msg)
	if len(s.log) > maxLogLines {
		s.log = s.log[len(s.log)-maxLogLines:]
	}
}

func (s *Session) clampCursor() {
	from, _ := s.focused()
	n := len(system.ListItems(s.world, from))
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
