package game

import (
	"encoding/binary"
	"hash/fnv"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// StateHash is a 64-bit fingerprint of a combat state.
type StateHash uint64

// IntentKind classifies a monster's declared move.
type IntentKind int

const (
	IntentAttack IntentKind = iota
	IntentDefend
	IntentBuff
	IntentUnknown
)

// Intent is a monster move: what it will do when the turn passes to it.
type Intent struct {
	Kind   IntentKind
	Damage int // per hit, before modifiers
	Hits   int
	Block  int
	Buff   int // strength gained
}

// Actor is a combat participant with health, block and statuses.
type Actor struct {
	Name     string
	HP       int
	MaxHP    int
	Block    int
	Statuses map[Status]int
}

// Alive reports whether the actor can still act and be targeted.
func (a *Actor) Alive() bool {
	return a.HP > 0
}

// Stacks returns the stack count for a status, 0 if absent.
func (a *Actor) Stacks(s Status) int {
	return a.Statuses[s]
}

func (a *Actor) addStatus(s Status, stacks int) {
	if stacks == 0 {
		return
	}
	if a.Statuses == nil {
		a.Statuses = map[Status]int{}
	}
	a.Statuses[s] += stacks
	if a.Statuses[s] <= 0 {
		delete(a.Statuses, s)
	}
}

func (a *Actor) copyActor() Actor {
	out := *a
	if a.Statuses != nil {
		out.Statuses = maps.Clone(a.Statuses)
	}
	return out
}

// Monster is an enemy actor with a declared intent and a known move set.
type Monster struct {
	Actor
	Intent Intent
	// Moves is the monster's known move pool, used by the expected-value
	// and worst-case enemy response models. May be empty when only the
	// declared intent is known.
	Moves []Intent
}

func (m *Monster) copyMonster() Monster {
	out := *m
	out.Actor = m.Actor.copyActor()
	out.Moves = slices.Clone(m.Moves)
	return out
}

// Player is the player actor with energy, card zones and potions.
type Player struct {
	Actor
	Energy    int
	MaxEnergy int
	Draw      []Card
	Hand      []Card
	Discard   []Card
	Exhaust   []Card
	Potions   []Potion
}

func (p *Player) copyPlayer() Player {
	out := *p
	out.Actor = p.Actor.copyActor()
	out.Draw = slices.Clone(p.Draw)
	out.Hand = slices.Clone(p.Hand)
	out.Discard = slices.Clone(p.Discard)
	out.Exhaust = slices.Clone(p.Exhaust)
	out.Potions = slices.Clone(p.Potions)
	return out
}

// CardCount returns the total number of cards across all four zones.
func (p *Player) CardCount() int {
	return len(p.Draw) + len(p.Hand) + len(p.Discard) + len(p.Exhaust)
}

// CombatState is a snapshot of one battle. It is immutable by convention:
// transitions never modify a state in place, they return a copy.
type CombatState struct {
	Player   Player
	Monsters []Monster
	Turn     int
}

// Copy returns a deep copy sharing nothing mutable with the receiver.
func (cs *CombatState) Copy() *CombatState {
	monsters := make([]Monster, len(cs.Monsters))
	for i := range cs.Monsters {
		monsters[i] = cs.Monsters[i].copyMonster()
	}
	return &CombatState{
		Player:   cs.Player.copyPlayer(),
		Monsters: monsters,
		Turn:     cs.Turn,
	}
}

// Over reports whether the battle has ended (player dead or all monsters dead).
func (cs *CombatState) Over() bool {
	if !cs.Player.Alive() {
		return true
	}
	for i := range cs.Monsters {
		if cs.Monsters[i].Alive() {
			return false
		}
	}
	return true
}

// LivingMonsters returns the indices of monsters still alive, ascending.
func (cs *CombatState) LivingMonsters() []int {
	var out []int
	for i := range cs.Monsters {
		if cs.Monsters[i].Alive() {
			out = append(out, i)
		}
	}
	return out
}

// Hash fingerprints the state for replay checks and node dedup.
func (cs *CombatState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(cs.Turn))
	hashActor(hasher, &cs.Player.Actor)
	binary.Write(hasher, binary.LittleEndian, int64(cs.Player.Energy))
	for _, zone := range [][]Card{cs.Player.Draw, cs.Player.Hand, cs.Player.Discard, cs.Player.Exhaust} {
		binary.Write(hasher, binary.LittleEndian, int64(len(zone)))
		for _, c := range zone {
			hasher.Write([]byte(c.ID))
			if c.Upgraded {
				hasher.Write([]byte{1})
			} else {
				hasher.Write([]byte{0})
			}
		}
	}
	for _, p := range cs.Player.Potions {
		hasher.Write([]byte(p.ID))
	}
	for i := range cs.Monsters {
		m := &cs.Monsters[i]
		hashActor(hasher, &m.Actor)
		binary.Write(hasher, binary.LittleEndian, int64(m.Intent.Kind))
		binary.Write(hasher, binary.LittleEndian, int64(m.Intent.Damage))
		binary.Write(hasher, binary.LittleEndian, int64(m.Intent.Hits))
	}

	return StateHash(hasher.Sum64())
}

func hashActor(hasher io.Writer, a *Actor) {
	binary.Write(hasher, binary.LittleEndian, int64(a.HP))
	binary.Write(hasher, binary.LittleEndian, int64(a.MaxHP))
	binary.Write(hasher, binary.LittleEndian, int64(a.Block))

	// Map iteration order is random; sort keys for a stable hash.
	keys := maps.Keys(a.Statuses)
	slices.Sort(keys)
	for _, k := range keys {
		hasher.Write([]byte(k))
		binary.Write(hasher, binary.LittleEndian, int64(a.Statuses[k]))
	}
}
