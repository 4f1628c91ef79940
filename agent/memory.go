package agent

import "spire/routing"

// Memory is the run-history context shared across decision points. It is
// passed around explicitly, never ambient: every handler that wants to read
// or write run history does so through the agent that owns it.
type Memory struct {
	Turns        int
	DamageTaken  int
	PotionsUsed  int
	BattlesWon   int
	RoomsVisited map[routing.Room]int
}

func NewMemory() *Memory {
	return &Memory{RoomsVisited: map[routing.Room]int{}}
}

// ObserveTurn records one completed combat turn.
func (m *Memory) ObserveTurn() {
	m.Turns++
}

// ObserveDamage records health lost by the player.
func (m *Memory) ObserveDamage(amount int) {
	if amount > 0 {
		m.DamageTaken += amount
	}
}

// ObservePotion records one potion spent.
func (m *Memory) ObservePotion() {
	m.PotionsUsed++
}

// ObserveVictory records one battle won.
func (m *Memory) ObserveVictory() {
	m.BattlesWon++
}

// ObserveRoom records that the run entered a room of the given type.
func (m *Memory) ObserveRoom(r routing.Room) {
	m.RoomsVisited[r]++
}
