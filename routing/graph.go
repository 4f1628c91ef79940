package routing

// Room tags a map node with its room type.
type Room string

const (
	Fight    Room = "fight"
	Elite    Room = "elite"
	Shop     Room = "shop"
	Rest     Room = "rest"
	Event    Room = "event"
	Treasure Room = "treasure"
	Unknown  Room = "unknown"
)

// Node is one room in the layered act map. Edges point at the next layer
// only, so the graph is acyclic by construction.
type Node struct {
	ID    string
	Room  Room
	Edges []*Node
}

// Graph is the act map as seen from the current position. It is built once
// per act from the protocol snapshot and only ever read by the scorer; route
// commitment happens outside this core.
type Graph struct {
	Current *Node
}
