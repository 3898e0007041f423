// Package mansion holds the room map the detective explores.
//
// The map is a hand-authored binary tree: every room has at most a left and
// a right door, each leading deeper into the house. The shape never changes
// after the map is built; the only thing that changes is whether a room's
// clue has been picked up.
package mansion

import "github.com/aaronzipp/detective-quest/internal/models"

// ClueState tells whether a room has a clue and whether it was taken
type ClueState int

const (
	ClueNone ClueState = iota
	ClueUnclaimed
	ClueClaimed
)

// String returns the state name
func (s ClueState) String() string {
	switch s {
	case ClueNone:
		return "none"
	case ClueUnclaimed:
		return "unclaimed"
	case ClueClaimed:
		return "claimed"
	default:
		return "unknown"
	}
}

// Direction is a door out of a room
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns the direction name
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Room is a node of the mansion map
type Room struct {
	Name  string
	Left  *Room
	Right *Room

	clue  string
	state ClueState
}

// NewRoom creates a room with no doors. An empty clue means the room holds none.
func NewRoom(name, clue string) *Room {
	r := &Room{Name: name}
	if clue != "" {
		r.clue = clue
		r.state = ClueUnclaimed
	}
	return r
}

// ClueState returns the state of the room's clue slot
func (r *Room) ClueState() ClueState {
	return r.state
}

// Claim takes the room's clue. It succeeds only once.
func (r *Room) Claim() (string, bool) {
	if r.state != ClueUnclaimed {
		return "", false
	}
	r.state = ClueClaimed
	return r.clue, true
}

// Child returns the room behind the given door, or nil if there is no door
func (r *Room) Child(d Direction) *Room {
	if d == Left {
		return r.Left
	}
	return r.Right
}

// Walk visits r and every room below it, parents before children, left before right
func (r *Room) Walk(fn func(*Room)) {
	if r == nil {
		return
	}
	fn(r)
	r.Left.Walk(fn)
	r.Right.Walk(fn)
}

// Count returns the number of rooms in the subtree rooted at r
func (r *Room) Count() int {
	n := 0
	r.Walk(func(*Room) { n++ })
	return n
}

// Build wires a map from its layout description
func Build(spec models.RoomSpec) *Room {
	r := NewRoom(spec.Name, spec.Clue)
	if spec.Left != nil {
		r.Left = Build(*spec.Left)
	}
	if spec.Right != nil {
		r.Right = Build(*spec.Right)
	}
	return r
}
