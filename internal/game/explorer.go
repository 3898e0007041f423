package game

import (
	"context"

	"github.com/aaronzipp/detective-quest/internal/clues"
	"github.com/aaronzipp/detective-quest/internal/journal"
	"github.com/aaronzipp/detective-quest/internal/mansion"
	"github.com/aaronzipp/detective-quest/internal/render"
)

// Terminal is the console the game talks through
type Terminal interface {
	Println(text string)
	Prompt(ctx context.Context, label string) (string, error)
}

// Explorer walks the detective through the mansion, one room at a time.
// Movement only goes deeper: there is no way back to a parent room.
type Explorer struct {
	term    Terminal
	render  render.Renderer
	clues   *clues.Collection
	journal *journal.Journal
	current *mansion.Room
	visited int
}

// NewExplorer creates an explorer standing outside the given root room
func NewExplorer(root *mansion.Room, collected *clues.Collection, term Terminal, r render.Renderer, j *journal.Journal) *Explorer {
	return &Explorer{
		term:    term,
		render:  r,
		clues:   collected,
		journal: j,
		current: root,
	}
}

// Current returns the room the detective stands in
func (e *Explorer) Current() *mansion.Room {
	return e.current
}

// Visited returns how many times a room was entered
func (e *Explorer) Visited() int {
	return e.visited
}

// enter moves into room and picks up its clue if one is still there
func (e *Explorer) enter(room *mansion.Room) {
	e.current = room
	e.visited++
	e.journal.Record(journal.EventRoomEntered, "room", room.Name)
	e.term.Println(e.render.RoomHeader(room.Name))

	clue, ok := room.Claim()
	if !ok {
		e.term.Println(e.render.NothingNew())
		return
	}
	e.term.Println(e.render.ClueFound(clue))
	e.clues.Insert(clue)
	e.journal.Record(journal.EventClueCollected, "room", room.Name, "clue", clue)
}

// Step applies one command and reports whether exploration is over
func (e *Explorer) Step(cmd Command) bool {
	if cmd == CommandExit {
		e.journal.Record(journal.EventExplorationEnded, "room", e.current.Name)
		e.term.Println(e.render.ExplorationOver())
		return true
	}

	dir, ok := cmd.Direction()
	if !ok {
		e.journal.Record(journal.EventInvalidCommand, "room", e.current.Name)
		e.term.Println(e.render.InvalidChoice())
		return false
	}

	next := e.current.Child(dir)
	if next == nil {
		e.journal.Record(journal.EventNoPath, "room", e.current.Name, "direction", dir.String())
		e.term.Println(e.render.NoPath(dir.String()))
		return false
	}
	e.enter(next)
	return false
}

// Run enters the root room and loops on player input until the exit command.
// Input errors, including end of input, are returned unchanged.
func (e *Explorer) Run(ctx context.Context) error {
	e.enter(e.current)
	for {
		line, err := e.term.Prompt(ctx, e.render.MovePrompt())
		if err != nil {
			return err
		}
		if e.Step(ParseCommand(line)) {
			return nil
		}
	}
}
