package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mansion palette
var (
	ColorBrass   = lipgloss.Color("#D4A84B")
	ColorCrimson = lipgloss.Color("#B3261E")
	ColorIvy     = lipgloss.Color("#3E8E5E")
	ColorDust    = lipgloss.Color("#7A7A7A")
	ColorOak     = lipgloss.Color("#8B5A2B")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title   lipgloss.Style
	Room    lipgloss.Style
	Clue    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Banner  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorBrass),
	Room:    lipgloss.NewStyle().Bold(true).Foreground(ColorOak),
	Clue:    lipgloss.NewStyle().Foreground(ColorBrass),
	Muted:   lipgloss.NewStyle().Foreground(ColorDust),
	Success: lipgloss.NewStyle().Bold(true).Foreground(ColorIvy),
	Failure: lipgloss.NewStyle().Bold(true).Foreground(ColorCrimson),
	Warning: lipgloss.NewStyle().Foreground(ColorBrass).Italic(true),

	Banner: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorOak).
		Padding(0, 1),
}

const (
	separator  = "----------------------------------------"
	clueMarker = "- "
)

// Renderer turns game events into console text.
// A plain renderer emits the text without any terminal styling.
type Renderer struct {
	plain bool
}

// New creates a renderer; plain disables styling
func New(plain bool) Renderer {
	return Renderer{plain: plain}
}

// Plain reports whether styling is disabled
func (r Renderer) Plain() bool {
	return r.plain
}

func (r Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Banner is the welcome shown at session start
func (r Renderer) Banner(title, intro string) string {
	if r.plain {
		return fmt.Sprintf("Welcome to %s!\n%s", title, intro)
	}
	return Styles.Banner.Render(Styles.Title.Render("Welcome to "+title+"!") + "\n" + intro)
}

// RoomHeader announces the room the detective stands in
func (r Renderer) RoomHeader(name string) string {
	return "\n" + separator + "\nYou are in: " + r.style(Styles.Room, name)
}

// ClueFound reports a freshly collected clue
func (r Renderer) ClueFound(clue string) string {
	return "You found a clue: " + r.style(Styles.Clue, clue)
}

// NothingNew reports a room with nothing left to collect
func (r Renderer) NothingNew() string {
	return r.style(Styles.Muted, "Nothing new around here...")
}

// MovePrompt asks where to go next
func (r Renderer) MovePrompt() string {
	return "\nWhere do you want to go?\n(l)eft, (r)ight or e(x)it to the trial? "
}

// NoPath reports a door that does not exist
func (r Renderer) NoPath(direction string) string {
	return r.style(Styles.Warning, "There is no path to the "+direction+".")
}

// InvalidChoice reports input that is not a command
func (r Renderer) InvalidChoice() string {
	return r.style(Styles.Warning, "Invalid option.")
}

// ExplorationOver closes the exploration phase
func (r Renderer) ExplorationOver() string {
	return "\nExploration over. Time for the trial!"
}

// ClueList prints the collected clues in the given order, one per line
func (r Renderer) ClueList(clues []string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.style(Styles.Title, "--- COLLECTED CLUES ---"))
	for _, clue := range clues {
		b.WriteString("\n")
		b.WriteString(clueMarker)
		b.WriteString(r.style(Styles.Clue, clue))
	}
	return b.String()
}

// AccusePrompt asks for the culprit, hinting at the known suspects
func (r Renderer) AccusePrompt(suspects []string) string {
	if len(suspects) == 0 {
		return "\nWho do you accuse? "
	}
	return fmt.Sprintf("\nWho do you accuse? (e.g. %s) ", strings.Join(suspects, ", "))
}

// EmptyAccusation asks again when no name was given
func (r Renderer) EmptyAccusation() string {
	return r.style(Styles.Warning, "Name a suspect to accuse.")
}

// NoClues is the outcome when nothing was collected
func (r Renderer) NoClues() string {
	return "\n" + r.style(Styles.Failure, "You collected no clues. An accusation is impossible.")
}

// Verdict reports the trial outcome. supporting lists the clues that point
// at the accused.
func (r Renderer) Verdict(accused string, matches int, upheld bool, supporting []string, roomsVisited int, suggestion string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.style(Styles.Title, "--- VERDICT ---"))
	b.WriteString("\n")
	if upheld {
		fmt.Fprintf(&b, "The investigation points to %s with %d damning clue(s).\n", accused, matches)
		b.WriteString(r.style(Styles.Success, "Accusation confirmed! You solved the mystery!"))
	} else {
		fmt.Fprintf(&b, "You accused %s, but found only %d clue(s) against them.\n", accused, matches)
		b.WriteString(r.style(Styles.Failure, "Insufficient evidence! The real culprit got away..."))
	}
	if len(supporting) > 0 {
		b.WriteString("\nEvidence against them: ")
		b.WriteString(r.style(Styles.Clue, strings.Join(supporting, ", ")))
	}
	if suggestion != "" {
		b.WriteString("\n")
		b.WriteString(r.style(Styles.Muted, fmt.Sprintf("No suspect goes by %q. Did you mean %s?", accused, suggestion)))
	}
	b.WriteString("\n")
	b.WriteString(r.style(Styles.Muted, fmt.Sprintf("Rooms visited: %d", roomsVisited)))
	return b.String()
}

// GameOver is the closing line of every session
func (r Renderer) GameOver() string {
	return r.style(Styles.Title, "--- GAME OVER ---")
}

// EvidenceTable lists clue/suspect pairs, one per line
func (r Renderer) EvidenceTable(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row[0])))
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		pad := strings.Repeat(" ", width-len([]rune(row[0])))
		b.WriteString(r.style(Styles.Clue, row[0]) + pad + "  " + row[1])
	}
	return b.String()
}
