package models

// RoomSpec describes one room of a hand-authored mansion and the rooms behind it
type RoomSpec struct {
	Name  string    `yaml:"name"`
	Clue  string    `yaml:"clue,omitempty"`
	Left  *RoomSpec `yaml:"left,omitempty"`
	Right *RoomSpec `yaml:"right,omitempty"`
}

// Evidence links a clue to the suspect it points at
type Evidence struct {
	Clue    string `yaml:"clue"`
	Suspect string `yaml:"suspect"`
}

// Scenario is a complete mystery: the mansion layout and the evidence table
type Scenario struct {
	Title    string     `yaml:"title"`
	Intro    string     `yaml:"intro"`
	Map      RoomSpec   `yaml:"map"`
	Evidence []Evidence `yaml:"evidence"`
}
