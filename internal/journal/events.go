package journal

// Journal event kinds
const (
	EventSessionStarted   = "session-started"
	EventRoomEntered      = "room-entered"
	EventClueCollected    = "clue-collected"
	EventNoPath           = "no-path"
	EventInvalidCommand   = "invalid-command"
	EventExplorationEnded = "exploration-ended"
	EventAccusation       = "accusation"
	EventVerdict          = "verdict"
)
