package game

const (
	// DefaultThreshold is the minimum number of matching clues that upholds an accusation
	DefaultThreshold = 2

	// SuggestionBagSize is the substring length used when matching a mistyped suspect name
	SuggestionBagSize = 2
)
