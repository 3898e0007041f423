package game

import (
	"slices"

	"github.com/schollz/closestmatch"

	"github.com/aaronzipp/detective-quest/internal/clues"
	"github.com/aaronzipp/detective-quest/internal/index"
)

// Verdict represents the outcome of an accusation
type Verdict struct {
	Accused    string
	Matches    int
	Upheld     bool
	NoEvidence bool     // nothing was collected, so no accusation was possible
	Supporting []string // collected clues pointing at the accused, ascending
}

// Judge counts the collected clues that the index attributes to accused.
// The accusation is upheld when the count reaches threshold; a threshold
// below 1 uses DefaultThreshold. An empty collection yields NoEvidence
// whatever the name.
func Judge(collected *clues.Collection, idx *index.HashIndex, accused string, threshold int) *Verdict {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	v := &Verdict{Accused: accused}
	if collected.Empty() {
		v.NoEvidence = true
		return v
	}

	collected.InOrder(func(clue string) {
		if suspect, ok := idx.Lookup(clue); ok && suspect == accused {
			v.Matches++
			v.Supporting = append(v.Supporting, clue)
		}
	})
	v.Upheld = v.Matches >= threshold
	return v
}

// Suggest returns the known suspect closest to a name that matches none of
// them exactly, or "" when the name is known or nothing is close.
// Suspects are scored by the substrings they share with the name; equal
// scores go to the name that sorts first.
func Suggest(accused string, suspects []string) string {
	if len(suspects) == 0 || slices.Contains(suspects, accused) {
		return ""
	}
	cm := closestmatch.New(suspects, []int{SuggestionBagSize})
	query := closestmatch.New([]string{accused}, []int{SuggestionBagSize})

	scores := make(map[string]int)
	for substring := range query.SubstringToID {
		for id := range cm.SubstringToID[substring] {
			scores[cm.ID[id].Key]++
		}
	}

	best, bestScore := "", 0
	for name, score := range scores {
		if score > bestScore || (score == bestScore && name < best) {
			best, bestScore = name, score
		}
	}
	return best
}
