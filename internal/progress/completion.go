package progress

import "github.com/vovakirdan/love-no-jutsu/internal/core"

// ApplyCompletion performs the level-complete sequence: each session XP
// delta in order (so clamping matches live play), the completion bonus,
// one scroll fragment, the level clue, and the unlock of the next level.
// Only won outcomes touch the store.
func ApplyCompletion(s *Store, level int, o core.Outcome, clue string) bool {
	if !o.Won {
		return false
	}
	for _, d := range o.XPDeltas {
		s.AddXP(d)
	}
	if o.CompletionXP != 0 {
		s.AddXP(o.CompletionXP)
	}
	s.AddScrollFragment()
	if clue != "" {
		s.AddClue(clue)
	}
	s.CompleteLevel(level)
	return true
}
