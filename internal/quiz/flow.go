package quiz

import "github.com/vovakirdan/love-no-jutsu/internal/core"

// Stage is where the player is in the quiz.
type Stage int

const (
	StageRoundIntro Stage = iota
	StageQuestion
	StageRoundEnd
	StageResults
)

func (s Stage) String() string {
	switch s {
	case StageRoundIntro:
		return "round-intro"
	case StageQuestion:
		return "question"
	case StageRoundEnd:
		return "round-end"
	default:
		return "results"
	}
}

// Flow walks through Content one question at a time.
type Flow struct {
	content  Content
	stage    Stage
	index    int
	score    int
	answered bool
	selected int
}

// NewFlow starts at the intro of the first round. Empty content goes
// straight to results.
func NewFlow(c Content) *Flow {
	f := &Flow{content: c, selected: -1}
	if c.Total() == 0 {
		f.stage = StageResults
	}
	return f
}

// Stage returns the current stage.
func (f *Flow) Stage() Stage { return f.stage }

// Index returns the global question index.
func (f *Flow) Index() int { return f.index }

// Current returns the current question and its round.
func (f *Flow) Current() (Located, bool) { return f.content.At(f.index) }

// Answered reports whether the current question was answered.
func (f *Flow) Answered() bool { return f.answered }

// Selected returns the chosen option, or -1.
func (f *Flow) Selected() int { return f.selected }

// Score returns the number of correct answers.
func (f *Flow) Score() int { return f.score }

// Total returns the number of questions.
func (f *Flow) Total() int { return f.content.Total() }

// Percentage returns round(score/total*100), 0 for an empty quiz.
func (f *Flow) Percentage() int { return core.Percent(f.score, f.content.Total()) }

// Answer records option i for the current question. Only the first
// answer counts. It reports whether the answer was correct.
func (f *Flow) Answer(i int) (correct, accepted bool) {
	if f.stage != StageQuestion || f.answered {
		return false, false
	}
	q, ok := f.Current()
	if !ok || i < 0 || i >= len(q.Question.Options) {
		return false, false
	}
	f.answered = true
	f.selected = i
	if i == q.Question.Answer {
		f.score++
		return true, true
	}
	return false, true
}

// Next advances to the following stage. Questions must be answered first.
func (f *Flow) Next() {
	switch f.stage {
	case StageRoundIntro:
		f.stage = StageQuestion
	case StageQuestion:
		if !f.answered {
			return
		}
		if f.index == f.content.Total()-1 {
			f.stage = StageResults
			return
		}
		if q, _ := f.Current(); f.content.IsLastOfRound(f.index) && q.Round.EndPhoto != nil {
			f.stage = StageRoundEnd
			return
		}
		f.advance()
	case StageRoundEnd:
		f.advance()
	}
}

func (f *Flow) advance() {
	f.index++
	f.answered = false
	f.selected = -1
	if f.content.IsFirstOfRound(f.index) {
		f.stage = StageRoundIntro
	} else {
		f.stage = StageQuestion
	}
}
