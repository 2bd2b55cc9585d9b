// Package quizgame hosts the question rounds as a registry game. It sits
// outside the campaign and never awards progression.
package quizgame

import (
	"fmt"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/quiz"
	"github.com/vovakirdan/love-no-jutsu/internal/registry"
)

// Game implements the quiz.
type Game struct {
	content quiz.Content
	flow    *quiz.Flow
	option  int
	tick    uint64
}

// New creates the quiz over content.
func New(content quiz.Content) *Game {
	return &Game{content: content}
}

func init() {
	registry.Register(registry.RouteQuiz, func(d registry.Deps) registry.Game {
		return New(d.Quiz)
	})
}

// ID returns the route of the quiz.
func (g *Game) ID() string { return registry.RouteQuiz }

// Title returns the display name.
func (g *Game) Title() string { return "Quiz" }

// Level returns 0: the quiz is not part of the campaign.
func (g *Game) Level() int { return 0 }

// Reset starts over from the first round.
func (g *Game) Reset(core.RuntimeConfig) {
	g.flow = quiz.NewFlow(g.content)
	g.option = 0
	g.tick = 0
}

// Step advances the quiz by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flow.Stage() == quiz.StageResults {
		return core.StepResult{State: g.State()}
	}

	if g.flow.Stage() == quiz.StageQuestion && !g.flow.Answered() {
		if q, ok := g.flow.Current(); ok {
			_, dy := in.Direction()
			g.option = core.Clamp(g.option+dy, 0, len(q.Question.Options)-1)
		}
	}

	if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
		if g.flow.Stage() == quiz.StageQuestion && !g.flow.Answered() {
			g.flow.Answer(g.option)
		} else {
			g.flow.Next()
			g.option = 0
		}
	}
	return core.StepResult{State: g.State()}
}

// State returns the current state. The outcome carries the score only.
func (g *Game) State() core.GameState {
	if g.flow.Stage() != quiz.StageResults {
		return core.GameState{Phase: core.PhaseActive}
	}
	return core.GameState{
		Phase: core.PhaseComplete,
		Outcome: &core.Outcome{
			Won:      true,
			Reason:   fmt.Sprintf("%d/%d correct", g.flow.Score(), g.flow.Total()),
			Moves:    g.flow.Total(),
			Accuracy: g.flow.Percentage(),
		},
	}
}

// Render draws the current stage.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Quiz  Score: %d/%d", g.flow.Score(), g.flow.Total()), core.ColorPink)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	loc, _ := g.flow.Current()
	mid := dst.Height() / 2
	switch g.flow.Stage() {
	case quiz.StageRoundIntro:
		dst.DrawTextCenteredColored(mid-2, fmt.Sprintf("Round %d", loc.RoundIndex+1), core.ColorGray)
		dst.DrawTextCenteredColored(mid-1, loc.Round.Title, core.ColorPink)
		dst.DrawTextCentered(mid+1, loc.Round.Description)
		dst.DrawTextCenteredColored(mid+3, "Press Enter to begin", core.ColorGray)

	case quiz.StageQuestion:
		q := loc.Question
		dst.DrawTextColored(2, 3, fmt.Sprintf("Question %d of %d", g.flow.Index()+1, g.flow.Total()), core.ColorGray)
		dst.DrawTextColored(2, 5, q.Prompt, core.ColorWhite)
		for i, opt := range q.Options {
			prefix, color := "  ", core.ColorDefault
			if i == g.option {
				prefix, color = "> ", core.ColorPink
			}
			if g.flow.Answered() {
				switch {
				case i == q.Answer:
					color = core.ColorGreen
				case i == g.flow.Selected():
					color = core.ColorRed
				}
			}
			dst.DrawTextColored(4, 7+i, fmt.Sprintf("%s%c. %s", prefix, 'A'+i, opt), color)
		}
		if g.flow.Answered() {
			msg, color := q.WrongFeedback, core.ColorRed
			if g.flow.Selected() == q.Answer {
				msg, color = q.CorrectFeedback, core.ColorGreen
			}
			if msg == "" {
				msg = "Not quite."
				if color == core.ColorGreen {
					msg = "Correct!"
				}
			}
			dst.DrawTextColored(4, 8+len(q.Options), msg, color)
			dst.DrawTextColored(4, 10+len(q.Options), "Press Enter to continue", core.ColorGray)
		}

	case quiz.StageRoundEnd:
		dst.DrawTextCenteredColored(mid-1, "♥", core.ColorPink)
		if loc.Round.EndPhoto != nil {
			dst.DrawTextCentered(mid+1, loc.Round.EndPhoto.Caption)
		}
		dst.DrawTextCenteredColored(mid+3, "Press Enter to continue", core.ColorGray)

	case quiz.StageResults:
		dst.DrawTextCenteredColored(mid-1, "Results", core.ColorPink)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("%d of %d correct (%d%%)", g.flow.Score(), g.flow.Total(), g.flow.Percentage()))
	}
}
