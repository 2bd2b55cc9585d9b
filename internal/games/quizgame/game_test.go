package quizgame

import (
	"testing"

	"github.com/vovakirdan/love-no-jutsu/internal/config"
	"github.com/vovakirdan/love-no-jutsu/internal/core"
	"github.com/vovakirdan/love-no-jutsu/internal/quiz"
)

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestWalkThroughDefaultQuiz(t *testing.T) {
	g := New(config.DefaultQuiz())
	g.Reset(core.DefaultConfig())

	// Round 1 intro, q1 correct (option 0), q2 wrong (option 0, answer 1),
	// end photo, round 2 intro, q3 correct (option 2).
	steps := []struct {
		actions []core.Action
		stage   quiz.Stage
	}{
		{[]core.Action{core.ActionConfirm}, quiz.StageQuestion},
		{[]core.Action{core.ActionConfirm}, quiz.StageQuestion},
		{[]core.Action{core.ActionConfirm}, quiz.StageQuestion},
		{[]core.Action{core.ActionConfirm}, quiz.StageQuestion},
		{[]core.Action{core.ActionConfirm}, quiz.StageRoundEnd},
		{[]core.Action{core.ActionConfirm}, quiz.StageRoundIntro},
		{[]core.Action{core.ActionConfirm}, quiz.StageQuestion},
		{[]core.Action{core.ActionDown}, quiz.StageQuestion},
		{[]core.Action{core.ActionDown}, quiz.StageQuestion},
		{[]core.Action{core.ActionConfirm}, quiz.StageQuestion},
	}
	for i, s := range steps {
		press(g, s.actions...)
		if g.flow.Stage() != s.stage {
			t.Fatalf("step %d: stage = %v, expected %v", i, g.flow.Stage(), s.stage)
		}
		if g.State().Over() {
			t.Fatalf("step %d: quiz should not be over yet", i)
		}
	}

	press(g, core.ActionConfirm)
	st := g.State()
	if st.Phase != core.PhaseComplete {
		t.Fatalf("phase = %v, expected complete", st.Phase)
	}
	if g.flow.Score() != 2 || st.Outcome.Accuracy != 67 {
		t.Errorf("score/percent = %d/%d, expected 2/67", g.flow.Score(), st.Outcome.Accuracy)
	}
	if st.Outcome.EarnedXP() != 0 {
		t.Error("the quiz must not award XP")
	}
}

func TestOptionCursorLocksAfterAnswer(t *testing.T) {
	g := New(config.DefaultQuiz())
	g.Reset(core.DefaultConfig())
	press(g, core.ActionConfirm)

	press(g, core.ActionDown)
	press(g, core.ActionSelect)
	press(g, core.ActionDown)
	if g.option != 1 || g.flow.Selected() != 1 {
		t.Errorf("option/selected = %d/%d, expected 1/1", g.option, g.flow.Selected())
	}
}

func TestEmptyQuizIsOver(t *testing.T) {
	g := New(quiz.Content{})
	g.Reset(core.DefaultConfig())
	if !g.State().Over() {
		t.Error("a quiz without questions goes straight to results")
	}
	if g.Level() != 0 {
		t.Error("the quiz is not a campaign level")
	}
}
