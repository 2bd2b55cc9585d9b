// Package quiz holds the round-based question content and the flow that
// walks a player through it.
package quiz

// Question is one multiple-choice question.
type Question struct {
	ID              string   `yaml:"id"`
	Prompt          string   `yaml:"question"`
	Options         []string `yaml:"options"`
	Answer          int      `yaml:"correct_answer"`
	CorrectFeedback string   `yaml:"correct_feedback,omitempty"`
	WrongFeedback   string   `yaml:"wrong_feedback,omitempty"`
}

// EndPhoto is shown between rounds when present.
type EndPhoto struct {
	Caption string `yaml:"caption"`
}

// Round groups questions under a title.
type Round struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Questions   []Question `yaml:"questions"`
	EndPhoto    *EndPhoto  `yaml:"end_photo,omitempty"`
}

// Content is the read-only question set.
type Content struct {
	Rounds []Round `yaml:"rounds"`
}

// Located is a question together with its round position.
type Located struct {
	Question        Question
	Round           Round
	RoundIndex      int
	QuestionInRound int
}

// Total returns the number of questions across all rounds.
func (c Content) Total() int {
	n := 0
	for _, r := range c.Rounds {
		n += len(r.Questions)
	}
	return n
}

// At returns the question at a global index.
func (c Content) At(index int) (Located, bool) {
	if index < 0 {
		return Located{}, false
	}
	start := 0
	for ri, r := range c.Rounds {
		if index < start+len(r.Questions) {
			return Located{
				Question:        r.Questions[index-start],
				Round:           r,
				RoundIndex:      ri,
				QuestionInRound: index - start,
			}, true
		}
		start += len(r.Questions)
	}
	return Located{}, false
}

// IsFirstOfRound reports whether index opens a round.
func (c Content) IsFirstOfRound(index int) bool {
	start := 0
	for _, r := range c.Rounds {
		if len(r.Questions) > 0 && index == start {
			return true
		}
		start += len(r.Questions)
	}
	return false
}

// IsLastOfRound reports whether index closes a round.
func (c Content) IsLastOfRound(index int) bool {
	end := 0
	for _, r := range c.Rounds {
		end += len(r.Questions)
		if len(r.Questions) > 0 && index == end-1 {
			return true
		}
	}
	return false
}
