package config

import (
	_ "embed"

	"github.com/vovakirdan/love-no-jutsu/internal/quiz"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// DefaultLevels returns the built-in level tables.
func DefaultLevels() LevelsConfig {
	return LevelsConfig{
		Memory: MemoryConfig{
			Pairs:           []string{"Naruto", "Driving", "Arcade", "Popcorn", "Coke", "Flower", "Photos", "Love", "Cuddle", "Movies"},
			MatchDelayMS:    500,
			MismatchDelayMS: 1000,
			XP:              XPTable{Correct: 20},
		},
		SilentShinobi: ShinobiConfig{
			DurationSecs:    30,
			SpawnIntervalMS: 800,
			MotionStepMS:    50,
			MaxItems:        11,
			FallPerStep:     0.8,
			Lanes:           5,
			SpawnY:          -10,
			RemoveY:         110,
			FieldHeight:     100,
			CorrectItems:    []string{"Popcorn", "Anime", "Natak", "Nothing", "Hug"},
			WrongItems:      []string{"Silence", "Sleep", "Ignore", "Cold"},
			CorrectWeight:   2,
			WrongWeight:     1,
			Target:          15,
			MinCorrect:      0,
			XP:              XPTable{Correct: 5, Incorrect: -10},
		},
		Traits: TraitsConfig{
			Zones:      []string{"him", "her", "both"},
			FeedbackMS: 400,
			Traits: []Trait{
				{Name: "Trip Planner", Zone: "him"},
				{Name: "Adventure With Comfort", Zone: "him"},
				{Name: "Closet Commander", Zone: "him"},
				{Name: "Logic Over Drama", Zone: "him"},
				{Name: "Pretends Not To Care", Zone: "him"},
				{Name: "Last Minute Planner", Zone: "him"},
				{Name: "Anime Mode", Zone: "him"},
				{Name: "Sleep Overachiever", Zone: "him"},
				{Name: "Overthinker", Zone: "her"},
				{Name: "Nature Soul", Zone: "her"},
				{Name: "Drama Magnet", Zone: "her"},
				{Name: "Hopeless Romantic", Zone: "her"},
				{Name: "Gets Emotional in Movies", Zone: "her"},
				{Name: "Bathtub Hunt", Zone: "both"},
				{Name: "Calm + Chaos Combo", Zone: "both"},
				{Name: "Us Against The World", Zone: "both"},
				{Name: "Silent Understanding", Zone: "both"},
				{Name: "Fight -> Fix -> Repeat", Zone: "both"},
				{Name: "Emotional Ninja", Zone: "both"},
			},
			XP: XPTable{Correct: 15, Incorrect: -10},
		},
		Balance: BalanceConfig{
			DurationSecs: 30,
			Labels:       [2]string{"Anime", "Drama"},
			Start:        [2]float64{25, 75},
			Push:         15,
			Pull:         8,
			DriftBias:    0.3,
			DriftScale:   5,
			Center:       50,
			Threshold:    30,
			RequiredSecs: 10,
			XP:           XPTable{Correct: 2},
		},
		Puzzle: PuzzleConfig{
			Size: 4,
			Pictures: []Picture{
				{Title: "Comfort Is You", Caption: "In your presence, I'm home", Tiles: "COMFORTISYOUHOME"},
				{Title: "Our Kind of Fairytale", Caption: "Where dreams met reality", Tiles: "ONCEUPONATIMEXOX"},
				{Title: "The Day We Became Us", Caption: "Where it all began", Tiles: "THEDAYWEBECAMEUS"},
			},
			XP: XPTable{Correct: 5},
		},
		Storm: StormConfig{
			DurationSecs:    25,
			ArenaSize:       500,
			SpawnMargin:     30,
			SpawnIntervalMS: 1000,
			MaxIcons:        13,
			DramaWeight:     3,
			SilenceWeight:   2,
			DramaIcons:      []string{"Drama", "Storm"},
			SilenceIcons:    []string{"Mute", "Sleep"},
			MoveStep:        15,
			MinPos:          20,
			MaxPos:          480,
			CollectRadius:   35,
			BandMin:         8,
			BandMax:         15,
			XP:              XPTable{Correct: 10, Incorrect: 5, PerSecondInBand: 5, Completion: 200},
		},
		WordHunt: WordHuntConfig{
			Words: []string{
				"TOGETHER", "FOREVER", "LOYAL", "GROWTH", "SPARK", "BALANCE", "TRAVEL",
				"ADVENTURE", "MEMORIES", "CALM", "CUDDLE", "HOME", "TRUST", "JOURNEY",
			},
			SpecialWords: []string{"TRAVEL", "ADVENTURE", "TOGETHER", "FOREVER", "NATAK"},
			XPPerWord:    25,
			XPSpecial:    35,
			XP:           XPTable{Completion: 300},
		},
		Clues: map[int]string{
			1: "The calm one was never truly alone.",
			2: "Even silent hearts panic in storms.",
			3: "The treasure hides where water meets calm.",
			4: "Plot twists strengthen the bond.",
			5: "Love pieced together, moment by moment.",
			6: "Silence is his strength. Chaos is his comfort.",
			7: "Seven memories assembled. The treasure awaits.",
		},
	}
}

// DefaultQuiz returns the built-in quiz content.
func DefaultQuiz() quiz.Content {
	return quiz.Content{Rounds: []quiz.Round{
		{
			ID:          "round-1",
			Title:       "First Memories",
			Description: "Test your memory of our early days together",
			Questions: []quiz.Question{
				{ID: "q1", Prompt: "Where did we first meet?", Options: []string{"Coffee Shop", "Park", "Library", "Online"}, Answer: 0},
				{ID: "q2", Prompt: "What was our first date?", Options: []string{"Movie", "Dinner", "Concert", "Walk"}, Answer: 1},
			},
			EndPhoto: &quiz.EndPhoto{Caption: "Where it all started"},
		},
		{
			ID:          "round-2",
			Title:       "Our Adventures",
			Description: "Remember the fun times we've shared",
			Questions: []quiz.Question{
				{ID: "q3", Prompt: "What's our favorite restaurant?", Options: []string{"Italian", "Mexican", "Japanese", "Thai"}, Answer: 2},
			},
		},
	}}
}
