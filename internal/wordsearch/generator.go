package wordsearch

import (
	"cmp"
	"io"
	"math"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
)

// Default attempt budgets.
const (
	DefaultMaxAttempts  = 100
	DefaultWordAttempts = 50
)

// Generator builds word-search grids with randomized placement and a full
// validation pass, retrying a bounded number of times.
type Generator struct {
	MaxAttempts  int // Whole-grid attempts
	WordAttempts int // Placement tries per word within one attempt

	rng    *rand.Rand
	logger *log.Logger
}

// NewGenerator creates a generator with the default budgets.
func NewGenerator(seed int64, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		MaxAttempts:  DefaultMaxAttempts,
		WordAttempts: DefaultWordAttempts,
		rng:          rand.New(rand.NewSource(seed)),
		logger:       logger,
	}
}

// SideLength returns the grid side for words: at least the longest word
// plus a margin of two, growing with the total letter volume.
func SideLength(words []string) int {
	longest := 0
	for _, w := range words {
		longest = max(longest, len([]rune(Normalize(w))))
	}
	if longest == 0 {
		return 0
	}
	volume := int(math.Ceil(math.Sqrt(float64(len(words)*longest)))) + 2
	return max(longest+2, volume)
}

// Generate returns a filled grid containing every word. When every attempt
// fails it logs a warning and returns an all-random grid with ok == false;
// callers must accept that degraded grid.
func (g *Generator) Generate(words []string) (grid Grid, ok bool) {
	targets := make([]string, 0, len(words))
	for _, w := range words {
		if n := Normalize(w); n != "" {
			targets = append(targets, n)
		}
	}
	// Longest words are hardest to fit, so they go first.
	slices.SortStableFunc(targets, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	size := SideLength(targets)
	for attempt := 0; attempt < g.MaxAttempts; attempt++ {
		grid, placed := g.tryPlaceAll(size, targets)
		if !placed || !Validate(grid, targets) {
			continue
		}
		g.fill(grid)
		return grid, true
	}

	g.logger.Warn("word grid fallback: could not place all words",
		"words", len(targets), "size", size, "attempts", g.MaxAttempts)
	grid = NewGrid(size)
	g.fill(grid)
	return grid, false
}

func (g *Generator) tryPlaceAll(size int, words []string) (Grid, bool) {
	grid := NewGrid(size)
	for _, w := range words {
		if !g.placeWord(grid, []rune(w)) {
			return grid, false
		}
	}
	return grid, true
}

func (g *Generator) placeWord(grid Grid, word []rune) bool {
	dirs := Directions
	g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for i := 0; i < g.WordAttempts; i++ {
		d := dirs[i%len(dirs)]
		r, c := g.rng.Intn(grid.Size), g.rng.Intn(grid.Size)
		if fits(grid, word, r, c, d) {
			for k, ch := range word {
				grid.Cells[r+k*d.DR][c+k*d.DC] = ch
			}
			return true
		}
	}
	return false
}

// fits allows crossing words that agree on the shared letter.
func fits(grid Grid, word []rune, r, c int, d Direction) bool {
	for k, ch := range word {
		rr, cc := r+k*d.DR, c+k*d.DC
		if !grid.In(rr, cc) {
			return false
		}
		if cur := grid.Cells[rr][cc]; cur != 0 && cur != ch {
			return false
		}
	}
	return true
}

func (g *Generator) fill(grid Grid) {
	for r := range grid.Cells {
		for c := range grid.Cells[r] {
			if grid.Cells[r][c] == 0 {
				grid.Cells[r][c] = rune('A' + g.rng.Intn(26))
			}
		}
	}
}
