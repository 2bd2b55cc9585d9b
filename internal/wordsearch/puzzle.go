package wordsearch

import (
	"slices"
)

// Resolution is the outcome of finishing a selection.
type Resolution int

const (
	ResolutionNone Resolution = iota
	ResolutionFound
	ResolutionAlreadyFound
	ResolutionInvalid // Run of two or more cells that spells nothing
)

// Puzzle tracks found words and the player's in-progress selection.
type Puzzle struct {
	grid       Grid
	words      []string
	found      []string
	foundCells map[Cell]bool
	selection  []Cell
}

// NewPuzzle wraps a generated grid and its target words.
func NewPuzzle(grid Grid, words []string) *Puzzle {
	targets := make([]string, 0, len(words))
	for _, w := range words {
		if n := Normalize(w); n != "" && !slices.Contains(targets, n) {
			targets = append(targets, n)
		}
	}
	return &Puzzle{grid: grid, words: targets, foundCells: make(map[Cell]bool)}
}

// Grid returns the underlying grid.
func (p *Puzzle) Grid() Grid { return p.grid }

// Words returns the target words in normalized form.
func (p *Puzzle) Words() []string { return slices.Clone(p.words) }

// Found returns the found words in discovery order.
func (p *Puzzle) Found() []string { return slices.Clone(p.found) }

// IsFound reports whether word was already found.
func (p *Puzzle) IsFound(word string) bool {
	return slices.Contains(p.found, Normalize(word))
}

// CellFound reports whether c belongs to a found word.
func (p *Puzzle) CellFound(c Cell) bool { return p.foundCells[c] }

// Selection returns the cells of the current selection.
func (p *Puzzle) Selection() []Cell { return slices.Clone(p.selection) }

// Selecting reports whether a selection is in progress.
func (p *Puzzle) Selecting() bool { return len(p.selection) > 0 }

// Complete reports whether every word was found.
func (p *Puzzle) Complete() bool { return len(p.found) == len(p.words) }

// Begin starts a new selection at c, discarding any previous one.
func (p *Puzzle) Begin(c Cell) bool {
	if !p.grid.In(c.Row, c.Col) {
		return false
	}
	p.selection = append(p.selection[:0], c)
	return true
}

// Extend adds c if it touches the last selected cell and is not yet part of
// the run.
func (p *Puzzle) Extend(c Cell) bool {
	if len(p.selection) == 0 || !p.grid.In(c.Row, c.Col) {
		return false
	}
	if !p.selection[len(p.selection)-1].Adjacent(c) || slices.Contains(p.selection, c) {
		return false
	}
	p.selection = append(p.selection, c)
	return true
}

// Cancel drops the current selection.
func (p *Puzzle) Cancel() { p.selection = p.selection[:0] }

// End resolves the current selection against the word list, read both
// forwards and backwards, and clears it.
func (p *Puzzle) End() (Resolution, string) {
	sel := p.selection
	defer p.Cancel()
	if len(sel) == 0 {
		return ResolutionNone, ""
	}

	letters := make([]rune, len(sel))
	for i, c := range sel {
		letters[i] = p.grid.At(c)
	}
	forward := string(letters)
	slices.Reverse(letters)
	backward := string(letters)

	for _, w := range p.words {
		if w != forward && w != backward {
			continue
		}
		if slices.Contains(p.found, w) {
			return ResolutionAlreadyFound, w
		}
		p.found = append(p.found, w)
		for _, c := range sel {
			p.foundCells[c] = true
		}
		return ResolutionFound, w
	}
	if len(sel) >= 2 {
		return ResolutionInvalid, forward
	}
	return ResolutionNone, ""
}
