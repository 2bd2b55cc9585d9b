// Package wordsearch generates square letter grids that hide a word list
// along the eight compass directions and resolves player selections on them.
package wordsearch

import (
	"strings"
	"unicode"
)

// Direction is a unit step between grid cells.
type Direction struct {
	DR, DC int
}

// Directions lists the eight placement directions: horizontal, vertical and
// both diagonals, each forward and reversed.
var Directions = [8]Direction{
	{0, 1}, {1, 0}, {1, 1}, {-1, 1},
	{0, -1}, {-1, 0}, {-1, -1}, {1, -1},
}

// Cell addresses one grid position.
type Cell struct {
	Row, Col int
}

// Adjacent reports whether a and b touch, diagonals included.
func (a Cell) Adjacent(b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return a != b && dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Grid is a square letter grid. A zero rune marks an empty cell during
// generation; generated grids never contain one.
type Grid struct {
	Size  int
	Cells [][]rune
}

// NewGrid creates an empty grid of the given side length.
func NewGrid(size int) Grid {
	cells := make([][]rune, size)
	for r := range cells {
		cells[r] = make([]rune, size)
	}
	return Grid{Size: size, Cells: cells}
}

// In reports whether (r, c) lies inside the grid.
func (g Grid) In(r, c int) bool {
	return r >= 0 && r < g.Size && c >= 0 && c < g.Size
}

// At returns the letter at c, or 0 outside the grid.
func (g Grid) At(c Cell) rune {
	if !g.In(c.Row, c.Col) {
		return 0
	}
	return g.Cells[c.Row][c.Col]
}

// Placement is where a word sits in a grid.
type Placement struct {
	Word string
	Row  int
	Col  int
	Dir  Direction
}

// Cells returns the cells the placement covers, first letter first.
func (p Placement) Cells() []Cell {
	n := len([]rune(p.Word))
	out := make([]Cell, n)
	for i := range out {
		out[i] = Cell{Row: p.Row + i*p.Dir.DR, Col: p.Col + i*p.Dir.DC}
	}
	return out
}

// readsAt reports whether word can be read from (r, c) along d.
func (g Grid) readsAt(word []rune, r, c int, d Direction) bool {
	for i, ch := range word {
		rr, cc := r+i*d.DR, c+i*d.DC
		if !g.In(rr, cc) || g.Cells[rr][cc] != ch {
			return false
		}
	}
	return true
}

// Locate scans every cell and direction for word.
func (g Grid) Locate(word string) (Placement, bool) {
	w := []rune(Normalize(word))
	if len(w) == 0 {
		return Placement{}, false
	}
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c] != w[0] {
				continue
			}
			for _, d := range Directions {
				if g.readsAt(w, r, c, d) {
					return Placement{Word: string(w), Row: r, Col: c, Dir: d}, true
				}
			}
		}
	}
	return Placement{}, false
}

// Validate reports whether every word can be found in g.
func Validate(g Grid, words []string) bool {
	for _, w := range words {
		if _, ok := g.Locate(w); !ok {
			return false
		}
	}
	return true
}

// String renders the grid as space separated rows.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, ch := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if ch == 0 {
				ch = '.'
			}
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// Normalize upper-cases word and drops everything but letters.
func Normalize(word string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, word)
}
