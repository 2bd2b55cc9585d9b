package puzzle

import (
	"math/rand"
	"slices"
)

// Board is one scrambled picture. Tiles[pos] is the tile shown at pos;
// the picture is solved when every tile sits at its own index.
type Board struct {
	Title   string
	Caption string
	Size    int
	Art     []rune
	Tiles   []int
}

// NewBoard shuffles a picture into an unsolved arrangement.
func NewBoard(title, caption, art string, size int, rng *rand.Rand) Board {
	runes := []rune(art)
	n := size * size
	for len(runes) < n {
		runes = append(runes, ' ')
	}
	b := Board{Title: title, Caption: caption, Size: size, Art: runes[:n], Tiles: make([]int, n)}
	for i := range b.Tiles {
		b.Tiles[i] = i
	}
	if n < 2 {
		return b
	}
	for b.Solved() {
		rng.Shuffle(n, func(i, j int) { b.Tiles[i], b.Tiles[j] = b.Tiles[j], b.Tiles[i] })
	}
	return b
}

// Swap exchanges the tiles at two positions.
func (b *Board) Swap(p, q int) {
	b.Tiles[p], b.Tiles[q] = b.Tiles[q], b.Tiles[p]
}

// Solved reports whether every tile is home.
func (b Board) Solved() bool {
	for i, t := range b.Tiles {
		if t != i {
			return false
		}
	}
	return true
}

// Glyph returns the picture fragment shown at pos.
func (b Board) Glyph(pos int) rune {
	return b.Art[b.Tiles[pos]]
}

// Misplaced returns the positions whose tile is not home.
func (b Board) Misplaced() []int {
	var out []int
	for i, t := range b.Tiles {
		if t != i {
			out = append(out, i)
		}
	}
	return out
}

func (b Board) clone() Board {
	b.Tiles = slices.Clone(b.Tiles)
	return b
}
