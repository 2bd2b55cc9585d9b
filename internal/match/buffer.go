package match

import "slices"

// BufferSize is the most selections that can be pending at once.
const BufferSize = 2

// Buffer holds up to two pending selections in selection order.
type Buffer struct {
	ids []int
}

// Push appends id. It refuses duplicates and a third entry.
func (b *Buffer) Push(id int) bool {
	if b.Full() || b.Contains(id) {
		return false
	}
	b.ids = append(b.ids, id)
	return true
}

// Replace swaps the pending entry at index i for id.
func (b *Buffer) Replace(i, id int) {
	if i >= 0 && i < len(b.ids) {
		b.ids[i] = id
	}
}

// Contains reports whether id is pending.
func (b *Buffer) Contains(id int) bool {
	return slices.Contains(b.ids, id)
}

// Full reports whether the buffer holds BufferSize entries.
func (b *Buffer) Full() bool {
	return len(b.ids) >= BufferSize
}

// Len returns the number of pending entries.
func (b *Buffer) Len() int { return len(b.ids) }

// IDs returns a copy of the pending entries.
func (b *Buffer) IDs() []int { return slices.Clone(b.ids) }

// Clear empties the buffer.
func (b *Buffer) Clear() { b.ids = b.ids[:0] }
