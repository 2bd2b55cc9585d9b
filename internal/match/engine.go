// Package match implements pairwise selection and comparison for the
// memory and sorting levels.
//
// At most two selections are pending. Once a comparison starts the engine
// holds a checking lock until its display delay elapses, and every select
// in the meantime is ignored.
package match

import (
	"slices"
	"time"
)

// Mode selects the equality rule.
type Mode int

const (
	// ModePairs matches two cards with the same key.
	ModePairs Mode = iota
	// ModeSort matches an item with the drop target named by its key.
	ModeSort
)

// ItemState is the visible state of a card or item.
type ItemState int

const (
	Hidden ItemState = iota
	Selected
	Matched
)

// Item is one selectable card, trait or drop target.
type Item struct {
	ID     int
	Key    string // Pair id, or correct category for sort items, or zone name for targets
	Label  string
	Target bool // Drop target (sort mode only); never matched itself
	State  ItemState
}

// Result is what a select or tick produced.
type Result int

const (
	ResultIgnored Result = iota
	ResultPending
	ResultMatch
	ResultMismatch
	ResultReleased // The checking lock was released
)

func (r Result) String() string {
	switch r {
	case ResultPending:
		return "pending"
	case ResultMatch:
		return "match"
	case ResultMismatch:
		return "mismatch"
	case ResultReleased:
		return "released"
	default:
		return "ignored"
	}
}

// Delays configures how long a comparison stays on display.
type Delays struct {
	Match    time.Duration
	Mismatch time.Duration
}

// Engine runs the selection buffer and comparison for one session.
type Engine struct {
	mode    Mode
	delays  Delays
	items   []Item
	pending Buffer

	checking  bool
	checkLeft time.Duration
	lastMatch bool

	matched int
	total   int
	moves   int
}

// New creates an engine over items. Item IDs must be unique.
func New(mode Mode, items []Item, delays Delays) *Engine {
	e := &Engine{mode: mode, delays: delays, items: slices.Clone(items)}
	for i := range e.items {
		e.items[i].State = Hidden
		if !e.items[i].Target {
			e.total++
		}
	}
	if mode == ModePairs {
		e.total /= 2
	}
	return e
}

func (e *Engine) index(id int) int {
	return slices.IndexFunc(e.items, func(it Item) bool { return it.ID == id })
}

// Select handles a player pick. It reports ResultPending while the buffer
// fills, ResultMatch or ResultMismatch when a comparison starts, and
// ResultIgnored when the pick is not allowed.
func (e *Engine) Select(id int) Result {
	if e.checking || e.Complete() {
		return ResultIgnored
	}
	i := e.index(id)
	if i < 0 {
		return ResultIgnored
	}
	it := e.items[i]
	if it.State == Matched || e.pending.Contains(id) || e.pending.Full() {
		return ResultIgnored
	}

	if e.mode == ModeSort {
		switch {
		case it.Target && e.pending.Len() == 0:
			return ResultIgnored
		case !it.Target && e.pending.Len() == 1:
			// Picking another item replaces the held one.
			prev := e.index(e.pending.IDs()[0])
			e.items[prev].State = Hidden
			e.pending.Replace(0, id)
			e.items[i].State = Selected
			return ResultPending
		}
	}

	e.pending.Push(id)
	e.items[i].State = Selected
	if !e.pending.Full() {
		return ResultPending
	}
	return e.compare()
}

func (e *Engine) compare() Result {
	ids := e.pending.IDs()
	a, b := e.index(ids[0]), e.index(ids[1])
	e.moves++
	e.checking = true
	e.lastMatch = e.items[a].Key == e.items[b].Key

	if e.lastMatch {
		e.matched++
		e.items[a].State = Matched
		if !e.items[b].Target {
			e.items[b].State = Matched
		}
		e.checkLeft = e.delays.Match
	} else {
		e.checkLeft = e.delays.Mismatch
	}
	if e.checkLeft <= 0 {
		e.release()
	}
	if e.lastMatch {
		return ResultMatch
	}
	return ResultMismatch
}

// Advance runs the display delay down. It returns ResultReleased on the
// tick the checking lock is released.
func (e *Engine) Advance(dt time.Duration) Result {
	if !e.checking {
		return ResultIgnored
	}
	e.checkLeft -= dt
	if e.checkLeft > 0 {
		return ResultIgnored
	}
	e.release()
	return ResultReleased
}

func (e *Engine) release() {
	for _, id := range e.pending.IDs() {
		i := e.index(id)
		if e.items[i].State == Selected {
			e.items[i].State = Hidden
		}
	}
	e.pending.Clear()
	e.checking = false
	e.checkLeft = 0
}

// Checking reports whether a comparison is on display.
func (e *Engine) Checking() bool { return e.checking }

// Pending returns the IDs awaiting comparison.
func (e *Engine) Pending() []int { return e.pending.IDs() }

// Complete reports matched == total.
func (e *Engine) Complete() bool { return e.total > 0 && e.matched == e.total }

// Matched returns the number of successful comparisons.
func (e *Engine) Matched() int { return e.matched }

// Total returns the number of matches needed to finish.
func (e *Engine) Total() int { return e.total }

// Moves returns the number of comparisons made.
func (e *Engine) Moves() int { return e.moves }

// Items returns a copy of all items in their current state.
func (e *Engine) Items() []Item { return slices.Clone(e.items) }

// Item returns the item with the given id.
func (e *Engine) Item(id int) (Item, bool) {
	i := e.index(id)
	if i < 0 {
		return Item{}, false
	}
	return e.items[i], true
}
