package session

import (
	"math/rand"

	"github.com/vovakirdan/love-no-jutsu/internal/core"
)

// Category decides whether interacting with an entity counts as correct.
type Category int

const (
	CategoryCorrect Category = iota
	CategoryIncorrect
)

func (c Category) String() string {
	if c == CategoryCorrect {
		return "correct"
	}
	return "incorrect"
}

// EntityState is the lifecycle of a spawned entity.
type EntityState int

const (
	EntityActive EntityState = iota
	EntityResolved
)

// Entity is a spawned, interactive object.
type Entity struct {
	ID       int
	Pos      core.Vec
	Kind     string // Display label, e.g. an icon name
	Category Category
	State    EntityState
}

// SpawnOption is one weighted entry of a spawn pool.
type SpawnOption struct {
	Kind     string
	Category Category
	Weight   int
}

// Pool is a weighted set of spawn options.
type Pool []SpawnOption

// Pick draws one option proportionally to its weight.
// Options with a non-positive weight are never drawn.
func (p Pool) Pick(rng *rand.Rand) SpawnOption {
	total := 0
	for _, o := range p {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total == 0 {
		return SpawnOption{}
	}
	n := rng.Intn(total)
	for _, o := range p {
		if o.Weight <= 0 {
			continue
		}
		if n < o.Weight {
			return o
		}
		n -= o.Weight
	}
	return p[len(p)-1]
}
