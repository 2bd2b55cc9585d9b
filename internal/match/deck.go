package match

import "math/rand"

// Deck builds two shuffled cards per key with IDs 1..2n.
func Deck(keys []string, rng *rand.Rand) []Item {
	items := make([]Item, 0, len(keys)*2)
	for _, k := range keys {
		items = append(items, Item{Key: k, Label: k}, Item{Key: k, Label: k})
	}
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	for i := range items {
		items[i].ID = i + 1
	}
	return items
}
