package batch

import "github.com/bft-labs/stoich/pkg/reaction"

// Item is one batch record as delivered by a source. Err marks a record the
// source could not decode; the runner reports it as a Failure at the item's
// position instead of calculating it.
type Item struct {
	Input reaction.Input
	Err   error
}

// Items wraps decoded inputs, keeping their order.
func Items(inputs []reaction.Input) []Item {
	items := make([]Item, len(inputs))
	for i, in := range inputs {
		items[i] = Item{Input: in}
	}
	return items
}
