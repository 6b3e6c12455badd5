package card

// Key identifies a printing by collector number and set code
type Key struct {
	CollectorNumber string
	Set             string
}

// String returns the key in output-map form: collector number then set
func (k Key) String() string {
	return k.CollectorNumber + k.Set
}

// Wanted is the set of printings to export
type Wanted map[Key]struct{}

// NewWanted builds a wanted set from keys
func NewWanted(keys ...Key) Wanted {
	w := make(Wanted, len(keys))
	for _, k := range keys {
		w.Add(k)
	}
	return w
}

// Add puts a key in the set
func (w Wanted) Add(k Key) {
	w[k] = struct{}{}
}

// Has reports whether a key is wanted
func (w Wanted) Has(k Key) bool {
	_, ok := w[k]
	return ok
}

// Selects reports whether c is playable and wanted
func (w Wanted) Selects(c Card) bool {
	return Playable(c.Common().Layout) && w.Has(c.Key())
}

// Select keeps every playable card whose key is wanted, in input order.
// Duplicates are kept.
func Select(cards []Card, wanted Wanted) []Card {
	var out []Card
	for _, c := range cards {
		if wanted.Selects(c) {
			out = append(out, c)
		}
	}
	return out
}
