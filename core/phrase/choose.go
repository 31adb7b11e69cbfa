package phrase

import "math/rand/v2"

// Chooser returns an index in [0, n) for n >= 2. Implementations must be
// safe for concurrent use when the Resolver is shared.
type Chooser func(n int) int

// RandomChooser picks uniformly using the runtime's concurrency-safe source.
var RandomChooser Chooser = rand.IntN

// FirstChooser always picks the first candidate.
var FirstChooser Chooser = func(int) int { return 0 }

// pick selects one candidate: none for an empty list, the sole element for a
// single candidate, and a chooser pick otherwise.
func (r *Resolver) pick(options []string) (string, bool) {
	switch n := len(options); n {
	case 0:
		return "", false
	case 1:
		return options[0], true
	default:
		i := r.choose(n) % n
		if i < 0 {
			i += n
		}
		return options[i], true
	}
}
