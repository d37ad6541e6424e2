// Package dedupe tracks seen game names within one recommendation response.
package dedupe

// Deduper records seen keys so only the first occurrence survives.
type Deduper interface {
	// SeenAndRecord checks whether key was seen and records it if not.
	// Returns true if key was already seen, false if newly recorded.
	SeenAndRecord(key string) bool

	// Size returns the number of recorded keys.
	Size() int
}

// nameDeduper implements Deduper with a plain map. It is request-scoped:
// the orchestrator builds a fresh one per response and consults it
// strictly in original search order, so first-seen-wins needs no locking.
type nameDeduper struct {
	seen map[string]struct{}
}

// NewNameDeduper creates an empty request-scoped deduper.
func NewNameDeduper() Deduper {
	return &nameDeduper{seen: make(map[string]struct{})}
}

func (d *nameDeduper) SeenAndRecord(key string) bool {
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *nameDeduper) Size() int {
	return len(d.seen)
}
