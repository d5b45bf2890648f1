package systems

import "github.com/pthm-cable/ballchase/components"

// Eliminate removes every ball that overlaps the predator.
// Back-references to an eaten ball are purged from its partners and its entry
// leaves index before the ball is dropped. Survivors keep their relative order
// and reuse pop's backing array.
func Eliminate(pop []*components.Ball, e *components.Evil, index map[uint64]*components.Ball) (kept, eaten []*components.Ball) {
	kept = pop[:0]
	for _, b := range pop {
		if !e.Overlaps(&b.Shape) {
			kept = append(kept, b)
			continue
		}

		for id := range b.Collision {
			if partner, ok := index[id]; ok {
				delete(partner.Collision, b.ID)
			}
		}
		delete(index, b.ID)
		eaten = append(eaten, b)
	}

	// drop stale pointers past the new length
	clear(pop[len(kept):])
	return kept, eaten
}
