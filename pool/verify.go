package pool

import "fmt"

// Verify walks the ledger and reports the first violated invariant, or nil
// when the ledger is sound. The invariants checked:
//
//   - every region has a positive length
//   - offsets strictly increase and regions tile [0, capacity) with no
//     gaps and no overlaps
//   - region lengths sum to the pool capacity
//   - the chain terminates without revisiting arena slots
//
// Verify is cheap (one linear walk) and is intended to run after every
// mutation in tests.
func (p *Pool) Verify() error {
	if p.closed {
		return ErrClosed
	}

	var sum uint64
	wantOff := uint32(0)
	visited := 0
	for idx := p.head; idx != nilNode; idx = p.nodes[idx].next {
		if idx < 0 || int(idx) >= len(p.nodes) {
			return fmt.Errorf("pool: ledger link out of arena bounds: %d", idx)
		}
		visited++
		if visited > len(p.nodes) {
			return fmt.Errorf("pool: ledger chain has a cycle")
		}

		n := p.nodes[idx]
		if n.size == 0 {
			return fmt.Errorf("pool: zero-length region at offset %d", n.off)
		}
		if n.off != wantOff {
			return fmt.Errorf("pool: region at offset %d breaks coverage, want %d", n.off, wantOff)
		}
		wantOff = n.off + n.size
		sum += uint64(n.size)
	}

	if wantOff != p.cap {
		return fmt.Errorf("pool: ledger ends at %d, want capacity %d", wantOff, p.cap)
	}
	if sum != uint64(p.cap) {
		return fmt.Errorf("pool: region lengths sum to %d, want %d", sum, p.cap)
	}
	return nil
}
