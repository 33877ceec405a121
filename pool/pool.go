package pool

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/memtools/poolkit/internal/mmbuf"
)

// maxPoolSize is the maximum pool capacity. Refs are uint32 offsets with
// NilRef reserved, so capacities stay below 2GB.
const maxPoolSize = 0x7FFFFFFF

// Pool is a fixed-capacity memory pool allocator. It owns one contiguous
// buffer and a region ledger that partitions the buffer's address range.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	// buf is the reserved pool memory; release unmaps it on Close.
	buf     []byte
	release func() error
	cap     uint32

	// Ledger arena: nodes[head] is the lowest-addressed region and each
	// node links to its address-order successor by index. Slots vacated
	// by merges are recycled through freeSlots.
	nodes     []node
	head      int32
	freeSlots []int32

	log    *slog.Logger
	stats  Stats
	closed bool
}

// New reserves a pool buffer of exactly capacity bytes and installs a
// single free region covering all of it. The reservation is released by
// Close; until then the buffer is owned exclusively by the Pool.
func New(capacity int, opts ...Option) (*Pool, error) {
	if capacity <= 0 || capacity > maxPoolSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	buf, release, err := mmbuf.Reserve(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReservationFailed, err)
	}

	p := &Pool{
		buf:     buf,
		release: release,
		cap:     uint32(capacity),
		nodes:   make([]node, 0, 8),
		head:    0,
	}
	p.nodes = append(p.nodes, node{off: 0, size: p.cap, free: true, next: nilNode})

	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p, nil
}

// Close releases the pool buffer and discards the ledger. It is safe to
// call more than once; every other operation on a closed pool returns
// ErrClosed. Refs handed out by the pool are invalid after Close.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.buf = nil
	p.nodes = nil
	p.freeSlots = nil
	p.head = nilNode

	release := p.release
	p.release = nil
	if release != nil {
		return release()
	}
	return nil
}

// Capacity returns the fixed size of the pool buffer in bytes.
func (p *Pool) Capacity() int {
	return int(p.cap)
}

// Bytes returns the payload slice for a live allocation. The slice aliases
// pool memory and is valid under the same rules as the ref itself.
func (p *Pool) Bytes(ref Ref) ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if ref == NilRef {
		return nil, ErrNilRef
	}
	idx := p.lookup(uint32(ref))
	if idx == nilNode || p.nodes[idx].free {
		return nil, ErrForeignRef
	}
	return p.payload(p.nodes[idx]), nil
}

// Regions returns a snapshot of the ledger in address order. Intended for
// inspection and tests; the snapshot does not alias pool state.
func (p *Pool) Regions() []Region {
	if p.closed {
		return nil
	}
	out := make([]Region, 0, len(p.nodes)-len(p.freeSlots))
	for idx := p.head; idx != nilNode; idx = p.nodes[idx].next {
		n := p.nodes[idx]
		st := Free
		if !n.free {
			st = Occupied
		}
		out = append(out, Region{Off: n.off, Length: n.size, State: st})
	}
	return out
}

// lookup returns the arena index of the region whose offset equals off,
// or nilNode. Addresses interior to a region do not match: a ref is only
// ever a region's first byte.
func (p *Pool) lookup(off uint32) int32 {
	for idx := p.head; idx != nilNode; idx = p.nodes[idx].next {
		if p.nodes[idx].off == off {
			return idx
		}
	}
	return nilNode
}

// newNode places n in the arena, reusing a vacated slot when one exists,
// and returns its index. May grow the arena slice; callers must not hold
// *node pointers across a call.
func (p *Pool) newNode(n node) int32 {
	if last := len(p.freeSlots) - 1; last >= 0 {
		idx := p.freeSlots[last]
		p.freeSlots = p.freeSlots[:last]
		p.nodes[idx] = n
		return idx
	}
	p.nodes = append(p.nodes, n)
	return int32(len(p.nodes) - 1)
}

// payload returns the pool bytes covered by n, capped so callers cannot
// write past the region into its neighbor.
func (p *Pool) payload(n node) []byte {
	return p.buf[n.off : n.off+n.size : n.off+n.size]
}
