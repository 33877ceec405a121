package pool

import "log/slog"

// Ref is an opaque handle to a live allocation: the byte offset of the
// region's first byte within the pool.
type Ref uint32

// NilRef is the "no allocation" ref. Resize(NilRef, n) degenerates to
// Alloc(n). Offset 0 is a valid allocation, so the nil value is the
// all-ones offset instead.
const NilRef Ref = 0xFFFFFFFF

// State describes whether a region is available or handed out.
type State uint8

const (
	Free State = iota
	Occupied
)

// String returns "free" or "occupied".
func (s State) String() string {
	if s == Free {
		return "free"
	}
	return "occupied"
}

// Region is a snapshot of one ledger entry, as returned by Regions.
type Region struct {
	Off    uint32 // offset of the region's first byte within the pool
	Length uint32 // extent is [Off, Off+Length)
	State  State
}

// nilNode marks the end of the ledger chain and "no node" lookups.
const nilNode = int32(-1)

// node is a ledger entry. Nodes live in a contiguous arena slice owned by
// the Pool and link to their address-order successor by arena index, so
// merge-deletes recycle slots instead of freeing records.
type node struct {
	off  uint32
	size uint32
	free bool
	next int32
}

// Option configures a Pool at construction.
type Option func(*Pool)

// WithLogger routes the pool's warnings (double frees, foreign refs) to l.
// By default they are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		p.log = l
	}
}
