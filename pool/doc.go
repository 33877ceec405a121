// Package pool implements a fixed-capacity memory pool allocator.
//
// # Overview
//
// A Pool owns one contiguous byte buffer, reserved once at construction and
// released once at Close. The buffer is carved into variable-sized regions
// handed out on request and reclaimed on release. Occupancy is tracked in a
// region ledger: an address-ordered chain of region descriptors that exactly
// tiles the buffer with no gaps and no overlaps.
//
// # Operations
//
// The Pool supports four operations plus teardown:
//
//   - Alloc(size): first-fit search for a free region, splitting it when
//     larger than the request
//   - Free(ref): mark a region free and merge it with free higher-address
//     neighbors
//   - Resize(ref, newSize): keep the region in place when it already fits,
//     otherwise allocate-copy-free
//   - Close(): release the buffer and discard the ledger
//
// # Usage Example
//
//	p, err := pool.New(1 << 20)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	ref, buf, err := p.Alloc(256)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Later, return the region to the pool
//	err = p.Free(ref)
//
// # Allocation Strategy
//
// Alloc scans the ledger in address order and takes the first free region
// large enough for the request. An exact fit flips the region to occupied;
// a larger fit is split into an occupied prefix of the requested size and a
// free remainder. Address-order tie-breaking is part of the contract: of two
// equally suitable regions, the lower-addressed one always wins.
//
// # Merge Direction
//
// Free merges only forward: a newly freed region absorbs free neighbors at
// higher addresses, repeatedly, but is never absorbed into a free region at
// a lower address. Releasing adjacent allocations from highest to lowest
// address therefore collapses them into one region, while releasing them
// lowest-to-highest leaves the boundaries in place until the predecessor is
// freed again.
//
// # References
//
// Refs returned by Alloc and Resize are opaque handles into the pool's
// address space. A Ref stays valid until it is passed to Free, until a
// growing Resize moves the allocation, or until Close. NilRef is the "no
// allocation" value accepted by Resize.
//
// # Thread Safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally; a single coarse lock around the whole Pool is sufficient
// since every operation is a bounded linear walk of the ledger.
package pool
