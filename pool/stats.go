package pool

// Stats holds allocator counters and an occupancy snapshot.
//
// The counter fields accumulate over the pool's lifetime; the occupancy
// fields (BytesInUse through RegionCount) describe the ledger at the moment
// Stats was called.
type Stats struct {
	AllocCalls  int   // Alloc calls, including failed ones
	FreeCalls   int   // Free calls, including rejected ones
	ResizeCalls int   // Resize calls
	Splits      int   // regions split by Alloc
	Merges      int   // successor regions absorbed by Free

	BytesAllocated int64 // total bytes handed out over the pool's lifetime
	BytesFreed     int64 // total bytes returned over the pool's lifetime

	BytesInUse  int64 // bytes currently in occupied regions
	BytesFree   int64 // bytes currently in free regions
	LargestFree int   // length of the largest free region
	RegionCount int   // live ledger entries
}

// Stats returns the pool's counters plus a snapshot of current occupancy.
func (p *Pool) Stats() Stats {
	s := p.stats
	if p.closed {
		return s
	}
	for idx := p.head; idx != nilNode; idx = p.nodes[idx].next {
		n := p.nodes[idx]
		s.RegionCount++
		if n.free {
			s.BytesFree += int64(n.size)
			if int(n.size) > s.LargestFree {
				s.LargestFree = int(n.size)
			}
		} else {
			s.BytesInUse += int64(n.size)
		}
	}
	return s
}
