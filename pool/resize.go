package pool

// Resize grows or keeps an allocation and returns its (possibly new) ref
// plus payload slice.
//
// NilRef means "no prior allocation" and degenerates to Alloc(newSize).
// A region whose current length already covers newSize is returned as-is:
// it keeps its full length, and no shrink-in-place split is performed.
// Otherwise a fresh region is allocated, the old region's contents are
// copied into it, and the old region is freed. When the fresh allocation
// fails the old region is left untouched, so a failed grow loses no data.
func (p *Pool) Resize(ref Ref, newSize int) (Ref, []byte, error) {
	if p.closed {
		return NilRef, nil, ErrClosed
	}
	p.stats.ResizeCalls++

	if ref == NilRef {
		return p.Alloc(newSize)
	}
	if newSize <= 0 {
		return NilRef, nil, ErrBadSize
	}
	if newSize > maxPoolSize {
		// Can never fit, and must not wrap in the uint32 comparison below.
		return NilRef, nil, ErrOutOfSpace
	}

	idx := p.lookup(uint32(ref))
	if idx == nilNode || p.nodes[idx].free {
		p.log.Warn("resize of ref not allocated from this pool", "ref", uint32(ref))
		return NilRef, nil, ErrForeignRef
	}

	// Copy the descriptor: Alloc below may grow the arena slice and vacated
	// slots may be recycled, but the old region's bytes stay in place.
	old := p.nodes[idx]
	if old.size >= uint32(newSize) {
		return ref, p.payload(old), nil
	}

	newRef, dst, err := p.Alloc(newSize)
	if err != nil {
		return NilRef, nil, err
	}
	copy(dst, p.buf[old.off:old.off+old.size])
	if err := p.Free(ref); err != nil {
		// Unreachable: ref was just validated as a live allocation.
		return NilRef, nil, err
	}
	return newRef, dst, nil
}
