package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Resize_GrowCopiesContents(t *testing.T) {
	p := newPool(t, 100)

	ref, buf := mustAlloc(t, p, 10)
	for i := range buf {
		buf[i] = byte(0x10 + i)
	}

	newRef, newBuf, err := p.Resize(ref, 50)
	require.NoError(t, err)
	require.NotEqual(t, ref, newRef)
	require.Len(t, newBuf, 50)

	// The first 10 bytes moved with the allocation.
	for i := 0; i < 10; i++ {
		require.Equal(t, byte(0x10+i), newBuf[i], "byte %d lost in resize", i)
	}

	// The old region is free again; the moved allocation follows it.
	requireLedger(t, p, []Region{
		{Off: 0, Length: 10, State: Free},
		{Off: 10, Length: 50, State: Occupied},
		{Off: 60, Length: 40, State: Free},
	})
}

func Test_Resize_ShrinkKeepsRegionInPlace(t *testing.T) {
	p := newPool(t, 100)

	ref, _ := mustAlloc(t, p, 40)

	newRef, buf, err := p.Resize(ref, 10)
	require.NoError(t, err)
	require.Equal(t, ref, newRef)
	// No shrink-in-place split: the region keeps its full length.
	require.Len(t, buf, 40)

	requireLedger(t, p, []Region{
		{Off: 0, Length: 40, State: Occupied},
		{Off: 40, Length: 60, State: Free},
	})
}

func Test_Resize_SameSizeKeepsRegionInPlace(t *testing.T) {
	p := newPool(t, 100)

	ref, _ := mustAlloc(t, p, 40)
	newRef, buf, err := p.Resize(ref, 40)
	require.NoError(t, err)
	require.Equal(t, ref, newRef)
	require.Len(t, buf, 40)
}

func Test_Resize_NilRefDegeneratesToAlloc(t *testing.T) {
	p := newPool(t, 100)

	ref, buf, err := p.Resize(NilRef, 25)
	require.NoError(t, err)
	require.Equal(t, Ref(0), ref)
	require.Len(t, buf, 25)

	requireLedger(t, p, []Region{
		{Off: 0, Length: 25, State: Occupied},
		{Off: 25, Length: 75, State: Free},
	})
}

func Test_Resize_FailedGrowLosesNothing(t *testing.T) {
	p := newPool(t, 100)

	ref, buf := mustAlloc(t, p, 60)
	for i := range buf {
		buf[i] = 0xEE
	}
	want := p.Regions()

	// Growing to 80 needs a fresh 80-byte region; only 40 bytes are free.
	_, _, err := p.Resize(ref, 80)
	require.ErrorIs(t, err, ErrOutOfSpace)

	// Old region untouched, contents intact.
	requireLedger(t, p, want)
	view, err := p.Bytes(ref)
	require.NoError(t, err)
	for i := range view {
		require.Equal(t, byte(0xEE), view[i])
	}
}

func Test_Resize_RejectsForeignRef(t *testing.T) {
	p := newPool(t, 100)

	ref, _ := mustAlloc(t, p, 20)
	require.NoError(t, p.Free(ref))
	want := p.Regions()

	// A freed region's offset is no longer a live allocation.
	_, _, err := p.Resize(ref, 10)
	require.ErrorIs(t, err, ErrForeignRef)
	_, _, err = p.Resize(Ref(999), 10)
	require.ErrorIs(t, err, ErrForeignRef)

	requireLedger(t, p, want)
}

func Test_Resize_OversizedGrowCannotWrap(t *testing.T) {
	p := newPool(t, 100)

	ref, buf := mustAlloc(t, p, 10)
	for i := range buf {
		buf[i] = 0x5A
	}
	want := p.Regions()

	// A grow at or beyond the uint32 boundary must fail, not wrap modulo
	// 2^32 into "already big enough, keep as-is".
	for _, size := range []int{maxPoolSize + 1, 1 << 32, 1<<32 + 1} {
		_, _, err := p.Resize(ref, size)
		require.ErrorIs(t, err, ErrOutOfSpace, "size %d", size)
	}

	// Same bound on the degenerate-to-Alloc path.
	_, _, err := p.Resize(NilRef, 1<<32+1)
	require.ErrorIs(t, err, ErrOutOfSpace)

	// Old region untouched, contents intact.
	requireLedger(t, p, want)
	view, err := p.Bytes(ref)
	require.NoError(t, err)
	for i := range view {
		require.Equal(t, byte(0x5A), view[i])
	}
}

func Test_Resize_RejectsNonPositiveSize(t *testing.T) {
	p := newPool(t, 100)

	ref, _ := mustAlloc(t, p, 20)
	_, _, err := p.Resize(ref, 0)
	require.ErrorIs(t, err, ErrBadSize)
	_, _, err = p.Resize(ref, -5)
	require.ErrorIs(t, err, ErrBadSize)
}

func Test_Resize_GrowCanReuseForwardMergedSpace(t *testing.T) {
	p := newPool(t, 100)

	a, _ := mustAlloc(t, p, 30)
	b, bufB := mustAlloc(t, p, 30)
	bufB[0] = 0x42
	require.NoError(t, p.Free(a))

	// Only the tail hole fits 40, so the allocation moves there. Freeing
	// b's old region finds an occupied successor (the moved allocation),
	// and forward-only merging leaves the boundary with the free region
	// before it in place.
	newRef, newBuf, err := p.Resize(b, 40)
	require.NoError(t, err)
	require.Equal(t, Ref(60), newRef)
	require.Equal(t, byte(0x42), newBuf[0])

	requireLedger(t, p, []Region{
		{Off: 0, Length: 30, State: Free},
		{Off: 30, Length: 30, State: Free},
		{Off: 60, Length: 40, State: Occupied},
	})
}
