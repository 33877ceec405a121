package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newPool creates a pool that is verified sound and closed when the test ends.
func newPool(t *testing.T, capacity int) *Pool {
	t.Helper()
	p, err := New(capacity)
	require.NoError(t, err)
	require.NoError(t, p.Verify())
	t.Cleanup(func() {
		require.NoError(t, p.Close())
	})
	return p
}

// requireLedger pins the exact ledger shape: offsets, lengths and states in
// address order. It also re-verifies the ledger invariants.
func requireLedger(t *testing.T, p *Pool, want []Region) {
	t.Helper()
	require.NoError(t, p.Verify())
	require.Equal(t, want, p.Regions())
}

// mustAlloc allocates and fails the test on any error.
func mustAlloc(t *testing.T, p *Pool, size int) (Ref, []byte) {
	t.Helper()
	ref, buf, err := p.Alloc(size)
	require.NoError(t, err)
	require.Len(t, buf, size)
	return ref, buf
}
