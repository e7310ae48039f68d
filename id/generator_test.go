package id_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperlath/id"
)

const (
	nMinters       = 16
	nMintPerWorker = 500
)

func TestCounter_MonotonicAndSaturating(t *testing.T) {
	c := id.NewCounter[uint8](253)

	for _, want := range []uint8{253, 254, 255} {
		got, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Exhausted: the counter never wraps back to 0.
	_, err := c.Next()
	assert.ErrorIs(t, err, id.ErrIndexOutOfBounds)
	_, err = c.Next()
	assert.ErrorIs(t, err, id.ErrIndexOutOfBounds)
}

func TestCounter_SaturatesSigned(t *testing.T) {
	c := id.NewCounter[int8](126)
	for _, want := range []int8{126, 127} {
		got, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := c.Next()
	assert.ErrorIs(t, err, id.ErrIndexOutOfBounds)

	// A zero Counter starts at 0 and saturates like a constructed one.
	var z id.Counter[uint8]
	z.AdvancePast(id.MaxIndex[uint8]())
	_, err = z.Next()
	assert.ErrorIs(t, err, id.ErrIndexOutOfBounds)
	assert.Equal(t, uint8(0), new(id.Counter[uint8]).Peek())
}

func TestCounter_AdvancePastAndClone(t *testing.T) {
	c := id.NewCounter[uint32](0)
	c.AdvancePast(9)
	assert.Equal(t, uint32(10), c.Peek())

	// Advancing to an index behind the cursor is a no-op.
	c.AdvancePast(3)
	assert.Equal(t, uint32(10), c.Peek())

	clone := c.Clone()
	a, _ := c.Next()
	b, _ := clone.Next()
	assert.Equal(t, a, b, "clone continues from the same state")

	a, _ = c.Next()
	assert.Equal(t, uint32(11), a)
	b, _ = clone.Next()
	assert.Equal(t, uint32(11), b, "clone advances independently")
}

func TestAtomicCounter_ConcurrentMintingIsUnique(t *testing.T) {
	c := id.NewAtomicCounter[uint64](100)

	var (
		mu   sync.Mutex
		seen = make(map[uint64]struct{}, nMinters*nMintPerWorker)
	)
	var g errgroup.Group
	for w := 0; w < nMinters; w++ {
		g.Go(func() error {
			local := make([]uint64, 0, nMintPerWorker)
			for i := 0; i < nMintPerWorker; i++ {
				local = append(local, c.AtomicNext())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				seen[v] = struct{}{}
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, seen, nMinters*nMintPerWorker)
	next, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(100+nMinters*nMintPerWorker), next)
}

func TestAtomicCounter_WrapsAtWidth(t *testing.T) {
	c := id.NewAtomicCounter[uint8](255)
	assert.Equal(t, uint8(255), c.AtomicNext())
	assert.Equal(t, uint8(0), c.AtomicNext())

	c.Reset(7)
	assert.Equal(t, uint8(7), c.AtomicNext())

	c.AdvancePast(20)
	assert.Equal(t, uint8(21), c.AtomicNext())

	assert.Same(t, c, c.Clone(), "atomic counters are shared, not copied")
}

func TestRandom_SeededIsReproducible(t *testing.T) {
	a := id.NewRandom[uint32](42)
	b := id.NewRandom[uint32](42)
	for i := 0; i < 32; i++ {
		x, err := a.Next()
		require.NoError(t, err)
		y, _ := b.Next()
		assert.Equal(t, x, y)
	}

	zero1 := id.NewRandom[int16](0)
	zero2 := id.NewRandom[int16](0)
	x, _ := zero1.Next()
	y, _ := zero2.Next()
	assert.Equal(t, x, y, "seed 0 selects the fixed default seed")

	c1 := a.Clone()
	c2 := a.Clone()
	v1, _ := c1.Next()
	v2, _ := c2.Next()
	assert.NotEqual(t, v1, v2, "successive clones use distinct streams")
}
