package id

import (
	"math/rand"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Generator mints raw indices for one identifier kind.
//
// Next returns a fresh index or an error when the strategy cannot produce one
// (ErrIndexOutOfBounds for an exhausted Counter). Clone returns a generator
// that continues independently from the current state; strategies that are
// shared by construction (AtomicCounter) return themselves.
type Generator[T Index] interface {
	Next() (T, error)
	Clone() Generator[T]
}

// Advancer is implemented by generators that can skip past an index that was
// assigned outside of them, so a later Next never collides with it.
type Advancer[T Index] interface {
	AdvancePast(raw T)
}

// Counter is a monotonic, saturating generator. It is not goroutine-safe;
// one Counter belongs to one graph cursor.
type Counter[T Index] struct {
	next      T
	exhausted bool
}

// NewCounter returns a Counter whose first Next yields start.
func NewCounter[T Index](start T) *Counter[T] {
	return &Counter[T]{next: start}
}

// Next returns the current index and advances by one.
// After MaxIndex[T] has been returned every call fails with ErrIndexOutOfBounds.
// Complexity: O(1).
func (c *Counter[T]) Next() (T, error) {
	if c.exhausted {
		var zero T

		return zero, errors.Wrapf(ErrIndexOutOfBounds, "counter exhausted at %s", Kind[T]())
	}
	v := c.next
	c.advance(v)

	return v, nil
}

// advance moves next to raw+1, or marks the counter exhausted when raw+1
// wraps past the maximum of T.
func (c *Counter[T]) advance(raw T) {
	if n := raw + 1; n > raw {
		c.next = n
	} else {
		c.exhausted = true
	}
}

// Peek returns the index the next call to Next would yield.
func (c *Counter[T]) Peek() T { return c.next }

// AdvancePast moves the counter beyond raw if raw is not behind it already.
func (c *Counter[T]) AdvancePast(raw T) {
	if c.exhausted || raw < c.next {
		return
	}
	c.advance(raw)
}

// Clone implements Generator.
func (c *Counter[T]) Clone() Generator[T] {
	cp := *c

	return &cp
}

// AtomicCounter is a lock-free fetch-and-increment generator.
//
// Unlike Counter it may be shared: several graphs (or goroutines) holding the
// same *AtomicCounter mint globally unique indices without coordination, as
// long as fewer than 2^width(T) indices are requested. Past that point the
// counter wraps modulo 2^width(T).
type AtomicCounter[T Index] struct {
	n atomic.Uint64
}

// NewAtomicCounter returns an AtomicCounter whose first index is start.
func NewAtomicCounter[T Index](start T) *AtomicCounter[T] {
	c := &AtomicCounter[T]{}
	c.n.Store(uint64(start))

	return c
}

// AtomicNext returns the current index and advances by one atomically.
// Complexity: O(1), lock-free.
func (c *AtomicCounter[T]) AtomicNext() T {
	return T(c.n.Add(1) - 1)
}

// Next implements Generator. It never fails.
func (c *AtomicCounter[T]) Next() (T, error) {
	return c.AtomicNext(), nil
}

// AdvancePast moves the counter beyond raw with a CAS loop.
func (c *AtomicCounter[T]) AdvancePast(raw T) {
	want := uint64(raw) + 1
	for {
		cur := c.n.Load()
		if T(cur) > raw || c.n.CompareAndSwap(cur, want) {
			return
		}
	}
}

// Reset rewinds the counter to start. Intended for tests.
func (c *AtomicCounter[T]) Reset(start T) {
	c.n.Store(uint64(start))
}

// Clone returns c itself: an AtomicCounter is shared by design.
func (c *AtomicCounter[T]) Clone() Generator[T] { return c }

// defaultRandomSeed is used when callers pass seed == 0.
const defaultRandomSeed int64 = 1

// Random samples indices uniformly over the whole domain of T.
// It does not guarantee uniqueness; the engine reports collisions as
// core.ErrDuplicateIndex. Not goroutine-safe.
type Random[T Index] struct {
	seed   int64
	stream uint64
	rng    *rand.Rand
}

// NewRandom returns a seeded Random generator. seed == 0 selects a fixed
// default seed so unseeded fixtures stay reproducible.
func NewRandom[T Index](seed int64) *Random[T] {
	if seed == 0 {
		seed = defaultRandomSeed
	}

	return &Random[T]{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Next implements Generator by truncating a uniform 64-bit sample to T,
// which keeps the distribution uniform for every integer width.
func (r *Random[T]) Next() (T, error) {
	return T(r.rng.Uint64()), nil
}

// Clone returns an independent stream derived from the parent seed.
func (r *Random[T]) Clone() Generator[T] {
	r.stream++
	s := deriveSeed(r.seed, r.stream)

	return &Random[T]{seed: s, rng: rand.New(rand.NewSource(s))}
}

// deriveSeed mixes a parent seed and a stream number with a SplitMix64
// finalizer so derived streams are decorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return defaultRandomSeed
	}

	return int64(x)
}
