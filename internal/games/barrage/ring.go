package barrage

import "iter"

// Ring is a fixed-capacity slot array with a wrapping write cursor.
// Pushing past capacity overwrites the oldest slot. Only the first Written()
// slots hold meaningful values; iteration never visits the rest.
type Ring[T any] struct {
	slots   []T
	cursor  int // Next slot to write
	written int // Meaningful slots, capped at capacity
}

// NewRing creates a ring of the given capacity. Capacity must be positive.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{slots: make([]T, capacity)}
}

// Cap returns the number of slots.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}

// Cursor returns the slot the next Push writes to.
func (r *Ring[T]) Cursor() int {
	return r.cursor
}

// Written returns how many slots hold meaningful values.
func (r *Ring[T]) Written() int {
	return r.written
}

// Push stores v at the cursor, advances the cursor modulo capacity and
// returns the slot index written.
func (r *Ring[T]) Push(v T) int {
	slot := r.cursor
	r.slots[slot] = v
	r.cursor = (r.cursor + 1) % len(r.slots)
	if r.written < len(r.slots) {
		r.written++
	}
	return slot
}

// At returns a pointer to slot i for in-place updates.
func (r *Ring[T]) At(i int) *T {
	return &r.slots[i]
}

// All yields every meaningful slot in index order.
func (r *Ring[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < r.written; i++ {
			if !yield(i, &r.slots[i]) {
				return
			}
		}
	}
}

// Recent yields the n most recently written slots, oldest first.
func (r *Ring[T]) Recent(n int) iter.Seq2[int, *T] {
	n = min(n, r.written)
	start := r.cursor - n
	if start < 0 {
		start += len(r.slots)
	}
	return func(yield func(int, *T) bool) {
		for k := 0; k < n; k++ {
			i := (start + k) % len(r.slots)
			if !yield(i, &r.slots[i]) {
				return
			}
		}
	}
}

// Reset zeroes every slot and rewinds the cursor.
func (r *Ring[T]) Reset() {
	clear(r.slots)
	r.cursor = 0
	r.written = 0
}
