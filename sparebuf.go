package sparebuf

import (
	"fmt"
	"slices"
)

// SpareBuffer wraps one owned slice and mediates all access to its trailing
// spare capacity. The committed prefix [0, Len()) always holds valid values;
// the spare region [Len(), Cap()) is addressable but its contents are not
// valid until committed. Not goroutine-safe: the buffer assumes one exclusive
// owner at a time.
type SpareBuffer[T any] struct {
	buf    []T
	limit  int  // max committed length, 0 means unlimited
	viewed bool // a spare view is outstanding
	taken  bool
}

// New creates a SpareBuffer backed by a fresh slice with the given capacity
// hint and length zero. If capacity <= 0, the buffer starts unallocated and
// grows on the first Reserve.
func New[T any](capacity int) *SpareBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &SpareBuffer[T]{buf: make([]T, 0, capacity)}
}

// Wrap creates a SpareBuffer that takes ownership of an existing slice. The
// slice's current elements form the committed prefix; its unused capacity
// becomes the spare region. The caller must not use s directly afterward.
func Wrap[T any](s []T) *SpareBuffer[T] {
	return &SpareBuffer[T]{buf: s}
}

// Spare returns a mutable view over the spare region, of length SpareLen().
// Writing any element through the view is memory-safe; the slots are
// allocated, merely not yet valid. The view stays valid until the next
// Reserve, Commit, Truncate or Reset call, after which it must be re-obtained.
// Repeated calls with no intervening mutation return views over the same
// memory.
//
// The returned slice can be passed to io.Reader.Read or similar routines.
// Its contents are unspecified until written; callers should only write
// through it, never read.
func (b *SpareBuffer[T]) Spare() []T {
	b.panicIfTaken()
	b.viewed = true
	return b.buf[len(b.buf):cap(b.buf)]
}

// Reserve ensures the spare region holds at least additional elements,
// growing the backing slice if needed. Growth may over-allocate to amortize
// future reservations; the growth policy is the runtime's. Existing committed
// elements keep their values and order. Any previously obtained spare view is
// invalidated and must be re-acquired.
//
// Returns ErrAllocationFailure for requests that can never be satisfied
// (negative or overflowing additional), leaving the buffer unchanged. The
// grow itself is all-or-nothing: the new backing store is fully built before
// it replaces the old one.
func (b *SpareBuffer[T]) Reserve(additional int) error {
	b.panicIfTaken()
	if additional < 0 {
		return fmt.Errorf("sparebuf: reserve %d elements: %w", additional, ErrAllocationFailure)
	}
	if len(b.buf)+additional < 0 { // overflow
		return fmt.Errorf("sparebuf: reserve %d on top of %d elements: %w", additional, len(b.buf), ErrAllocationFailure)
	}
	b.viewed = false
	b.buf = slices.Grow(b.buf, additional)
	return nil
}

// Commit reclassifies the first n elements of the spare region as committed,
// extending the logical length by n without copying. A spare view must be
// outstanding, and the caller asserts that slots [Len(), Len()+n) were
// written through that view; the buffer cannot verify this. Committing slots
// that were never written makes their unspecified contents observable as
// valid data.
//
// On success the outstanding view is consumed; a new one must be obtained
// from Spare() to append more data. On error the buffer is unchanged.
//
// Returns ErrBorrowConflict if no spare view is outstanding, ErrOutOfBounds
// if n is negative or exceeds SpareLen(), and ErrLimitExceeded if the new
// length would pass the configured limit.
func (b *SpareBuffer[T]) Commit(n int) error {
	b.panicIfTaken()
	if !b.viewed {
		return fmt.Errorf("sparebuf: commit without an outstanding spare view: %w", ErrBorrowConflict)
	}
	if n < 0 || n > b.SpareLen() {
		return fmt.Errorf("sparebuf: commit %d of %d spare elements: %w", n, b.SpareLen(), ErrOutOfBounds)
	}
	if b.limit > 0 && len(b.buf)+n > b.limit {
		return fmt.Errorf("sparebuf: commit %d elements past limit %d: %w", n, b.limit, ErrLimitExceeded)
	}
	b.viewed = false
	b.buf = b.buf[:len(b.buf)+n]
	return nil
}

// CommitUnchecked is Commit without the view, bounds and limit checks. It is
// the single operation whose misuse yields unspecified buffer contents rather
// than a reported error: the caller alone guarantees that a spare view was
// obtained and that its first n slots were written. Use with great care.
//
// Still panics if n extends past the allocated capacity, since the backing
// slice cannot be lengthened beyond it.
func (b *SpareBuffer[T]) CommitUnchecked(n int) {
	b.panicIfTaken()
	b.viewed = false
	b.buf = b.buf[:len(b.buf)+n]
}

// Truncate reduces the committed length to n, returning the vacated slots to
// the spare region. Vacated elements are cleared exactly once so any
// resources they reference can be reclaimed; they are never observable as
// valid afterward. Any outstanding spare view is invalidated.
//
// Returns ErrOutOfBounds if n is negative or greater than Len(), leaving the
// buffer unchanged. Truncate(Len()) leaves the contents untouched.
func (b *SpareBuffer[T]) Truncate(n int) error {
	b.panicIfTaken()
	if n < 0 || n > len(b.buf) {
		return fmt.Errorf("sparebuf: truncate to %d of %d elements: %w", n, len(b.buf), ErrOutOfBounds)
	}
	b.viewed = false
	clear(b.buf[n:])
	b.buf = b.buf[:n]
	return nil
}

// Reset truncates the committed length to zero, keeping the allocated
// capacity for reuse. Equivalent to Truncate(0).
func (b *SpareBuffer[T]) Reset() {
	b.panicIfTaken()
	b.viewed = false
	clear(b.buf)
	b.buf = b.buf[:0]
}

// SetLimit caps the committed length at n elements; Commit fails with
// ErrLimitExceeded rather than grow past it. A limit of 0 (the default)
// means unlimited. The limit constrains future commits only; it does not
// shrink an already longer buffer.
func (b *SpareBuffer[T]) SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	b.limit = n
}

// Limit returns the configured committed-length limit, or 0 if unlimited.
func (b *SpareBuffer[T]) Limit() int {
	return b.limit
}

// Len returns the number of committed elements.
func (b *SpareBuffer[T]) Len() int {
	return len(b.buf)
}

// Cap returns the total allocated capacity in elements.
func (b *SpareBuffer[T]) Cap() int {
	return cap(b.buf)
}

// SpareLen returns the number of spare (allocated, uncommitted) elements.
func (b *SpareBuffer[T]) SpareLen() int {
	return cap(b.buf) - len(b.buf)
}

// IsEmpty reports whether the buffer holds no committed elements.
func (b *SpareBuffer[T]) IsEmpty() bool {
	return len(b.buf) == 0
}

// Data returns the committed elements as a slice. The slice shares memory
// with the buffer but its capacity is clipped to its length, so appending to
// it cannot alias the spare region.
func (b *SpareBuffer[T]) Data() []T {
	return b.buf[:len(b.buf):len(b.buf)]
}

// Take returns the underlying slice and consumes the wrapper, transferring
// exclusive ownership back to the caller. The slice's length is the committed
// length; its spare capacity is ordinary unused slice capacity again. Any
// subsequent operation on the buffer panics.
func (b *SpareBuffer[T]) Take() []T {
	b.panicIfTaken()
	s := b.buf
	b.buf = nil
	b.viewed = false
	b.taken = true
	return s
}

// panicIfTaken panics if the wrapper has been consumed by Take.
func (b *SpareBuffer[T]) panicIfTaken() {
	if b.taken {
		panic("sparebuf: use after Take()")
	}
}
