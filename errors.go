package sparebuf

import "errors"

// ErrOutOfBounds is returned when a commit or truncate length exceeds the
// region it applies to. The bound is always computable from Len(), Cap() and
// SpareLen() before the call, so hitting this error indicates a caller bug
// rather than a transient condition.
var ErrOutOfBounds = errors.New("out of bounds")

// ErrBorrowConflict is returned when the spare-view discipline is violated,
// i.e. a commit is attempted without an outstanding spare view. Elements can
// only enter the buffer through a view obtained from Spare().
var ErrBorrowConflict = errors.New("borrow conflict")

// ErrAllocationFailure is returned by Reserve when the requested capacity can
// never be satisfied (negative or overflowing request). The buffer is left in
// its prior state.
var ErrAllocationFailure = errors.New("allocation failure")

// ErrLimitExceeded is returned by Commit when the new length would exceed the
// limit configured via SetLimit.
var ErrLimitExceeded = errors.New("length limit exceeded")
