// Package sparebuf provides safe, ergonomic access to the spare capacity of
// a slice: the memory already allocated beyond the slice's logical length.
//
// # Overview
//
// A growing slice usually carries unused trailing capacity. sparebuf exposes
// that region as a writable view so data can be produced directly into it,
// e.g. by reading from a file or stream, without zero-filling it first. Once
// filled, a validated prefix is committed and becomes part of the slice's
// logical content with no copying. This is particularly useful for:
//
//   - Filling buffers from io.Reader sources without intermediate copies
//   - Incrementally assembling data whose total size is unknown upfront
//   - Avoiding redundant zeroing of memory that is about to be overwritten
//
// # Basic Usage
//
//	buf := sparebuf.New[byte](4096)
//
//	spare := buf.Spare()         // writable view over the unused capacity
//	n, _ := r.Read(spare)        // let an external writer fill it
//	if err := buf.Commit(n); err != nil {
//		// n exceeded the spare region, or no view was outstanding
//	}
//
//	data := buf.Data()           // the committed prefix, valid data only
//	raw := buf.Take()            // hand the plain slice back, consuming buf
//
// # The Commit Contract
//
// Commit(n) trusts the caller that the first n spare slots were actually
// written through the view. The buffer cannot verify this; committing
// unwritten slots makes their unspecified contents observable as valid data.
// This caller-upheld contract is deliberately confined to Commit and
// CommitUnchecked - every other operation either reports an error or panics
// on misuse.
//
// # View Discipline
//
// A view obtained from Spare() stays valid only until the next Reserve,
// Commit, Truncate or Reset call; each of those invalidates it and a fresh
// view must be obtained. Repeated Spare() calls with no intervening mutation
// return views over the same memory.
//
// # Thread Safety
//
// SpareBuffer carries no internal synchronization. It is designed for one
// exclusive owner at a time; concurrent mutation requires external locking.
//
// # Important Notes
//
//   - The spare region's contents are unspecified until written - only write
//     through the view, never read from it
//   - Truncate and Reset clear vacated elements so referenced resources can
//     be reclaimed
//   - After Take() the wrapper is consumed and further operations panic
//
// # Metrics and Monitoring
//
// The buffer provides a snapshot of its bookkeeping state:
//
//	m := buf.Metrics()
//	fmt.Printf("Committed: %d of %d (%.1f%%)\n", m.Len, m.Cap, m.Utilization*100)
package sparebuf
