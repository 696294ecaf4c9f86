package sparebuf

import (
	"fmt"
	"io"
)

// DefaultChunkSize is the default per-read reservation used by ReadFrom (4 KiB).
const DefaultChunkSize = 4096

// ReadFrom reads from r until EOF, filling the buffer's spare region chunk by
// chunk and committing exactly what each read produced. The buffer itself
// performs no I/O; r writes into the view obtained from Spare().
//
// Before every read, at least chunkSize spare elements are reserved; if
// chunkSize <= 0, DefaultChunkSize is used. Returns the total number of bytes
// committed and the first error other than io.EOF encountered. A configured
// length limit surfaces as ErrLimitExceeded once a read would commit past it.
func ReadFrom(b *SpareBuffer[byte], r io.Reader, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	var total int64
	for {
		if err := b.Reserve(chunkSize); err != nil {
			return total, err
		}
		n, err := r.Read(b.Spare())
		if n > 0 {
			if cerr := b.Commit(n); cerr != nil {
				return total, cerr
			}
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("sparebuf: read into spare view: %w", err)
		}
	}
}

// ReadFull reads exactly n bytes from r into the buffer, reserving the spare
// capacity up front and committing whatever was read. Like io.ReadFull it
// returns io.ErrUnexpectedEOF (wrapped) if fewer than n bytes were available;
// the bytes that did arrive are still committed, matching the count returned.
func ReadFull(b *SpareBuffer[byte], r io.Reader, n int) (int, error) {
	if err := b.Reserve(n); err != nil {
		return 0, err
	}
	read, err := io.ReadFull(r, b.Spare()[:n])
	if read > 0 {
		if cerr := b.Commit(read); cerr != nil {
			return read, cerr
		}
	}
	if err != nil {
		return read, fmt.Errorf("sparebuf: read into spare view: %w", err)
	}
	return read, nil
}
