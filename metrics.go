package sparebuf

// Utilization returns the ratio of committed elements to total capacity
// (0.0 to 1.0). Returns 0.0 if the buffer has no capacity.
func (b *SpareBuffer[T]) Utilization() float64 {
	if cap(b.buf) == 0 {
		return 0
	}
	return float64(len(b.buf)) / float64(cap(b.buf))
}

// Metrics returns a snapshot of the buffer's bookkeeping state.
func (b *SpareBuffer[T]) Metrics() BufferMetrics {
	return BufferMetrics{
		Len:         b.Len(),
		Cap:         b.Cap(),
		SpareLen:    b.SpareLen(),
		Limit:       b.Limit(),
		Utilization: b.Utilization(),
	}
}

// BufferMetrics contains statistical information about a SpareBuffer.
type BufferMetrics struct {
	Len         int     // Committed elements
	Cap         int     // Total allocated capacity in elements
	SpareLen    int     // Spare (allocated, uncommitted) elements
	Limit       int     // Configured length limit, 0 if unlimited
	Utilization float64 // Ratio of committed to capacity (0.0-1.0)
}
