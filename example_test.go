package sparebuf

import (
	"fmt"
	"strings"
)

// Example demonstrates the basic spare/commit cycle
func Example() {
	// Create a buffer with room for 8 bytes
	buf := New[byte](8)

	// Obtain the spare region and let a writer fill part of it
	spare := buf.Spare()
	n := copy(spare, "hello")

	// Commit exactly what was written
	if err := buf.Commit(n); err != nil {
		panic(err)
	}

	fmt.Printf("Committed: %q\n", buf.Data())
	fmt.Printf("Len: %d, Spare: %d\n", buf.Len(), buf.SpareLen())

	// Output:
	// Committed: "hello"
	// Len: 5, Spare: 3
}

// ExampleReadFrom demonstrates filling a buffer from a stream, chunk by chunk
func ExampleReadFrom() {
	buf := New[byte](16)
	r := strings.NewReader("the quick brown fox")

	n, err := ReadFrom(buf, r, 8)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Read %d bytes: %q\n", n, buf.Data())

	// Output:
	// Read 19 bytes: "the quick brown fox"
}

// ExampleSpareBuffer_Truncate demonstrates returning committed elements to
// the spare region
func ExampleSpareBuffer_Truncate() {
	s := make([]byte, 0, 12)
	s = append(s, "hello world"...)

	buf := Wrap(s)
	if err := buf.Truncate(5); err != nil {
		panic(err)
	}

	fmt.Printf("%q (len %d, spare %d)\n", buf.Data(), buf.Len(), buf.SpareLen())

	// Output:
	// "hello" (len 5, spare 7)
}

// ExampleSpareBuffer_Take demonstrates recovering the plain slice
func ExampleSpareBuffer_Take() {
	buf := New[int](4)

	spare := buf.Spare()
	spare[0], spare[1] = 7, 9
	if err := buf.Commit(2); err != nil {
		panic(err)
	}

	nums := buf.Take()
	fmt.Println(nums, len(nums), cap(nums))

	// Output:
	// [7 9] 2 4
}

// ExampleSpareBuffer_SetLimit demonstrates capping the committed length
func ExampleSpareBuffer_SetLimit() {
	buf := New[byte](8)
	buf.SetLimit(4)

	spare := buf.Spare()
	copy(spare, "too much data")

	err := buf.Commit(8)
	fmt.Println("Commit(8):", err)

	if err := buf.Commit(4); err != nil {
		panic(err)
	}
	fmt.Printf("Commit(4): %q\n", buf.Data())

	// Output:
	// Commit(8): sparebuf: commit 8 elements past limit 4: length limit exceeded
	// Commit(4): "too "
}
