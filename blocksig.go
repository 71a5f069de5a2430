// Package blocksig defines basic interfaces for block checksum signature generation.
package blocksig

import (
	"io"
	"os"
)

// Input provides read access to the file being signed.
// The Input interface is the minimum implementation required:
// positioned reads plus size inspection. The engine never writes
// to it and never reads it sequentially.
//
// The *os.File type satisfies this interface.
type Input interface {
	io.ReaderAt

	// Stat reports the current length of the input, among other
	// attributes. Only Size() of the result is consulted.
	Stat() (os.FileInfo, error)
}

// Output receives the generated signature: one fixed-width checksum
// record per input block, at the offset derived from the block index.
// The engine sizes it up front with Truncate, then only issues
// positioned writes; it never appends and never reads it back.
//
// The *os.File type satisfies this interface.
type Output interface {
	io.WriterAt

	// Truncate changes the size of the file.
	Truncate(size int64) error
}
