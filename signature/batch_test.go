package signature

import (
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/blocksig/mem"
)

func TestBatchPushSplitsBlocks(t *testing.T) {
	b := newBatch(4, 8)
	defer b.recycle()

	// Feed in awkward chunk sizes; records must match whole-block
	// checksums regardless of how the bytes arrive.
	b.push([]byte("a"))
	b.push([]byte("bcdef"))
	b.push([]byte("ghij"))
	b.completeBlock()

	require.Len(t, b.records, 3*ChecksumSize)
	require.Equal(t, crc32.ChecksumIEEE([]byte("abcd")), binary.LittleEndian.Uint32(b.records[0:]))
	require.Equal(t, crc32.ChecksumIEEE([]byte("efgh")), binary.LittleEndian.Uint32(b.records[4:]))
	require.Equal(t, crc32.ChecksumIEEE([]byte("ij")), binary.LittleEndian.Uint32(b.records[8:]))
}

func TestBatchCompleteEmptyBlock(t *testing.T) {
	b := newBatch(4, 8)
	defer b.recycle()

	b.completeBlock()
	require.Empty(t, b.records, "a block with no bytes has no record")
}

func TestBatchReset(t *testing.T) {
	b := newBatch(4, 8)
	defer b.recycle()

	b.push([]byte("abcdef"))
	b.reset()
	require.Empty(t, b.records, "reset drops pending records")

	b.push([]byte("abcd"))
	require.Len(t, b.records, ChecksumSize)
	require.Equal(t, crc32.ChecksumIEEE([]byte("abcd")), binary.LittleEndian.Uint32(b.records), "reset clears partial block state")
}

// trickleOutput accepts one byte per call, forcing flush to retry at
// advanced offsets.
type trickleOutput struct {
	mem.File
}

func (o *trickleOutput) WriteAt(p []byte, off int64) (int, error) {
	return o.File.WriteAt(p[:1], off)
}

func TestBatchFlushShortWrites(t *testing.T) {
	b := newBatch(4, 8)
	defer b.recycle()
	b.push([]byte("abcdefgh"))

	var output trickleOutput
	err := b.flush(&output, 12)
	require.NoError(t, err, "flush")

	require.EqualValues(t, 12+8, output.Size(), "records land at the given offset")

	got := make([]byte, 8)
	output.File.ReadAt(got, 12)
	require.Equal(t, crc32.ChecksumIEEE([]byte("abcd")), binary.LittleEndian.Uint32(got[0:]))
	require.Equal(t, crc32.ChecksumIEEE([]byte("efgh")), binary.LittleEndian.Uint32(got[4:]))
}

func TestBatchReadBlocksBounded(t *testing.T) {
	var file mem.File
	file.WriteAt([]byte("abcdefghijkl"), 0)

	b := newBatch(4, 8)
	defer b.recycle()

	// Only the two claimed blocks are checksummed even though more
	// input exists.
	err := b.readBlocks(&file, 4, 2)
	require.NoError(t, err, "readBlocks")

	require.Len(t, b.records, 2*ChecksumSize)
	require.Equal(t, crc32.ChecksumIEEE([]byte("efgh")), binary.LittleEndian.Uint32(b.records[0:]))
	require.Equal(t, crc32.ChecksumIEEE([]byte("ijkl")), binary.LittleEndian.Uint32(b.records[4:]))
}
