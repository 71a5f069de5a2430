// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package signature

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"sync"
	"syscall"

	"github.com/dacapoday/blocksig"
)

// buffers recycles scratch read buffers across workers and runs.
var buffers = sync.Pool{
	New: func() any { return make([]byte, bufferSize) },
}

// batch accumulates checksum records for the contiguous run of blocks
// a worker claimed. Each worker owns one batch and reuses it for
// every claim, so no per-claim allocation happens on the hot path.
type batch struct {
	blockSize int64
	scratch   []byte // read buffer from the shared pool
	records   []byte // little-endian checksum records, pending flush

	crc       uint32 // running checksum of the current block
	remaining int64  // bytes of the current block not yet consumed
}

func newBatch(blockSize, step int64) *batch {
	return &batch{
		blockSize: blockSize,
		scratch:   buffers.Get().([]byte),
		records:   make([]byte, 0, step*ChecksumSize),
		remaining: blockSize,
	}
}

// recycle returns the scratch buffer to the pool. The batch must not
// be used afterwards.
func (b *batch) recycle() {
	buffers.Put(b.scratch)
	b.scratch = nil
}

// process reads the blocks [index, index+count) from input, checksums
// them, and writes the resulting records at the block's slots in
// output. A block that reads short of any bytes produces no record:
// the input ended before the plan assumed, and the remaining slots
// keep whatever the output sizing left there.
func (b *batch) process(input blocksig.Input, output blocksig.Output, index, count int64) (err error) {
	if err = b.readBlocks(input, index*b.blockSize, count); err != nil {
		return
	}
	if err = b.flush(output, index*ChecksumSize); err != nil {
		return
	}
	b.reset()
	return
}

// readBlocks feeds up to count blocks starting at offset through the
// checksum, in scratch-buffer sized chunks. Short reads are retried
// at the advanced offset; interrupted reads are retried at the same
// offset; end of data stops early and finalizes the partial block,
// if any of it was read.
func (b *batch) readBlocks(input blocksig.Input, offset, count int64) error {
	remaining := b.blockSize * count

	for remaining > 0 {
		chunk := min(remaining, int64(len(b.scratch)))
		n, err := input.ReadAt(b.scratch[:chunk], offset)
		if n > 0 {
			b.push(b.scratch[:n])
			remaining -= int64(n)
			offset += int64(n)
			continue
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read block data at offset %d: %w", offset, err)
		}
		break
	}

	b.completeBlock()
	return nil
}

// flush writes the pending records at offset, retrying short writes,
// then leaves the record buffer untouched (reset clears it).
func (b *batch) flush(output blocksig.Output, offset int64) error {
	records := b.records
	for len(records) > 0 {
		n, err := output.WriteAt(records, offset)
		if n > 0 {
			records = records[n:]
			offset += int64(n)
			continue
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err == nil {
			err = io.ErrShortWrite
		}
		return fmt.Errorf("write checksum records at offset %d: %w", offset, err)
	}
	return nil
}

// push feeds data into the running checksum, completing blocks as
// they fill.
func (b *batch) push(data []byte) {
	for len(data) > 0 {
		if b.remaining == 0 {
			b.completeBlock()
		}

		chunk := min(b.remaining, int64(len(data)))
		b.crc = crc32.Update(b.crc, ieeeCrcTable, data[:chunk])
		b.remaining -= chunk
		data = data[chunk:]
	}

	if b.remaining == 0 {
		b.completeBlock()
	}
}

// completeBlock appends the current block's record, unless no byte of
// the block was ever consumed.
func (b *batch) completeBlock() {
	if b.remaining == b.blockSize {
		return
	}
	b.records = binary.LittleEndian.AppendUint32(b.records, b.crc)
	b.resetBlock()
}

func (b *batch) resetBlock() {
	b.crc = 0
	b.remaining = b.blockSize
}

func (b *batch) reset() {
	b.resetBlock()
	b.records = b.records[:0]
}
