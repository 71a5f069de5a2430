// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package signature

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dacapoday/blocksig"
)

// Generate computes the block checksum signature of input and writes
// it to output. The output is sized to exactly ceil(inputSize /
// blockSize) * ChecksumSize bytes before any record is written, so a
// reused output file carries no trailing bytes from a prior run.
//
// Up to concurrency workers process blocks in parallel; the call
// returns only after every worker has finished. The output bytes do
// not depend on concurrency.
//
// blockSize and concurrency must be positive; otherwise Generate
// fails with blocksig.ErrInvalidBlockSize or
// blocksig.ErrInvalidConcurrency before touching either file. Any
// other failure is an I/O error from the underlying files, wrapped
// with the failing operation. When workers fail concurrently, the
// first observed error is returned; the rest are discarded after all
// workers have been joined.
func Generate(input blocksig.Input, output blocksig.Output, blockSize int64, concurrency int) error {
	if blockSize <= 0 {
		return blocksig.ErrInvalidBlockSize
	}
	if concurrency <= 0 {
		return blocksig.ErrInvalidConcurrency
	}

	info, err := input.Stat()
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	p := planFor(info.Size(), blockSize, concurrency)

	if err := output.Truncate(p.blocks * ChecksumSize); err != nil {
		return fmt.Errorf("truncate output to %d bytes: %w", p.blocks*ChecksumSize, err)
	}

	if p.blocks == 0 {
		return nil
	}

	var (
		counter atomic.Int64 // next unclaimed block index
		aborted atomic.Bool  // stops claiming after the first failure
		once    sync.Once
		failure error
	)

	var join sync.WaitGroup
	join.Add(p.workers)

	for i := 0; i < p.workers; i++ {
		go func() {
			defer join.Done()

			b := newBatch(blockSize, p.step)
			defer b.recycle()

			for !aborted.Load() {
				index := counter.Add(p.step) - p.step
				if index >= p.blocks {
					break
				}

				count := min(p.step, p.blocks-index)
				assertClaim(index, count, p.blocks)

				if err := b.process(input, output, index, count); err != nil {
					once.Do(func() { failure = err })
					aborted.Store(true)
					break
				}
			}
		}()
	}

	join.Wait()
	return failure
}
