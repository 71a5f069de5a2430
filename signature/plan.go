// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package signature

// plan describes one generation run.
type plan struct {
	// blocks is the total block count: ceil(inputSize / blockSize).
	blocks int64

	// step is how many consecutive block indices one counter fetch
	// claims for a worker.
	step int64

	// workers is the concurrency after clamping to blocks.
	workers int
}

// planFor computes the run plan. blockSize and concurrency must be
// positive. The block count is computed as quotient plus remainder
// test rather than the usual (size+blockSize-1)/blockSize so it
// cannot overflow for any representable input size.
func planFor(inputSize, blockSize int64, concurrency int) (p plan) {
	p.blocks = inputSize / blockSize
	if inputSize%blockSize != 0 {
		p.blocks++
	}

	p.workers = concurrency
	if p.blocks < int64(p.workers) {
		p.workers = int(p.blocks)
	}
	if p.workers == 0 {
		return
	}

	// Claim as many blocks per fetch as fit the scratch buffer, to
	// amortize the atomic traffic, but never more than an even share
	// per worker, to keep the load balanced.
	p.step = bufferSize / blockSize
	if p.step < 1 {
		p.step = 1
	}
	if share := p.blocks / int64(p.workers); p.step > share {
		p.step = share
	}
	return
}
