// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package signature generates block-level checksum signature files.
//
// The input is partitioned into fixed-size blocks (the last block may
// be shorter), a 32-bit CRC is computed over each block, and the
// checksums are written contiguously to the output: the record for
// block i lives at output offset i*ChecksumSize. The result is the
// flat checksum table that delta-transfer and deduplication tools
// compare against other files' blocks without re-reading whole files.
//
// Blocks are distributed across workers through a shared atomic
// counter, so the output is identical for any concurrency level.
package signature

import "hash/crc32"

// ChecksumSize is the width of one checksum record in the output.
// Records are CRC-32 (IEEE polynomial) values stored little-endian,
// the same byte order used for every other on-disk integer in this
// module.
const ChecksumSize = 4

// bufferSize bounds the scratch read buffer each worker owns, and
// thereby how many blocks a worker claims per counter fetch.
const bufferSize = 1 << 20

var ieeeCrcTable = crc32.MakeTable(crc32.IEEE)
