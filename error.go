package blocksig

import "errors"

var (
	ErrInvalidBlockSize   = errors.New("invalid block size")
	ErrInvalidConcurrency = errors.New("invalid concurrency")
)
