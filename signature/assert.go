// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

//go:build debug

package signature

import "fmt"

// assertClaim panics if a worker claimed indices outside the plan.
// Only enabled with -tags debug.
func assertClaim(index, count, blocks int64) {
	if index < 0 || count < 1 || index+count > blocks {
		panic(fmt.Sprintf("claim [%d, %d) outside %d blocks", index, index+count, blocks))
	}
}
