//go:build !unix

// Package mmbuf reserves the backing memory for allocator pools.
package mmbuf

import "fmt"

// Reserve hands out a heap-backed buffer when mmap is not available.
func Reserve(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("mmbuf: invalid reservation size %d", n)
	}
	return make([]byte, n), func() error { return nil }, nil
}
