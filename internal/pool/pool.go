// Package pool provides bucketed sync.Pool instances for reducing
// allocations in hot paths: byte buffers for short-lived scratch images
// and float64 buffers for value grids. Buffers are organized by size
// class to minimize waste.
package pool

import "sync"

// Size classes for bucketed pools.
const (
	Size256B = 256
	Size1K   = 1024
	Size4K   = 4096
	Size16K  = 16384
	Size64K  = 65536
	Size256K = 262144
	Size1M   = 1048576
)

// bucketIndex returns the pool index for a given size.
func bucketIndex(size int) int {
	switch {
	case size <= Size256B:
		return 0
	case size <= Size1K:
		return 1
	case size <= Size4K:
		return 2
	case size <= Size16K:
		return 3
	case size <= Size64K:
		return 4
	case size <= Size256K:
		return 5
	default:
		return 6
	}
}

var sizes = [7]int{Size256B, Size1K, Size4K, Size16K, Size64K, Size256K, Size1M}

var pools [7]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
	}
}

// Get returns a byte slice of at least the requested size from the pool.
// The returned slice has length == size and may have a larger capacity.
// The caller must call Put when done.
func Get(size int) []byte {
	idx := bucketIndex(size)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
		*bp = b
		return b
	}
	return b[:size]
}

// Put returns a byte slice to the pool. The slice must have been obtained
// from Get. Slices smaller than Size256B are not pooled.
func Put(b []byte) {
	c := cap(b)
	if c < Size256B {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	pools[idx].Put(&b)
}

var float64Pools [7]sync.Pool

func init() {
	for i := range float64Pools {
		elems := sizes[i] / 8
		if elems < 1 {
			elems = 1
		}
		n := elems
		float64Pools[i] = sync.Pool{
			New: func() any {
				b := make([]float64, n)
				return &b
			},
		}
	}
}

// GetFloat64 returns a float64 slice of at least the requested length
// from the pool. The returned slice has length == length and may have a
// larger capacity; its contents are not zeroed. Sized for a value
// grid's backing array, which is allocated once per render and
// discarded once colour-mapped, so reusing it across renders avoids a
// fresh multi-megabyte allocation per call. The caller must call
// PutFloat64 when done.
func GetFloat64(length int) []float64 {
	idx := bucketIndex(length * 8)
	bp := float64Pools[idx].Get().(*[]float64)
	b := *bp
	if cap(b) < length {
		b = make([]float64, length)
		*bp = b
		return b
	}
	return b[:length]
}

// PutFloat64 returns a float64 slice to the pool. The slice must have
// been obtained from GetFloat64. Slices smaller than Size256B worth of
// elements are not pooled.
func PutFloat64(b []float64) {
	c := cap(b)
	if c*8 < Size256B {
		return
	}
	idx := bucketIndex(c * 8)
	b = b[:c]
	float64Pools[idx].Put(&b)
}
