package util

// BytesAllocator hands out the raw buffers backing columns and bitmaps.
// The default goes straight to the Go heap; a pooling allocator can be
// swapped in through GAlloc without touching callers.
type BytesAllocator interface {
	Alloc(sz int) []byte
	Free([]byte)
}

type DefaultAllocator struct {
}

func (alloc *DefaultAllocator) Alloc(sz int) []byte {
	return make([]byte, sz)
}

func (alloc *DefaultAllocator) Free(bytes []byte) {
}

var GAlloc BytesAllocator = &DefaultAllocator{}
