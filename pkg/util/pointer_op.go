package util

import (
	"unsafe"
)

// ToSlice reinterprets a raw byte buffer as a slice of fixed-size
// elements. pSize must be the element size of T; the caller keeps the
// buffer alive for as long as the view is used.
func ToSlice[T any](data []byte, pSize int) []T {
	slen := len(data) / pSize
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), slen)
}
