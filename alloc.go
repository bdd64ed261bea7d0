package bump

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T placed inside the arena, or nil
// if the remaining capacity cannot fit a T after alignment padding.
// The pointer is valid until the next Reset or Release. Zero-sized
// types consume no arena space.
func Alloc[T any](a *Arena) *T {
	var zero T
	size, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	if size == 0 {
		return new(T)
	}
	off, ok := a.alloc(size, align)
	if !ok {
		return nil
	}
	clear(a.buf[off : off+size])
	recordAlloc[T](a, off, size)
	return (*T)(unsafe.Pointer(&a.buf[off]))
}

// AllocValue copies v into arena storage and returns a pointer to the
// copy, or nil on out-of-capacity. This is the closest Go analog of
// constructing an object in place with arguments.
func AllocValue[T any](a *Arena, v T) *T {
	p := AllocUninitialized[T](a)
	if p == nil {
		return nil
	}
	*p = v
	return p
}

// AllocUninitialized is like Alloc but does not zero the storage; after
// a Reset the memory holds whatever the previous generation wrote
// there. Use only when every field is assigned before being read.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	size, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	if size == 0 {
		return new(T)
	}
	off, ok := a.alloc(size, align)
	if !ok {
		return nil
	}
	recordAlloc[T](a, off, size)
	return (*T)(unsafe.Pointer(&a.buf[off]))
}

// AllocSlice allocates a slice of n elements of type T inside the
// arena. The elements are not zeroed. Returns nil if n <= 0 or on
// out-of-capacity.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elem, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	if elem == 0 {
		return make([]T, n)
	}
	size := elem * uintptr(n)
	if size/elem != uintptr(n) {
		// elem*n overflowed; it cannot possibly fit anyway
		return nil
	}
	off, ok := a.alloc(size, align)
	if !ok {
		return nil
	}
	recordSlice[T](a, off, size, n)
	return unsafe.Slice((*T)(unsafe.Pointer(&a.buf[off])), n)
}

// AllocSliceZeroed is AllocSlice with the element storage zeroed.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	if s != nil {
		clear(s)
	}
	return s
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
