package bump

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. It provides the external synchronization the bare
// Arena requires for multi-goroutine use.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSafeArena(capacity int) *SafeArena {
	return &SafeArena{a: NewArena(capacity)}
}

// AllocBytes thread-safely allocates n bytes and returns a slice
// pointing to them. Returns nil if n <= 0 or on out-of-capacity.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Reset thread-safely rewinds the cursor to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops the buffer and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// MemoryMap thread-safely renders the arena's memory map.
func (s *SafeArena) MemoryMap() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.MemoryMap()
}

// UsageSummary thread-safely renders the arena's usage summary.
func (s *SafeArena) UsageSummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.UsageSummary()
}

// Allocations thread-safely returns a copy of the allocation records.
func (s *SafeArena) Allocations() []AllocationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocations()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T inside the
// arena, or nil on out-of-capacity.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocValue thread-safely copies v into arena storage and returns
// a pointer to the copy, or nil on out-of-capacity.
func SafeAllocValue[T any](s *SafeArena, v T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocValue(s.a, v)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing the
// storage, or nil on out-of-capacity.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type
// T, or nil on out-of-capacity.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements
// with zeroed storage, or nil on out-of-capacity.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive thread-safely returns t and calls
// runtime.KeepAlive on the arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
