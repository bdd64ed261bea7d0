// Package bump implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena per request or frame, allocate many
// temporary objects from it, then Reset() at the end for O(1) cleanup.
package bump

import "unsafe"

// DefaultCapacity is the default buffer size for new arenas (64 KiB).
const DefaultCapacity = 1 << 16

// Arena is a fixed-capacity bump allocator. The backing buffer is
// allocated once at construction and never grows; allocations carve it
// up by advancing a cursor, and Reset rewinds the cursor so the buffer
// can be reused. Not goroutine-safe by default, use SafeArena for
// concurrent access. An Arena must not be copied after first use:
// outstanding pointers reference the original buffer, not the copy's.
type Arena struct {
	noCopy noCopy

	buf  []byte  // backing memory, len(buf) is the fixed capacity
	used uintptr // allocation cursor within buf

	ledger ledger // records allocations in arenadebug builds, empty otherwise
}

// NewArena creates a new Arena with the given capacity in bytes.
// If capacity <= 0, DefaultCapacity is used. The capacity is fixed for
// the arena's lifetime; an allocation that does not fit the remaining
// space fails rather than growing the buffer.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Arena{buf: make([]byte, capacity)}
}

// alloc reserves size bytes at the next align-aligned address past the
// cursor and returns the reserved offset. Padding is computed from the
// actual candidate address, so heterogeneous alignments pack with
// minimal waste. The capacity check happens before any mutation: on
// failure the cursor is exactly what it was before the call.
func (a *Arena) alloc(size, align uintptr) (uintptr, bool) {
	a.panicIfReleased()

	addr := uintptr(unsafe.Pointer(&a.buf[0])) + a.used
	pad := (align - addr%align) % align

	rem := uintptr(len(a.buf)) - a.used
	if pad > rem || size > rem-pad {
		return 0, false
	}

	a.used += pad
	off := a.used
	a.used += size
	return off, true
}

// AllocBytes returns an n-byte slice carved from the arena, or nil if
// n <= 0 or the remaining capacity cannot fit n bytes. Byte regions
// carry no alignment requirement, so no padding is inserted.
// The slice is valid until the next Reset or Release.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	off, ok := a.alloc(uintptr(n), 1)
	if !ok {
		return nil
	}
	a.ledger.record(off, uintptr(n), "[]byte")
	return unsafe.Slice(&a.buf[off], n)
}

// Reset rewinds the allocation cursor to zero so the buffer can be
// reused. Every pointer and slice previously returned by the arena is
// invalidated: its storage will be handed out again by future
// allocations. No per-object cleanup runs; see the package
// documentation for the implications.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.used = 0
	a.ledger.clear()
}

// Release drops the backing buffer and makes the arena unusable.
// Allocations and Reset panic afterwards. Releasing an already
// released arena is a no-op.
func (a *Arena) Release() {
	a.buf = nil
	a.used = 0
	a.ledger.clear()
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("bump: use after Release()")
	}
}

// noCopy makes `go vet -copylocks` flag Arena values copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
