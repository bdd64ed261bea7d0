// Package bump implements a fixed-capacity bump allocator (memory arena) for Go.
//
// # Overview
//
// A bump allocator serves memory by advancing a single cursor through a
// buffer reserved up front, with bulk-only reclamation. Allocation is a
// padding computation, a bounds check and a cursor bump, which makes it
// fast, deterministic and fragmentation-free. This fits:
//
//   - Per-request or per-frame scratch memory
//   - Short-lived objects that all die together
//   - Reducing garbage collection pressure
//   - Code that needs predictable allocation cost
//
// # Basic Usage
//
//	a := bump.NewArena(64 * 1024)
//	defer a.Release() // Clean up when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	p := bump.Alloc[MyStruct](a)
//	v := bump.AllocValue(a, MyStruct{ID: 7})
//	s := bump.AllocSlice[int](a, 100)
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// # Out of Capacity
//
// The capacity is fixed: the arena never grows. When an allocation does
// not fit the remaining space after alignment padding, the Alloc
// functions return nil and the arena is left exactly as it was. Callers
// must check before dereferencing and pick their own fallback.
//
// # Generations and Reset
//
// Every pointer and slice handed out by the arena belongs to the
// generation in which it was allocated, the span between two Reset
// calls. Reset rewinds the cursor and invalidates all of them: their
// storage will be reused by the next generation. Using a stale pointer
// after Reset is not detected and corrupts later allocations.
//
// Reset runs no per-object cleanup. Place only values whose teardown is
// a no-op in the arena, or tear resource owners down yourself before
// resetting.
//
// # Pointers and the Garbage Collector
//
// The backing buffer is a plain byte slice, so the collector does not
// scan arena storage for pointers. A pointer to a heap object stored
// only inside the arena does not keep that object alive. Keep such
// referents reachable elsewhere, and see PtrAndKeepAlive for pinning
// the arena itself across unsafe uses.
//
// # Thread Safety
//
// Arena is not thread-safe: the cursor is mutated without atomicity.
// SafeArena wraps every operation in a mutex:
//
//	s := bump.NewSafeArena(64 * 1024)
//	defer s.Release()
//	p := bump.SafeAlloc[MyStruct](s)
//
// # Diagnostics
//
// Building with -tags arenadebug enables the allocation ledger: every
// allocation is recorded with its offset, size and type tag, readable
// via Allocations and rendered by MemoryMap. Without the tag the ledger
// compiles to nothing and allocation pays no instrumentation cost.
// UsageSummary reports used/capacity totals with a proportional bar in
// both build modes.
package bump
