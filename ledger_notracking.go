//go:build !arenadebug

package bump

// tracking selects the recording ledger at compile time. It is off by
// default so release builds pay nothing for instrumentation.
const tracking = false

type ledger struct{}

func (ledger) record(off, size uintptr, typ string) {}

func (ledger) clear() {}

func (ledger) records() []AllocationRecord { return nil }

func recordAlloc[T any](a *Arena, off, size uintptr) {}

func recordSlice[T any](a *Arena, off, size uintptr, n int) {}
