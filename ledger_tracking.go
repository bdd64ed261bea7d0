//go:build arenadebug

package bump

import (
	"fmt"
	"reflect"
)

const tracking = true

// ledger is the chronological record of the current generation's
// allocations, including raw byte regions. Append-only between resets.
type ledger struct {
	recs []AllocationRecord
}

func (l *ledger) record(off, size uintptr, typ string) {
	l.recs = append(l.recs, AllocationRecord{Offset: off, Size: size, Type: typ})
}

func (l *ledger) clear() {
	l.recs = l.recs[:0]
}

func (l *ledger) records() []AllocationRecord {
	if len(l.recs) == 0 {
		return nil
	}
	return append([]AllocationRecord(nil), l.recs...)
}

func recordAlloc[T any](a *Arena, off, size uintptr) {
	a.ledger.record(off, size, reflect.TypeFor[T]().String())
}

func recordSlice[T any](a *Arena, off, size uintptr, n int) {
	a.ledger.record(off, size, fmt.Sprintf("[%d]%s", n, reflect.TypeFor[T]().String()))
}
