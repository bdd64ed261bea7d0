package bump

import (
	"fmt"
	"strings"
)

const (
	mapDivider = "--------------------------------------------------"

	// barWidth is the width of the UsageSummary bar in characters.
	barWidth = 20
)

// MemoryMap renders the arena's layout in address order: every recorded
// allocation, the padding gaps inferred between them, and the free tail
// from the cursor to the end of the buffer. Without the arenadebug
// build tag no per-allocation records exist, so only the totals and the
// free tail are shown. MemoryMap mutates nothing; callers running
// concurrent allocations must synchronize externally (see SafeArena).
func (a *Arena) MemoryMap() string {
	var b strings.Builder
	b.WriteString("--- Arena Memory Map ---\n")
	if !tracking {
		b.WriteString("(build with -tags arenadebug for per-allocation records)\n")
	}
	fmt.Fprintf(&b, "Capacity: %d bytes | Used: %d bytes\n\n", a.Capacity(), a.SizeInUse())
	fmt.Fprintf(&b, "%-18s%-25s%s\n", "Offset", "Type", "Size")
	b.WriteString(mapDivider + "\n")

	var last uintptr
	for _, rec := range a.ledger.records() {
		if rec.Offset > last {
			writeMapLine(&b, last, "(padding)", rec.Offset-last)
		}
		writeMapLine(&b, rec.Offset, rec.Type, rec.Size)
		last = rec.Offset + rec.Size
	}
	if free := uintptr(a.Capacity()) - a.used; free > 0 {
		writeMapLine(&b, a.used, "(free)", free)
	}
	b.WriteString(mapDivider + "\n")
	return b.String()
}

func writeMapLine(b *strings.Builder, off uintptr, typ string, size uintptr) {
	fmt.Fprintf(b, "%-18s%-25s%d\n", fmt.Sprintf("+ %d", off), typ, size)
}

// UsageSummary renders the used/capacity totals, the usage percentage
// and a proportionally filled bar of barWidth characters.
func (a *Arena) UsageSummary() string {
	used := a.SizeInUse()
	capacity := a.Capacity()

	filled := 0
	if capacity > 0 {
		filled = used * barWidth / capacity
	}

	var b strings.Builder
	b.WriteString("----------- Memory Stats -----------\n")
	fmt.Fprintf(&b, " Used:     %d bytes\n", used)
	fmt.Fprintf(&b, " Capacity: %d bytes\n", capacity)
	fmt.Fprintf(&b, " Usage:    %.2f%%\n", a.Utilization()*100)
	fmt.Fprintf(&b, " Visual:   [%s%s]\n",
		strings.Repeat("-", filled), strings.Repeat(" ", barWidth-filled))
	b.WriteString("------------------------------------\n")
	return b.String()
}
