package bump

// AllocationRecord describes one allocation made during the current
// generation (the span since the last Reset). Records are collected
// only in builds with the arenadebug tag. They are purely diagnostic:
// the allocator never consults them.
type AllocationRecord struct {
	Offset uintptr // byte offset of the object within the buffer
	Size   uintptr // object size in bytes
	Type   string  // descriptive type tag
}

// Allocations returns a copy of the current generation's allocation
// records in chronological order, or nil unless the package was built
// with -tags arenadebug.
func (a *Arena) Allocations() []AllocationRecord {
	return a.ledger.records()
}
