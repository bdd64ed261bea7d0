package bump

// SizeInUse returns the number of bytes currently allocated in the
// arena, including internal padding inserted for alignment.
func (a *Arena) SizeInUse() int {
	return int(a.used)
}

// Capacity returns the fixed size of the backing buffer in bytes.
// It is zero after Release.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available, not counting
// any padding a future allocation may need.
func (a *Arena) Remaining() int {
	return len(a.buf) - int(a.used)
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has been released.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.used) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated, padding included
	Capacity    int     // Fixed buffer size in bytes
	Remaining   int     // Bytes left before out-of-capacity
	Utilization float64 // Ratio of used to capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of bytes currently allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the fixed buffer size.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Remaining thread-safely returns the number of bytes still available.
func (s *SafeArena) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remaining()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
