package bump

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024)

	// Initial state
	require.Equal(t, 0, a.SizeInUse())
	require.Equal(t, 1024, a.Capacity())
	require.Equal(t, 1024, a.Remaining())
	require.Zero(t, a.Utilization())

	a.AllocBytes(100)
	a.AllocBytes(200)

	require.Equal(t, 300, a.SizeInUse())
	require.Equal(t, 724, a.Remaining())

	util := a.Utilization()
	require.Greater(t, util, 0.0)
	require.LessOrEqual(t, util, 1.0)

	m := a.Metrics()
	require.Equal(t, a.SizeInUse(), m.SizeInUse)
	require.Equal(t, a.Capacity(), m.Capacity)
	require.Equal(t, a.Remaining(), m.Remaining)
	require.Equal(t, a.Utilization(), m.Utilization)
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a := NewArena(1024)

	a.AllocBytes(500)
	require.NotZero(t, a.SizeInUse())
	require.NotZero(t, a.Utilization())

	a.Reset()
	require.Equal(t, 0, a.SizeInUse())
	require.Zero(t, a.Utilization())

	// The buffer survives a reset
	require.Equal(t, 1024, a.Capacity())
	require.Equal(t, 1024, a.Remaining())
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a := NewArena(1024)
	a.AllocBytes(100)

	a.Release()

	require.Equal(t, 0, a.SizeInUse())
	require.Equal(t, 0, a.Capacity())
	require.Equal(t, 0, a.Remaining())
	require.Zero(t, a.Utilization())
}

func TestUtilizationFull(t *testing.T) {
	a := NewArena(100)
	require.NotNil(t, a.AllocBytes(100))
	require.Equal(t, 1.0, a.Utilization())
	require.Equal(t, 0, a.Remaining())
}

func TestSafeArenaMetrics(t *testing.T) {
	s := NewSafeArena(2048)

	s.AllocBytes(300)

	require.Equal(t, 300, s.SizeInUse())
	require.Equal(t, 2048, s.Capacity())
	require.Equal(t, 1748, s.Remaining())

	util := s.Utilization()
	require.Greater(t, util, 0.0)
	require.LessOrEqual(t, util, 1.0)

	m := s.Metrics()
	require.Equal(t, 2048, m.Capacity)
	require.Equal(t, 300, m.SizeInUse)
}

func BenchmarkMetrics(b *testing.B) {
	a := NewArena(1024 * 1024)
	for i := 0; i < 100; i++ {
		a.AllocBytes(1000)
	}

	b.Run("SizeInUse", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.SizeInUse()
		}
	})

	b.Run("Utilization", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Utilization()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Metrics()
		}
	})
}
