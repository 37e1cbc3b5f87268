package engine

import (
	"testing"

	"github.com/osse101/DoughGuardian_Go/internal/catalog"
)

func BenchmarkTick(b *testing.B) {
	e := New(catalog.Default())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Tick(1)
	}
}

func BenchmarkApplyInteraction(b *testing.B) {
	e := New(catalog.Default())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.ApplyInteraction(1, 0.5)
	}
}

func BenchmarkSnapshotRestore(b *testing.B) {
	e := New(catalog.Default())
	_, _ = e.ApplyInteraction(5000, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Restore(e.Snapshot())
	}
}
