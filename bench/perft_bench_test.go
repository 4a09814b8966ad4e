package bench

import (
	"runtime"
	"testing"

	"koth-engine/internal/crosscheck"
	eng "koth-engine/kothmg"
)

func benchPerft(b *testing.B, fen string, depth int) {
	s, err := eng.ParseState(fen)
	if err != nil {
		b.Fatalf("ParseState: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Perft(s, depth); err != nil {
			b.Fatalf("Perft: %v", err)
		}
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, eng.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, fenKiwipete, 3)
}

func BenchmarkPerftParallel_Initial_D4(b *testing.B) {
	s := eng.MustParseState(eng.FENStartPos)
	workers := runtime.NumCPU()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.PerftParallel(s, 4, workers); err != nil {
			b.Fatalf("PerftParallel: %v", err)
		}
	}
}

func BenchmarkDragontoothPerft_Initial_D4(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = crosscheck.DragontoothPerft(eng.FENStartPos, 4)
	}
}
