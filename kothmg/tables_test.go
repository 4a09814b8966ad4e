package kothmg_test

import (
	"math/rand"
	"testing"

	"koth-engine/kothmg"
)

var (
	lateral  = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal = [][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

// rays walks every direction from sq square by square, stopping after 'through'+1
// blockers. It is the reference the occupancy tables are checked against.
func rays(sq kothmg.Square, occ uint64, dirs [][2]int, through int) uint64 {
	var out uint64
	for _, d := range dirs {
		seen := 0
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		for kothmg.WithinBounds(f, r) {
			bit := kothmg.SquareOf(f, r).Bit()
			out |= bit
			if occ&bit != 0 {
				seen++
				if seen > through {
					break
				}
			}
			f, r = f+d[0], r+d[1]
		}
	}
	return out
}

func sparse(rnd *rand.Rand) uint64 {
	return rnd.Uint64() & rnd.Uint64() & rnd.Uint64()
}

func TestSliderTablesMatchRayWalk(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for sq := kothmg.Square(0); sq < 64; sq++ {
		for i := 0; i < 200; i++ {
			occ := sparse(rnd)
			if got, want := kothmg.RookAttacks(sq, occ), rays(sq, occ, lateral, 0); got != want {
				t.Fatalf("RookAttacks(%s, %#x)=%#x want %#x", sq, occ, got, want)
			}
			if got, want := kothmg.BishopAttacks(sq, occ), rays(sq, occ, diagonal, 0); got != want {
				t.Fatalf("BishopAttacks(%s, %#x)=%#x want %#x", sq, occ, got, want)
			}
			if got, want := kothmg.RookXray(sq, occ), rays(sq, occ, lateral, 1); got != want {
				t.Fatalf("RookXray(%s, %#x)=%#x want %#x", sq, occ, got, want)
			}
			if got, want := kothmg.BishopXray(sq, occ), rays(sq, occ, diagonal, 1); got != want {
				t.Fatalf("BishopXray(%s, %#x)=%#x want %#x", sq, occ, got, want)
			}
			q := kothmg.QueenAttacks(sq, occ)
			if q != kothmg.RookAttacks(sq, occ)|kothmg.BishopAttacks(sq, occ) {
				t.Fatalf("QueenAttacks(%s) is not rook|bishop", sq)
			}
		}
	}
}

func TestSliderIgnoresOwnSquare(t *testing.T) {
	// occupancy of the origin square never changes the attack set
	for sq := kothmg.Square(0); sq < 64; sq++ {
		if kothmg.RookAttacks(sq, sq.Bit()) != kothmg.RookAttacks(sq, 0) {
			t.Fatalf("rook attacks on %s depend on own square", sq)
		}
	}
}

func TestLeaperTables(t *testing.T) {
	sq := func(s string) kothmg.Square {
		v, err := kothmg.ParseSquare(s)
		if err != nil {
			t.Fatalf("ParseSquare(%s): %v", s, err)
		}
		return v
	}
	bits := func(names ...string) uint64 {
		var m uint64
		for _, n := range names {
			m |= sq(n).Bit()
		}
		return m
	}

	if got, want := kothmg.KnightAttacks(kothmg.A1), bits("b3", "c2"); got != want {
		t.Fatalf("knight a1 %#x want %#x", got, want)
	}
	if got, want := kothmg.KnightAttacks(kothmg.E4), bits("d6", "f6", "g5", "g3", "f2", "d2", "c3", "c5"); got != want {
		t.Fatalf("knight e4 %#x want %#x", got, want)
	}
	if got, want := kothmg.KingAttacks(kothmg.A1), bits("a2", "b1", "b2"); got != want {
		t.Fatalf("king a1 %#x want %#x", got, want)
	}
	if got, want := kothmg.PawnAttacks(kothmg.White, kothmg.E4), bits("d5", "f5"); got != want {
		t.Fatalf("white pawn e4 %#x want %#x", got, want)
	}
	if got, want := kothmg.PawnAttacks(kothmg.White, sq("a2")), bits("b3"); got != want {
		t.Fatalf("white pawn a2 %#x want %#x", got, want)
	}
	if got, want := kothmg.PawnAttacks(kothmg.Black, sq("h7")), bits("g6"); got != want {
		t.Fatalf("black pawn h7 %#x want %#x", got, want)
	}
}

func TestBetween(t *testing.T) {
	var diag uint64
	for i := 1; i < 7; i++ {
		diag |= kothmg.SquareOf(i, i).Bit()
	}
	if got := kothmg.Between(kothmg.A1, kothmg.H8); got != diag {
		t.Fatalf("Between(a1,h8)=%#x want %#x", got, diag)
	}
	var file uint64
	for r := 1; r < 7; r++ {
		file |= kothmg.SquareOf(4, r).Bit()
	}
	if got := kothmg.Between(kothmg.E1, kothmg.E8); got != file {
		t.Fatalf("Between(e1,e8)=%#x want %#x", got, file)
	}
	if got := kothmg.Between(kothmg.E1, kothmg.F1); got != 0 {
		t.Fatalf("adjacent squares have nothing between, got %#x", got)
	}
	if got := kothmg.Between(kothmg.A1, kothmg.SquareOf(1, 2)); got != 0 {
		t.Fatalf("unaligned squares have nothing between, got %#x", got)
	}
	for a := kothmg.Square(0); a < 64; a++ {
		if kothmg.Between(a, a) != 0 {
			t.Fatalf("Between(%s,%s) should be empty", a, a)
		}
		for b := kothmg.Square(0); b < 64; b++ {
			if kothmg.Between(a, b) != kothmg.Between(b, a) {
				t.Fatalf("Between not symmetric for %s,%s", a, b)
			}
			// every square between two aligned squares is attacked by a slider on a
			// when the board is otherwise empty and b is occupied
			btw := kothmg.Between(a, b)
			if btw != 0 && kothmg.QueenAttacks(a, b.Bit())&btw != btw {
				t.Fatalf("Between(%s,%s) not on a queen line", a, b)
			}
		}
	}
}
