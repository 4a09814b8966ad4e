package kothmg_test

import (
	"testing"

	"github.com/pkg/errors"

	"koth-engine/kothmg"
)

func mustMove(t *testing.T, uci string) kothmg.Move {
	t.Helper()
	m, err := kothmg.ParseMove(uci)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", uci, err)
	}
	return m
}

func TestPlayTransitions(t *testing.T) {
	cases := []struct {
		name, fen, move, want string
	}{
		{"double push", kothmg.FENStartPos, "e2e4",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"black double push", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "c7c5",
			"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 1"},
		{"single push clears en passant", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "a7a6",
			"rnbqkbnr/1ppppppp/p7/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"short castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1",
			"r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1"},
		{"long castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1",
			"r3k2r/8/8/8/8/8/8/2KR3R b kq - 0 1"},
		{"black long castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8",
			"2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 1"},
		{"rook move drops one right", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a2",
			"r3k2r/8/8/8/8/8/R7/4K2R b Kkq - 0 1"},
		{"rook capture drops both rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "a1a8",
			"R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1"},
		{"king step drops both rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1f1",
			"r3k2r/8/8/8/8/8/8/R4K1R b kq - 0 1"},
		{"en passant removes victim", "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1", "d5e6",
			"4k3/8/4P3/8/8/8/8/4K3 b - - 0 1"},
		{"black en passant", "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1", "d4e3",
			"4k3/8/8/8/8/4p3/8/4K3 w - - 0 1"},
		{"underpromotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n",
			"N3k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"bare promotion is a queen", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8",
			"Q3k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"capture promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8r",
			"1R2k3/8/8/8/8/8/8/4K3 b - - 0 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := kothmg.MustParseState(c.fen)
			next, err := s.Play(mustMove(t, c.move))
			if err != nil {
				t.Fatalf("Play(%s): %v", c.move, err)
			}
			if got := next.FEN(); got != c.want {
				t.Fatalf("after %s:\n got %q\nwant %q", c.move, got, c.want)
			}
			if s.FEN() != c.fen {
				t.Fatalf("receiver changed to %q", s.FEN())
			}
			if next.LastMove().String() != c.move && c.move != "a7a8" {
				t.Fatalf("LastMove=%s want %s", next.LastMove(), c.move)
			}
		})
	}
}

func TestPlayRejectsNonsense(t *testing.T) {
	s := kothmg.MustParseState(kothmg.FENStartPos)
	if _, err := kothmg.ParseMove("e2e4k"); err == nil {
		t.Fatalf("ParseMove should reject promotion letter k")
	}
	for _, uci := range []string{"e4e5", "e7e5", "a1a2", "e1e2"} {
		_, err := s.Play(mustMove(t, uci))
		var ie *kothmg.IllegalMoveError
		if !errors.As(err, &ie) {
			t.Errorf("Play(%s): expected IllegalMoveError, got %v", uci, err)
		}
	}
	if _, err := s.Play(kothmg.Move{}); err == nil {
		t.Fatalf("zero move should be rejected")
	}
}

func TestStateIsValue(t *testing.T) {
	s := kothmg.MustParseState(kothmg.FENStartPos)
	before := s
	succ, err := kothmg.LegalStates(s)
	if err != nil {
		t.Fatalf("LegalStates: %v", err)
	}
	for _, st := range succ {
		if st == s {
			t.Fatalf("successor equals parent")
		}
	}
	if s != before || s.FEN() != kothmg.FENStartPos {
		t.Fatalf("generation mutated the parent state")
	}
}

func TestBoardApply(t *testing.T) {
	b, err := kothmg.ParseBoard("r3k3/8/8/8/8/8/8/R3K3")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	after := b.Apply(kothmg.White, kothmg.PieceTypeRook, kothmg.A1.Bit(), kothmg.A8.Bit())
	if got, want := after.FEN(), "R3k3/8/8/8/8/8/8/4K3"; got != want {
		t.Fatalf("Apply capture: got %q want %q", got, want)
	}
	if after.Pieces(kothmg.Black, kothmg.PieceTypeRook) != 0 {
		t.Fatalf("captured rook still on a black bitboard")
	}
	if after.Occupancy(kothmg.Black) != kothmg.E8.Bit() {
		t.Fatalf("black occupancy %#x", after.Occupancy(kothmg.Black))
	}
	if b.FEN() != "r3k3/8/8/8/8/8/8/R3K3" {
		t.Fatalf("Apply mutated its receiver")
	}
}

func TestBoardPlaceClear(t *testing.T) {
	var b kothmg.Board
	b = b.Place(kothmg.E4, kothmg.BlackQueen)
	if p, ok := b.Occupant(kothmg.E4); !ok || p != kothmg.BlackQueen {
		t.Fatalf("Occupant(e4)=%v,%v", p, ok)
	}
	b = b.Place(kothmg.E4, kothmg.WhiteKnight)
	if p, _ := b.Occupant(kothmg.E4); p != kothmg.WhiteKnight {
		t.Fatalf("Place should replace, got %v", p)
	}
	if b.Occupancy(kothmg.Black) != 0 {
		t.Fatalf("replaced piece left black occupancy")
	}
	b = b.Clear(kothmg.E4)
	if b.Occupied() != 0 {
		t.Fatalf("Clear left %#x", b.Occupied())
	}
}

func TestKingSquare(t *testing.T) {
	b, _ := kothmg.ParseBoard("kk6/8/8/8/8/8/8/4K3")
	if sq, n := b.KingSquare(kothmg.White); sq != kothmg.E1 || n != 1 {
		t.Fatalf("white king %v,%d", sq, n)
	}
	if sq, n := b.KingSquare(kothmg.Black); sq != kothmg.NoSquare || n != 2 {
		t.Fatalf("black kings %v,%d", sq, n)
	}
}
