package kothmg

import "math/rand"

// Zobrist keys: one per (color, piece type, square), one per castling right and one
// per en-passant file. Side to move is deliberately not hashed.
var zobristPiece [2][7][64]uint64
var zobristCastle [4]uint64
var zobristEnPassant [8]uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed so hashes are stable across runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := 0; c < 2; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
}

// Hash computes the Zobrist key of a state from scratch.
func Hash(s GameState) uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			for bb := s.board.bb[c][pt]; bb != 0; {
				key ^= zobristPiece[c][pt][popLSB(&bb)]
			}
		}
	}
	for i := range zobristCastle {
		if s.castling&(1<<uint(i)) != 0 {
			key ^= zobristCastle[i]
		}
	}
	if s.epFile != 0 {
		key ^= zobristEnPassant[s.epFile-1]
	}
	return key
}

// Hash returns the Zobrist key of the state.
func (s GameState) Hash() uint64 { return Hash(s) }

// Repetitions counts how often each position hash occurred on the committed game
// line. Updates must come in Record/Revert pairs in LIFO order. Not safe for
// concurrent use.
type Repetitions struct {
	counts map[uint64]int
}

// NewRepetitions returns an empty table. The zero value is also ready to use.
func NewRepetitions() *Repetitions {
	return &Repetitions{counts: make(map[uint64]int)}
}

// Record counts one more occurrence of h and returns the new count.
func (r *Repetitions) Record(h uint64) int {
	if r.counts == nil {
		r.counts = make(map[uint64]int)
	}
	r.counts[h]++
	return r.counts[h]
}

// Revert undoes the latest Record of h.
func (r *Repetitions) Revert(h uint64) {
	n := r.counts[h] - 1
	if n <= 0 {
		delete(r.counts, h)
		return
	}
	r.counts[h] = n
}

// Count returns how often h has occurred.
func (r *Repetitions) Count(h uint64) int { return r.counts[h] }

// Len returns the number of distinct positions recorded.
func (r *Repetitions) Len() int { return len(r.counts) }
