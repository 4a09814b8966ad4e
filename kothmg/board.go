package kothmg

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	if color == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Board is an immutable piece placement: one bitboard per color and piece type plus
// the per-color unions. The twelve base bitboards are pairwise disjoint. Every
// editing method returns a new Board and leaves the receiver untouched.
type Board struct {
	bb  [2][7]uint64 // [color][piece type]; index 0 unused
	occ [2]uint64
}

// Pieces returns the bitboard of one color's pieces of type pt.
func (b Board) Pieces(c Color, pt PieceType) uint64 { return b.bb[c][pt] }

// PieceType returns the bitboard of pieces of type pt, both colors.
func (b Board) PieceType(pt PieceType) uint64 { return b.bb[White][pt] | b.bb[Black][pt] }

// Occupancy returns the union of one color's pieces.
func (b Board) Occupancy(c Color) uint64 { return b.occ[c] }

// Occupied returns every occupied square.
func (b Board) Occupied() uint64 { return b.occ[White] | b.occ[Black] }

// Occupant reports the piece standing on sq, if any.
func (b Board) Occupant(sq Square) (Piece, bool) {
	bit := sq.Bit()
	for c := White; c <= Black; c++ {
		if b.occ[c]&bit == 0 {
			continue
		}
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			if b.bb[c][pt]&bit != 0 {
				return PieceFromType(c, pt), true
			}
		}
	}
	return NoPiece, false
}

// pieceTypeAt returns the type of c's piece on the squares of mask, or PieceTypeNone.
func (b Board) pieceTypeAt(c Color, mask uint64) PieceType {
	if b.occ[c]&mask == 0 {
		return PieceTypeNone
	}
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		if b.bb[c][pt]&mask != 0 {
			return pt
		}
	}
	return PieceTypeNone
}

// Place returns a copy of the board with p on sq, replacing any occupant.
func (b Board) Place(sq Square, p Piece) Board {
	b = b.Clear(sq)
	if p == NoPiece {
		return b
	}
	c := p.Color()
	b.bb[c][p.Type()] |= sq.Bit()
	b.occ[c] |= sq.Bit()
	return b
}

// Clear returns a copy of the board with sq emptied.
func (b Board) Clear(sq Square) Board {
	mask := ^sq.Bit()
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			b.bb[c][pt] &= mask
		}
		b.occ[c] &= mask
	}
	return b
}

// Apply moves c's piece of type pt from origin to target (both single-bit masks)
// and removes whatever opponent piece stood on target.
func (b Board) Apply(c Color, pt PieceType, origin, target uint64) Board {
	delta := origin | target
	b.bb[c][pt] ^= delta
	b.occ[c] ^= delta
	them := c.Other()
	if b.occ[them]&target != 0 {
		for t := PieceTypePawn; t <= PieceTypeKing; t++ {
			b.bb[them][t] &^= target
		}
		b.occ[them] &^= target
	}
	return b
}

// KingSquare returns the square of c's king and how many kings c has.
// The square is NoSquare unless the count is exactly one.
func (b Board) KingSquare(c Color) (Square, int) {
	kings := b.bb[c][PieceTypeKing]
	n := popCount(kings)
	if n != 1 {
		return NoSquare, n
	}
	return Square(lsb(kings)), 1
}
