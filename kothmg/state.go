package kothmg

import "strings"

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingAll = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

func castleFlag(c Color, short bool) CastlingRights {
	switch {
	case c == White && short:
		return CastlingWhiteK
	case c == White:
		return CastlingWhiteQ
	case short:
		return CastlingBlackK
	default:
		return CastlingBlackQ
	}
}

// rightsLost maps a touched square to the rights that die with it.
var rightsLost = [64]CastlingRights{
	A1: CastlingWhiteQ,
	H1: CastlingWhiteK,
	A8: CastlingBlackQ,
	H8: CastlingBlackK,
}

// update clears every right whose king or rook home square the move touched.
// Rights only ever turn off.
func (cr CastlingRights) update(from, to Square, pt PieceType, us Color) CastlingRights {
	if pt == PieceTypeKing {
		cr &^= castleFlag(us, true) | castleFlag(us, false)
	}
	return cr &^ (rightsLost[from] | rightsLost[to])
}

func (cr CastlingRights) String() string {
	if cr == 0 {
		return "-"
	}
	var sb strings.Builder
	for i, ch := range "KQkq" {
		if cr&(1<<uint(i)) != 0 {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// GameState is an immutable position: placement, the move that produced it, side to
// move, castling rights and the en-passant file (0 = none, 1..8 = files a..h).
// Transitions build a new value; nothing mutates a GameState after construction,
// so any number of goroutines may read the same state.
type GameState struct {
	board    Board
	lastMove Move
	side     Color
	castling CastlingRights
	epFile   uint8
}

// NewGameState starts a game from a placement with all four castling rights set.
func NewGameState(b Board, side Color) GameState {
	return GameState{board: b, side: side, castling: CastlingAll}
}

// Board returns the piece placement.
func (s GameState) Board() Board { return s.board }

// LastMove returns the move that produced this state (zero for a root state).
func (s GameState) LastMove() Move { return s.lastMove }

// SideToMove reports which side is to play.
func (s GameState) SideToMove() Color { return s.side }

// Castling returns the castling rights bitmask.
func (s GameState) Castling() CastlingRights { return s.castling }

// CanCastle reports whether c still holds the short or long castling right.
func (s GameState) CanCastle(c Color, short bool) bool {
	return s.castling&castleFlag(c, short) != 0
}

// EnPassantFile returns 0 when no en-passant capture is available, else file+1.
func (s GameState) EnPassantFile() int { return int(s.epFile) }

// EnPassantSquare returns the square a capturing pawn would land on, or NoSquare.
func (s GameState) EnPassantSquare() Square {
	if s.epFile == 0 {
		return NoSquare
	}
	rank := 5
	if s.side == Black {
		rank = 2
	}
	return SquareOf(int(s.epFile)-1, rank)
}

// WithCastling returns a copy with the given castling rights.
func (s GameState) WithCastling(cr CastlingRights) GameState {
	s.castling = cr & CastlingAll
	return s
}

// WithEnPassantFile returns a copy with the en-passant file set (0 clears it).
func (s GameState) WithEnPassantFile(file int) GameState {
	if file < 0 || file > 8 {
		file = 0
	}
	s.epFile = uint8(file)
	return s
}

// Play applies m for the side to move without a legality check. Special moves are
// recognised from the pre-move state. A pawn reaching the last rank without a
// promotion piece becomes a queen.
func (s GameState) Play(m Move) (GameState, error) {
	if popCount(m.Origin) != 1 || popCount(m.Target) != 1 {
		return s, &IllegalMoveError{Move: m.String()}
	}
	pt := s.board.pieceTypeAt(s.side, m.Origin)
	if pt == PieceTypeNone || s.board.occ[s.side]&m.Target != 0 {
		return s, &IllegalMoveError{Move: m.String()}
	}
	if pt == PieceTypePawn && isLastRank(m.To()) && m.Promotion == PieceTypeNone {
		m.Promotion = PieceTypeQueen
	}
	if pt != PieceTypePawn || !isLastRank(m.To()) {
		m.Promotion = PieceTypeNone
	} else if m.Promotion < PieceTypeKnight || m.Promotion > PieceTypeQueen {
		return s, &IllegalMoveError{Move: m.String()}
	}
	return s.advance(pt, m), nil
}

func isLastRank(sq Square) bool {
	r := sq.Rank()
	return r == 0 || r == 7
}

// advance is the transition shared by Play and the generator.
func (s GameState) advance(pt PieceType, m Move) GameState {
	us := s.side
	them := us.Other()
	from, to := m.From(), m.To()

	next := GameState{
		board:    s.board.Apply(us, pt, m.Origin, m.Target),
		lastMove: m,
		side:     them,
		castling: s.castling.update(from, to, pt, us),
	}

	switch pt {
	case PieceTypePawn:
		df := abs(to.File() - from.File())
		if df == 1 && s.board.Occupied()&m.Target == 0 {
			captured := SquareOf(to.File(), from.Rank()).Bit()
			next.board.bb[them][PieceTypePawn] &^= captured
			next.board.occ[them] &^= captured
		}
		if abs(to.Rank()-from.Rank()) == 2 {
			next.epFile = uint8(from.File() + 1)
		}
		if m.Promotion != PieceTypeNone {
			next.board.bb[us][PieceTypePawn] &^= m.Target
			next.board.bb[us][m.Promotion] |= m.Target
		}
	case PieceTypeKing:
		if abs(to.File()-from.File()) == 2 {
			rank := from.Rank()
			rookFrom, rookTo := SquareOf(7, rank), SquareOf(5, rank)
			if to.File() < from.File() {
				rookFrom, rookTo = SquareOf(0, rank), SquareOf(3, rank)
			}
			next.board = next.board.Apply(us, PieceTypeRook, rookFrom.Bit(), rookTo.Bit())
		}
	}
	return next
}
