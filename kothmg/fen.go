package kothmg

import (
	"strings"

	"github.com/pkg/errors"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPlacement is the piece-placement field of FENStartPos.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Char returns the FEN letter of the piece, '?' for NoPiece.
func (p Piece) Char() byte {
	const letters = "?PNBRQK"
	t := p.Type()
	if t == PieceTypeNone || t > PieceTypeKing {
		return '?'
	}
	ch := letters[t]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func invalidFen(fen, reason string) error {
	return errors.WithStack(&InvalidFenError{FEN: fen, Reason: reason})
}

// ParseBoard decodes the piece-placement field of a FEN string. The board is built
// only when every rank decodes to exactly eight files; piece counts are not checked.
func ParseBoard(placement string) (Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return Board{}, invalidFen(placement, "incorrect number of ranks")
	}

	var b Board
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return Board{}, invalidFen(placement, "empty rank description")
		}
		rank := 7 - i // first rank in the string is rank 8
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return Board{}, invalidFen(placement, "too many squares in rank")
				}
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return Board{}, invalidFen(placement, "unrecognized piece character "+string(ch))
			}
			if file >= 8 {
				return Board{}, invalidFen(placement, "too many squares in rank")
			}
			bit := SquareOf(file, rank).Bit()
			c := piece.Color()
			b.bb[c][piece.Type()] |= bit
			b.occ[c] |= bit
			file++
		}
		if file != 8 {
			return Board{}, invalidFen(placement, "rank does not have 8 columns")
		}
	}
	return b, nil
}

// FEN returns the piece-placement field for the board.
func (b Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p, ok := b.Occupant(SquareOf(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ParseState parses a FEN string into a GameState. Only the placement field is
// required; a missing side defaults to White, missing castling rights to all four.
// Halfmove and fullmove clocks are accepted and ignored.
func ParseState(fen string) (GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return GameState{}, invalidFen(fen, "empty")
	}
	b, err := ParseBoard(fields[0])
	if err != nil {
		return GameState{}, err
	}

	side := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			side = Black
		default:
			return GameState{}, invalidFen(fen, "side to move must be 'w' or 'b'")
		}
	}
	s := NewGameState(b, side)

	if len(fields) > 2 {
		var cr CastlingRights
		if fields[2] != "-" {
			for _, ch := range fields[2] {
				switch ch {
				case 'K':
					cr |= CastlingWhiteK
				case 'Q':
					cr |= CastlingWhiteQ
				case 'k':
					cr |= CastlingBlackK
				case 'q':
					cr |= CastlingBlackQ
				default:
					return GameState{}, invalidFen(fen, "invalid castling rights character")
				}
			}
		}
		s = s.WithCastling(cr)
	}

	if len(fields) > 3 && fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return GameState{}, invalidFen(fen, "invalid en passant square")
		}
		wantRank := 5
		if side == Black {
			wantRank = 2
		}
		if ep.Rank() != wantRank {
			return GameState{}, invalidFen(fen, "en passant square on wrong rank")
		}
		s = s.WithEnPassantFile(ep.File() + 1)
	}
	return s, nil
}

// MustParseState is ParseState that panics on invalid input.
func MustParseState(fen string) GameState {
	s, err := ParseState(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// FEN serialises the full state. Clocks are not tracked and are written as "0 1".
func (s GameState) FEN() string {
	var sb strings.Builder
	sb.WriteString(s.board.FEN())
	if s.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(s.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(s.EnPassantSquare().String())
	sb.WriteString(" 0 1")
	return sb.String()
}
