package kothmg

import (
	"strings"

	"github.com/pkg/errors"
)

// Move is a pair of single-bit masks; Origin|Target is the XOR update applied to the
// moving piece's bitboard. The moving piece is not recorded: it is whatever stands on
// Origin when the move is applied. Promotion is set only on the four sibling moves of
// a promotion family.
type Move struct {
	Origin    uint64
	Target    uint64
	Promotion PieceType
}

// NewMove builds a move from two squares.
func NewMove(from, to Square, promo PieceType) Move {
	return Move{Origin: from.Bit(), Target: to.Bit(), Promotion: promo}
}

// IsZero reports the root-state "no move".
func (m Move) IsZero() bool { return m.Origin == 0 && m.Target == 0 }

// From returns the origin square.
func (m Move) From() Square {
	if m.Origin == 0 {
		return NoSquare
	}
	return Square(lsb(m.Origin))
}

// To returns the target square.
func (m Move) To() Square {
	if m.Target == 0 {
		return NoSquare
	}
	return Square(lsb(m.Target))
}

var promoLetters = [...]byte{PieceTypeKnight: 'n', PieceTypeBishop: 'b', PieceTypeRook: 'r', PieceTypeQueen: 'q'}

// String produces the UCI form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if m.Promotion >= PieceTypeKnight && m.Promotion <= PieceTypeQueen {
		str += string(promoLetters[m.Promotion])
	}
	return str
}

// ParseMove converts a UCI string (e2e4, e7e8q) into a Move.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return Move{}, errors.Errorf("invalid move length %q", movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", movestr)
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", movestr)
	}
	var promo PieceType
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = PieceTypeQueen
		case 'r':
			promo = PieceTypeRook
		case 'b':
			promo = PieceTypeBishop
		case 'n':
			promo = PieceTypeKnight
		default:
			return Move{}, errors.Errorf("invalid promotion piece in %q", movestr)
		}
	}
	return NewMove(from, to, promo), nil
}
