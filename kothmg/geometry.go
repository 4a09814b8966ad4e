package kothmg

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Square represents a board position (0-63), a1 = 0, h1 = 7, a8 = 56.
type Square int

const NoSquare Square = -1

// Named squares used by castling and the hill.
const (
	A1 Square = 0
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	D4 Square = 27
	E4 Square = 28
	D5 Square = 35
	E5 Square = 36
	A8 Square = 56
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// OutOfBoundsError reports a file/rank pair outside the 8x8 board.
type OutOfBoundsError struct {
	File, Rank int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("square out of bounds: file=%d rank=%d", e.File, e.Rank)
}

// WithinBounds reports whether file and rank both lie in [0,7].
func WithinBounds(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// SquareOf maps (file, rank) to a square. Callers must check WithinBounds first.
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// CheckedSquareOf is SquareOf with the bounds precondition turned into an error.
func CheckedSquareOf(file, rank int) (Square, error) {
	if !WithinBounds(file, rank) {
		return NoSquare, &OutOfBoundsError{File: file, Rank: rank}
	}
	return SquareOf(file, rank), nil
}

// File returns the file index, 0 = a.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank index, 0 = rank 1.
func (sq Square) Rank() int { return int(sq) >> 3 }

// Offset shifts the square by df files and dr ranks.
func (sq Square) Offset(df, dr int) (Square, bool) {
	f, r := sq.File()+df, sq.Rank()+dr
	if !WithinBounds(f, r) {
		return NoSquare, false
	}
	return SquareOf(f, r), true
}

// Bit returns the single-bit mask of the square.
func (sq Square) Bit() uint64 { return 1 << uint64(sq) }

func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic notation ("e4") to a square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, errors.Errorf("invalid algebraic square %q", alg)
	}
	return CheckedSquareOf(int(alg[0])-'a', int(alg[1])-'1')
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
