package kothmg

import "fmt"

// InvalidFenError reports a structural FEN decode failure.
type InvalidFenError struct {
	FEN    string
	Reason string
}

func (e *InvalidFenError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.FEN, e.Reason)
}

// CorruptStateError reports a side with zero or several kings reaching the generator.
type CorruptStateError struct {
	Color Color
	Kings int
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state: %s has %d kings", e.Color, e.Kings)
}

// IllegalMoveError reports a move that is not among the legal successors.
type IllegalMoveError struct {
	Move string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q", e.Move)
}

// GameOverError reports a move offered after the game line has ended.
type GameOverError struct {
	Verdict Verdict
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("game over: %s", e.Verdict)
}
