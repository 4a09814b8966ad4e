// Package crosscheck compares the kothmg generator against independent move
// generators: dragontoothmg and goosemg for perft node counts and notnil/chess for
// legal-move counts.
package crosscheck

import (
	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"koth-engine/kothmg"
)

// DragontoothPerft counts leaf nodes of the position with dragontoothmg.
func DragontoothPerft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return dtPerft(&board, depth)
}

func dtPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth <= 1 {
		if depth <= 0 {
			return 1
		}
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dtPerft(b, depth-1)
		undo()
	}
	return nodes
}

// GoosePerft counts leaf nodes of the position with goosemg.
func GoosePerft(fen string, depth int) (uint64, error) {
	board, err := goose.ParseFEN(fen)
	if err != nil {
		return 0, errors.Wrapf(err, "goosemg rejected %q", fen)
	}
	return goose.Perft(board, depth), nil
}

// DragontoothCount returns the number of legal moves dragontoothmg finds.
func DragontoothCount(fen string) int {
	board := dragontoothmg.ParseFen(fen)
	return len(board.GenerateLegalMoves())
}

// DragontoothMoves returns the UCI strings of dragontoothmg's legal moves.
func DragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// NotnilCount returns the number of legal moves notnil/chess finds in the position.
func NotnilCount(fen string) (int, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return 0, errors.Wrapf(err, "notnil/chess rejected %q", fen)
	}
	game := chess.NewGame(opt)
	return len(game.ValidMoves()), nil
}

// Compare runs perft on s with kothmg, dragontoothmg and goosemg and reports the
// first mismatch.
func Compare(s kothmg.GameState, depth int) error {
	got, err := kothmg.Perft(s, depth)
	if err != nil {
		return errors.Wrap(err, "kothmg perft")
	}
	fen := s.FEN()
	if want := DragontoothPerft(fen, depth); got != want {
		return errors.Errorf("perft(%d) mismatch on %q: kothmg=%d dragontoothmg=%d", depth, fen, got, want)
	}
	want, err := GoosePerft(fen, depth)
	if err != nil {
		return err
	}
	if got != want {
		return errors.Errorf("perft(%d) mismatch on %q: kothmg=%d goosemg=%d", depth, fen, got, want)
	}
	return nil
}

// CompareMoves checks that kothmg and notnil/chess agree on the number of legal
// moves in s.
func CompareMoves(s kothmg.GameState) error {
	moves, err := kothmg.LegalMoves(s)
	if err != nil {
		return errors.Wrap(err, "kothmg moves")
	}
	fen := s.FEN()
	want, err := NotnilCount(fen)
	if err != nil {
		return err
	}
	if len(moves) != want {
		return errors.Errorf("move count mismatch on %q: kothmg=%d notnil=%d (dragontoothmg: %v)",
			fen, len(moves), want, DragontoothMoves(fen))
	}
	return nil
}
