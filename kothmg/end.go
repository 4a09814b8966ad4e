package kothmg

// Outcome is the game result after a committed move.
type Outcome uint8

const (
	NotOver Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	default:
		return "not over"
	}
}

// Reason says which rule ended the game.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonKingOfTheHill
	ReasonCheckmate
	ReasonStalemate
	ReasonRepetition
	ReasonInsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case ReasonKingOfTheHill:
		return "king of the hill"
	case ReasonCheckmate:
		return "checkmate"
	case ReasonStalemate:
		return "stalemate"
	case ReasonRepetition:
		return "threefold repetition"
	case ReasonInsufficientMaterial:
		return "insufficient material"
	default:
		return ""
	}
}

// Verdict pairs an outcome with the rule that produced it.
type Verdict struct {
	Outcome Outcome
	Reason  Reason
}

// Over reports whether the game has ended.
func (v Verdict) Over() bool { return v.Outcome != NotOver }

func (v Verdict) String() string {
	if !v.Over() {
		return v.Outcome.String()
	}
	return v.Outcome.String() + " by " + v.Reason.String()
}

// HillSquares is d4, e4, d5 and e5.
const HillSquares = uint64(1)<<D4 | uint64(1)<<E4 | uint64(1)<<D5 | uint64(1)<<E5

// OnHill reports whether sq is one of the four center squares.
func OnHill(sq Square) bool { return HillSquares&sq.Bit() != 0 }

// Counter reports how often a position hash occurred on the game line.
type Counter interface {
	Count(hash uint64) int
}

func winner(c Color) Outcome {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// CheckEnd judges s, the state reached after 'mover' moved. Rules are tried in a
// fixed order: king of the hill, checkmate, stalemate, threefold repetition,
// insufficient material. reps must already include s.
func CheckEnd(reps Counter, s GameState, mover Color) (Verdict, error) {
	if s.board.bb[mover][PieceTypeKing]&HillSquares != 0 {
		return Verdict{winner(mover), ReasonKingOfTheHill}, nil
	}

	defender := mover.Other()
	ok, err := hasLegalMovesFor(s, defender)
	if err != nil {
		return Verdict{}, err
	}
	if !ok {
		if InCheck(s, defender) {
			return Verdict{winner(mover), ReasonCheckmate}, nil
		}
		return Verdict{Draw, ReasonStalemate}, nil
	}

	if reps != nil && reps.Count(Hash(s)) >= 3 {
		return Verdict{Draw, ReasonRepetition}, nil
	}
	if InsufficientMaterial(s) {
		return Verdict{Draw, ReasonInsufficientMaterial}, nil
	}
	return Verdict{}, nil
}

func hasLegalMovesFor(s GameState, side Color) (bool, error) {
	if s.side != side {
		s.side = side
		s.epFile = 0
	}
	return HasLegalMoves(s)
}

// InsufficientMaterial always reports false; material draws are not adjudicated.
func InsufficientMaterial(GameState) bool { return false }
