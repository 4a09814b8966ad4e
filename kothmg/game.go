package kothmg

// Game is the committed game line: a stack of states plus the repetition table
// that mirrors it. Commit and Takeback keep both in step (LIFO). A Game belongs to
// one goroutine; search code should work on GameState values instead.
type Game struct {
	states   []GameState
	verdicts []Verdict
	reps     *Repetitions
}

// NewGame starts a game line at start.
func NewGame(start GameState) *Game {
	g := &Game{
		states:   []GameState{start},
		verdicts: []Verdict{{}},
		reps:     NewRepetitions(),
	}
	g.reps.Record(Hash(start))
	return g
}

// Current returns the state at the tip of the line.
func (g *Game) Current() GameState { return g.states[len(g.states)-1] }

// Ply returns the number of committed moves.
func (g *Game) Ply() int { return len(g.states) - 1 }

// Verdict returns the verdict recorded for the current state.
func (g *Game) Verdict() Verdict { return g.verdicts[len(g.verdicts)-1] }

// Repetitions exposes the hash counts of the committed line.
func (g *Game) Repetitions() *Repetitions { return g.reps }

// History returns the committed states, oldest first. The slice must not be modified.
func (g *Game) History() []GameState { return g.states }

// Successors returns the legal successors of the current state.
func (g *Game) Successors() ([]GameState, error) { return LegalStates(g.Current()) }

// Commit pushes next onto the line and judges it. next should be one of the
// states returned by Successors. A finished game accepts no further moves.
func (g *Game) Commit(next GameState) (Verdict, error) {
	if v := g.Verdict(); v.Over() {
		return v, &GameOverError{Verdict: v}
	}
	mover := g.Current().side
	g.states = append(g.states, next)
	g.reps.Record(Hash(next))
	v, err := CheckEnd(g.reps, next, mover)
	if err != nil {
		g.Takeback()
		return Verdict{}, err
	}
	g.verdicts = append(g.verdicts, v)
	return v, nil
}

// Takeback pops the last committed state. It reports false at the start of the line.
func (g *Game) Takeback() bool {
	n := len(g.states)
	if n <= 1 {
		return false
	}
	g.reps.Revert(Hash(g.states[n-1]))
	g.states = g.states[:n-1]
	if len(g.verdicts) > len(g.states) {
		g.verdicts = g.verdicts[:len(g.states)]
	}
	return true
}

// PlayUCI commits the legal successor reached by the UCI move string.
func (g *Game) PlayUCI(uci string) (Verdict, error) {
	if v := g.Verdict(); v.Over() {
		return v, &GameOverError{Verdict: v}
	}
	m, err := ParseMove(uci)
	if err != nil {
		return Verdict{}, err
	}
	succ, err := g.Successors()
	if err != nil {
		return Verdict{}, err
	}
	for _, st := range succ {
		lm := st.lastMove
		if lm.Origin != m.Origin || lm.Target != m.Target {
			continue
		}
		if lm.Promotion == PieceTypeNone && m.Promotion != PieceTypeNone {
			continue
		}
		if lm.Promotion != PieceTypeNone && lm.Promotion != m.Promotion {
			if m.Promotion != PieceTypeNone || lm.Promotion != PieceTypeQueen {
				continue
			}
		}
		return g.Commit(st)
	}
	return Verdict{}, &IllegalMoveError{Move: uci}
}
