package kothmg

const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = fileA << 7
)

// Castle corridors per color and wing: squares that must be empty and squares
// (king start included) that must not be threatened.
type corridor struct {
	kingFrom, kingTo Square
	rookHome         Square
	empty            uint64
	safe             uint64
}

var corridors [2][2]corridor // [color][0=short,1=long]

func init() {
	for c := White; c <= Black; c++ {
		rank := 0
		if c == Black {
			rank = 7
		}
		sq := func(file int) Square { return SquareOf(file, rank) }
		corridors[c][0] = corridor{
			kingFrom: sq(4), kingTo: sq(6), rookHome: sq(7),
			empty: sq(5).Bit() | sq(6).Bit(),
			safe:  sq(4).Bit() | sq(5).Bit() | sq(6).Bit(),
		}
		corridors[c][1] = corridor{
			kingFrom: sq(4), kingTo: sq(2), rookHome: sq(0),
			empty: sq(1).Bit() | sq(2).Bit() | sq(3).Bit(),
			safe:  sq(2).Bit() | sq(3).Bit() | sq(4).Bit(),
		}
	}
}

// Pins describes the pinned pieces of the side to move. Lateral and Diagonal are
// the unions of rank/file and diagonal pin lines (pinner included, king excluded).
type Pins struct {
	Lateral  uint64
	Diagonal uint64
	line     [64]uint64 // per pinned square; 0 = not pinned
}

// Line returns the squares a piece on sq may still move to, Unrestricted if it is not pinned.
func (p *Pins) Line(sq Square) uint64 {
	if l := p.line[sq]; l != 0 {
		return l
	}
	return Unrestricted
}

// Pinned returns every pinned square.
func (p *Pins) Pinned() uint64 {
	var m uint64
	for sq, l := range p.line {
		if l != 0 {
			m |= Square(sq).Bit()
		}
	}
	return m
}

// analysis is the per-ply view the generator works from.
type analysis struct {
	us, them   Color
	king       Square
	own, opp   uint64
	occ        uint64
	threatened uint64
	checkers   uint64
	checks     uint64
	pins       Pins
}

// attacksBy returns every square attacked by 'by' for the given occupancy.
func attacksBy(b Board, by Color, occ uint64) uint64 {
	var att uint64
	pawns := b.bb[by][PieceTypePawn]
	if by == White {
		att |= (pawns&^fileA)<<7 | (pawns&^fileH)<<9
	} else {
		att |= (pawns&^fileA)>>9 | (pawns&^fileH)>>7
	}
	for n := b.bb[by][PieceTypeKnight]; n != 0; {
		att |= knightMoves[popLSB(&n)]
	}
	diag := b.bb[by][PieceTypeBishop] | b.bb[by][PieceTypeQueen]
	for d := diag; d != 0; {
		att |= BishopAttacks(Square(popLSB(&d)), occ)
	}
	lat := b.bb[by][PieceTypeRook] | b.bb[by][PieceTypeQueen]
	for l := lat; l != 0; {
		att |= RookAttacks(Square(popLSB(&l)), occ)
	}
	for k := b.bb[by][PieceTypeKing]; k != 0; {
		att |= kingMoves[popLSB(&k)]
	}
	return att
}

// attackersOf returns the pieces of 'by' attacking sq.
func attackersOf(b Board, sq Square, by Color, occ uint64) uint64 {
	return pawnAttacks[by.Other()][sq]&b.bb[by][PieceTypePawn] |
		knightMoves[sq]&b.bb[by][PieceTypeKnight] |
		kingMoves[sq]&b.bb[by][PieceTypeKing] |
		BishopAttacks(sq, occ)&(b.bb[by][PieceTypeBishop]|b.bb[by][PieceTypeQueen]) |
		RookAttacks(sq, occ)&(b.bb[by][PieceTypeRook]|b.bb[by][PieceTypeQueen])
}

// Threatened returns the squares attacked by 'by'. The defending king is removed
// from the occupancy so squares behind it along a checking line stay threatened.
func Threatened(s GameState, by Color) uint64 {
	b := s.board
	occ := b.Occupied() &^ b.bb[by.Other()][PieceTypeKing]
	return attacksBy(b, by, occ)
}

// InCheck reports whether side's king is attacked. A side without exactly one
// king is never in check.
func InCheck(s GameState, side Color) bool {
	ksq, n := s.board.KingSquare(side)
	if n != 1 {
		return false
	}
	return attackersOf(s.board, ksq, side.Other(), s.board.Occupied()) != 0
}

// InCheck reports whether side's king is attacked.
func (s GameState) InCheck(side Color) bool { return InCheck(s, side) }

// PinsOf computes the pins against the side to move.
func PinsOf(s GameState) (Pins, error) {
	a, err := analyse(s)
	if err != nil {
		return Pins{}, err
	}
	return a.pins, nil
}

func analyse(s GameState) (analysis, error) {
	b := s.board
	a := analysis{us: s.side, them: s.side.Other()}
	ksq, n := b.KingSquare(a.us)
	if n != 1 {
		return a, &CorruptStateError{Color: a.us, Kings: n}
	}
	if _, n := b.KingSquare(a.them); n != 1 {
		return a, &CorruptStateError{Color: a.them, Kings: n}
	}
	a.king = ksq
	a.own = b.occ[a.us]
	a.opp = b.occ[a.them]
	a.occ = a.own | a.opp

	// 1. threatened squares, seen through our own king
	a.threatened = attacksBy(b, a.them, a.occ&^ksq.Bit())

	// 2. checks
	a.checks = Unrestricted
	if a.threatened&ksq.Bit() != 0 {
		a.checkers = attackersOf(b, ksq, a.them, a.occ)
		if popCount(a.checkers) == 1 {
			c := Square(lsb(a.checkers))
			a.checks = a.checkers | Between(ksq, c)
		} else {
			a.checks = 0
		}
	}

	// 3. pins: sliders that reach the king once the first blocker is looked through
	lat := b.bb[a.them][PieceTypeRook] | b.bb[a.them][PieceTypeQueen]
	diag := b.bb[a.them][PieceTypeBishop] | b.bb[a.them][PieceTypeQueen]
	pinners := RookXray(ksq, a.occ) &^ RookAttacks(ksq, a.occ) & lat
	for p := pinners; p != 0; {
		ps := Square(popLSB(&p))
		line := Between(ksq, ps)
		if blocker := line & a.occ & a.own; blocker != 0 {
			a.pins.line[lsb(blocker)] = line | ps.Bit()
			a.pins.Lateral |= line | ps.Bit()
		}
	}
	pinners = BishopXray(ksq, a.occ) &^ BishopAttacks(ksq, a.occ) & diag
	for p := pinners; p != 0; {
		ps := Square(popLSB(&p))
		line := Between(ksq, ps)
		if blocker := line & a.occ & a.own; blocker != 0 {
			a.pins.line[lsb(blocker)] = line | ps.Bit()
			a.pins.Diagonal |= line | ps.Bit()
		}
	}
	return a, nil
}

// targetMask is the legal-target filter for a non-king piece on sq.
func (a *analysis) targetMask(sq Square) uint64 {
	mask := a.checks
	if l := a.pins.line[sq]; l != 0 {
		mask &= l
	}
	return mask &^ a.own
}

// LegalStates returns every legal successor of s for the side to move. Promotions
// yield four sibling states. An empty result means checkmate or stalemate.
func LegalStates(s GameState) ([]GameState, error) {
	a, err := analyse(s)
	if err != nil {
		return nil, err
	}
	out := make([]GameState, 0, 48)
	b := s.board
	us := a.us

	emit := func(pt PieceType, from Square, targets uint64) {
		for t := targets; t != 0; {
			to := Square(popLSB(&t))
			out = append(out, s.advance(pt, NewMove(from, to, PieceTypeNone)))
		}
	}

	// 4. king moves are always generated; in double check nothing else is
	kingTargets := kingMoves[a.king] &^ a.own &^ a.threatened
	if popCount(a.checkers) >= 2 {
		emit(PieceTypeKing, a.king, kingTargets)
		return out, nil
	}

	// pawns
	forward, startRank, lastRank := 8, 1, 7
	if us == Black {
		forward, startRank, lastRank = -8, 6, 0
	}
	for p := b.bb[us][PieceTypePawn]; p != 0; {
		from := Square(popLSB(&p))
		mask := a.targetMask(from)
		var targets uint64
		one := from + Square(forward)
		if from.Rank() != lastRank && a.occ&one.Bit() == 0 {
			targets |= one.Bit()
			if from.Rank() == startRank {
				two := one + Square(forward)
				if a.occ&two.Bit() == 0 {
					targets |= two.Bit()
				}
			}
		}
		targets |= pawnAttacks[us][from] & a.opp
		targets &= mask
		for t := targets; t != 0; {
			to := Square(popLSB(&t))
			if to.Rank() != lastRank {
				out = append(out, s.advance(PieceTypePawn, NewMove(from, to, PieceTypeNone)))
				continue
			}
			// 7. promotion family
			for _, promo := range [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight} {
				out = append(out, s.advance(PieceTypePawn, NewMove(from, to, promo)))
			}
		}
	}

	// 6. en passant
	if ep := s.EnPassantSquare(); ep != NoSquare {
		victim := SquareOf(ep.File(), ep.Rank()-forward/8)
		if b.bb[a.them][PieceTypePawn]&victim.Bit() != 0 && a.occ&ep.Bit() == 0 {
			for p := pawnAttacks[a.them][ep] & b.bb[us][PieceTypePawn]; p != 0; {
				from := Square(popLSB(&p))
				if a.checks != Unrestricted && a.checks&(ep.Bit()|victim.Bit()) == 0 {
					continue
				}
				if l := a.pins.line[from]; l != 0 && l&ep.Bit() == 0 {
					continue
				}
				// both pawns leave the capture rank at once; a single-blocker pin
				// scan cannot see that, so test the king directly
				occ := a.occ&^from.Bit()&^victim.Bit() | ep.Bit()
				b2 := b
				b2.bb[a.them][PieceTypePawn] &^= victim.Bit()
				if attackersOf(b2, a.king, a.them, occ) != 0 {
					continue
				}
				out = append(out, s.advance(PieceTypePawn, NewMove(from, ep, PieceTypeNone)))
			}
		}
	}

	for pt := PieceTypeKnight; pt <= PieceTypeQueen; pt++ {
		for p := b.bb[us][pt]; p != 0; {
			from := Square(popLSB(&p))
			var att uint64
			switch pt {
			case PieceTypeKnight:
				if a.pins.line[from] != 0 {
					continue
				}
				att = knightMoves[from]
			case PieceTypeBishop:
				att = BishopAttacks(from, a.occ)
			case PieceTypeRook:
				att = RookAttacks(from, a.occ)
			case PieceTypeQueen:
				att = QueenAttacks(from, a.occ)
			}
			emit(pt, from, att&a.targetMask(from))
		}
	}

	emit(PieceTypeKing, a.king, kingTargets)

	// 5. castling
	if a.checkers == 0 {
		for wing, short := range [2]bool{true, false} {
			cor := corridors[us][wing]
			if !s.CanCastle(us, short) || a.king != cor.kingFrom {
				continue
			}
			if b.bb[us][PieceTypeRook]&cor.rookHome.Bit() == 0 {
				continue
			}
			if a.occ&cor.empty|a.threatened&cor.safe != 0 {
				continue
			}
			out = append(out, s.advance(PieceTypeKing, NewMove(cor.kingFrom, cor.kingTo, PieceTypeNone)))
		}
	}
	return out, nil
}

// LegalMoves returns the moves leading to each legal successor.
func LegalMoves(s GameState) ([]Move, error) {
	states, err := LegalStates(s)
	if err != nil {
		return nil, err
	}
	moves := make([]Move, len(states))
	for i, st := range states {
		moves[i] = st.lastMove
	}
	return moves, nil
}

// HasLegalMoves reports whether the side to move has any legal move.
func HasLegalMoves(s GameState) (bool, error) {
	states, err := LegalStates(s)
	return len(states) > 0, err
}
