package kothmg

import "math/bits"

// Unrestricted is the all-squares target filter: no check to answer, no pin to respect.
const Unrestricted = ^uint64(0)

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]uint64
var kingMoves [64]uint64

// pawnAttacks[color][sq] gives the squares a pawn of 'color' on 'sq' captures on.
var pawnAttacks [2][64]uint64

// Rook directions: N, S, E, W. Bishop directions: NE, NW, SE, SW.
var rookDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirs = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// Relevant occupancy masks and occupancy-indexed attack tables.
var rookMask [64]uint64
var bishopMask [64]uint64
var rookAttTable [64][]uint64
var bishopAttTable [64][]uint64

// Same index space as the attack tables, but the walk sees through the first blocker.
var rookPinTable [64][]uint64
var bishopPinTable [64][]uint64

// between[a][b] holds the squares strictly between two aligned squares.
var between [64][64]uint64

func init() {
	initLeaperTables()
	initSliderTables()
	initBetween()
}

// initLeaperTables precomputes knight, king and pawn capture bitboards.
func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := Square(0); sq < 64; sq++ {
		for _, off := range knightOffsets {
			if t, ok := sq.Offset(off[0], off[1]); ok {
				knightMoves[sq] |= t.Bit()
			}
		}
		for _, off := range kingOffsets {
			if t, ok := sq.Offset(off[0], off[1]); ok {
				kingMoves[sq] |= t.Bit()
			}
		}
		for _, df := range [2]int{-1, 1} {
			if t, ok := sq.Offset(df, 1); ok {
				pawnAttacks[White][sq] |= t.Bit()
			}
			if t, ok := sq.Offset(df, -1); ok {
				pawnAttacks[Black][sq] |= t.Bit()
			}
		}
	}
}

// walk follows one direction from sq. It stops after passing more than 'see' blockers
// (the stopping blocker is included).
func walk(sq Square, dir [2]int, occ uint64, see int) uint64 {
	var ray uint64
	seen := 0
	cur := sq
	for {
		next, ok := cur.Offset(dir[0], dir[1])
		if !ok {
			return ray
		}
		ray |= next.Bit()
		if occ&next.Bit() != 0 {
			seen++
			if seen > see {
				return ray
			}
		}
		cur = next
	}
}

// relevantMask is the ray union minus the last square of every ray: an edge
// blocker never changes the attack set.
func relevantMask(sq Square, dirs [4][2]int) uint64 {
	var m uint64
	for _, dir := range dirs {
		cur := sq
		for {
			next, ok := cur.Offset(dir[0], dir[1])
			if !ok {
				break
			}
			if _, more := next.Offset(dir[0], dir[1]); !more {
				break
			}
			m |= next.Bit()
			cur = next
		}
	}
	return m
}

func slide(sq Square, dirs [4][2]int, occ uint64, see int) uint64 {
	var att uint64
	for _, dir := range dirs {
		att |= walk(sq, dir, occ, see)
	}
	return att
}

// initSliderTables builds per-square occupancy masks, attack tables and pin tables
// by enumerating every subset of the relevant mask.
func initSliderTables() {
	for sq := Square(0); sq < 64; sq++ {
		rm := relevantMask(sq, rookDirs)
		bm := relevantMask(sq, bishopDirs)
		rookMask[sq] = rm
		bishopMask[sq] = bm

		rBits := bits.OnesCount64(rm)
		bBits := bits.OnesCount64(bm)
		rookAttTable[sq] = make([]uint64, 1<<rBits)
		rookPinTable[sq] = make([]uint64, 1<<rBits)
		bishopAttTable[sq] = make([]uint64, 1<<bBits)
		bishopPinTable[sq] = make([]uint64, 1<<bBits)

		for idx := 0; idx < (1 << rBits); idx++ {
			occ := pdep(uint64(idx), rm)
			rookAttTable[sq][idx] = slide(sq, rookDirs, occ, 0)
			rookPinTable[sq][idx] = slide(sq, rookDirs, occ, 1)
		}
		for idx := 0; idx < (1 << bBits); idx++ {
			occ := pdep(uint64(idx), bm)
			bishopAttTable[sq][idx] = slide(sq, bishopDirs, occ, 0)
			bishopPinTable[sq][idx] = slide(sq, bishopDirs, occ, 1)
		}
	}
}

func initBetween() {
	dirs := append(rookDirs[:], bishopDirs[:]...)
	for a := Square(0); a < 64; a++ {
		for _, dir := range dirs {
			var path uint64
			for cur := a; ; {
				next, ok := cur.Offset(dir[0], dir[1])
				if !ok {
					break
				}
				between[a][next] = path
				path |= next.Bit()
				cur = next
			}
		}
	}
}

// software pext: extract bits of x at positions where mask has 1s, packed into low bits
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// software pdep: deposit low bits of x into positions of mask
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}

// RookAttacks returns the rook attack set from sq, first blockers included.
func RookAttacks(sq Square, occ uint64) uint64 {
	return rookAttTable[sq][pext(occ, rookMask[sq])]
}

// BishopAttacks returns the bishop attack set from sq, first blockers included.
func BishopAttacks(sq Square, occ uint64) uint64 {
	return bishopAttTable[sq][pext(occ, bishopMask[sq])]
}

// QueenAttacks is the union of rook and bishop attacks.
func QueenAttacks(sq Square, occ uint64) uint64 {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// RookXray is RookAttacks with the first blocker on every line treated as transparent.
func RookXray(sq Square, occ uint64) uint64 {
	return rookPinTable[sq][pext(occ, rookMask[sq])]
}

// BishopXray is BishopAttacks with the first blocker on every line treated as transparent.
func BishopXray(sq Square, occ uint64) uint64 {
	return bishopPinTable[sq][pext(occ, bishopMask[sq])]
}

func KnightAttacks(sq Square) uint64 { return knightMoves[sq] }

func KingAttacks(sq Square) uint64 { return kingMoves[sq] }

// PawnAttacks returns the capture squares of a pawn of color c on sq.
func PawnAttacks(c Color, sq Square) uint64 { return pawnAttacks[c][sq] }

// Between returns the squares strictly between a and b on a shared rank, file or
// diagonal. Unaligned pairs and a == b give the empty set.
func Between(a, b Square) uint64 { return between[a][b] }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

func lsb(x uint64) int { return bits.TrailingZeros64(x) }

func popCount(x uint64) int { return bits.OnesCount64(x) }
