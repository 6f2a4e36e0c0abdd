// Package magic builds perfect-hash attack tables for Shogi's sliding
// pieces (lance, bishop, rook).
//
// A two-lane board complicates a single 64-bit multiplicative magic
// number, since a relevant blocker mask can straddle both lanes. Rather
// than search for per-lane magic multipliers, each table is built with
// direct bit extraction: a square's relevant blocker mask is flattened
// into a dense index by reading its member squares in a fixed order.
// This is mathematically equivalent to what a PEXT instruction computes,
// which the data model explicitly allows as an alternative to
// multiplicative magics.
package magic

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// MoveFunc computes a slider's reachable squares from s given the
// blocker occupancy occ. When masking is true, occ is ignored and the
// function instead returns the relevant blocker mask: every square whose
// occupancy could affect the slider's reach from s, with the ray's
// outermost (board-edge) square excluded, since that square is always
// reachable regardless of what occupies it.
type MoveFunc func(s square.Square, occ bitboard.Board, masking bool) bitboard.Board

// Table is a perfect-hash attack table for one sliding piece.
type Table struct {
	masks  [square.N]bitboard.Board
	bits   [square.N][]square.Square
	tables [square.N][]bitboard.Board
}

// NewTable builds a Table by exhaustively enumerating every blocker
// subset of each square's relevant mask.
func NewTable(moveFunc MoveFunc) *Table {
	var t Table

	for s := square.Square(0); s < square.N; s++ {
		mask := moveFunc(s, bitboard.Empty, true)
		t.masks[s] = mask

		var bits []square.Square
		m := mask
		for !m.IsEmpty() {
			bits = append(bits, m.PopLSB())
		}
		t.bits[s] = bits

		n := 1 << len(bits)
		table := make([]bitboard.Board, n)
		for idx := 0; idx < n; idx++ {
			var occ bitboard.Board
			for b, sq := range bits {
				if idx&(1<<uint(b)) != 0 {
					occ.Set(sq)
				}
			}
			table[idx] = moveFunc(s, occ, false)
		}
		t.tables[s] = table
	}

	return &t
}

func (t *Table) index(s square.Square, occ bitboard.Board) int {
	relevant := occ.And(t.masks[s])
	idx := 0
	for b, sq := range t.bits[s] {
		if relevant.IsSet(sq) {
			idx |= 1 << uint(b)
		}
	}
	return idx
}

// Probe returns the attack set of s given the full board occupancy occ.
func (t *Table) Probe(s square.Square, occ bitboard.Board) bitboard.Board {
	return t.tables[s][t.index(s, occ)]
}

// Ray walks from s in direction (df,dr) one square at a time, including
// every square up to and including the first occupied square (or the
// board edge), following the stop-at-first-blocker convention shared by
// every sliding piece.
func Ray(s square.Square, df, dr int, occ bitboard.Board) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for {
		f += df
		r += dr
		if f < 0 || f >= square.NFile || r < 0 || r >= square.NRank {
			return b
		}
		sq := square.New(square.File(f), square.Rank(r))
		b.Set(sq)
		if occ.IsSet(sq) {
			return b
		}
	}
}

// RayMask is Ray's masking counterpart: every square on the ray except
// the final one reached before running off the board.
func RayMask(s square.Square, df, dr int) bitboard.Board {
	full := Ray(s, df, dr, bitboard.Empty)
	if full.IsEmpty() {
		return full
	}

	f, r := int(s.File()), int(s.Rank())
	last := square.None
	for {
		f += df
		r += dr
		if f < 0 || f >= square.NFile || r < 0 || r >= square.NRank {
			break
		}
		last = square.New(square.File(f), square.Rank(r))
	}
	if last != square.None {
		full.Unset(last)
	}
	return full
}
