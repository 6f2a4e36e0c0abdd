// Package zobrist computes the Zobrist hash keys used to incrementally
// hash a Position's board and hand state.
package zobrist

import (
	"kuroshio.dev/shogi/internal/rand"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// Key is a Zobrist hash key.
type Key uint64

// SideToMove is xor'd into the board key whenever the side to move
// changes. It always occupies the lowest bit; every other key generated
// by this package has that bit cleared so a side flip can never collide
// with a piece or hand key.
const SideToMove Key = 1

// PieceSquare holds one key per (piece, square) combination, indexed by
// the full colored piece.Piece value.
var PieceSquare [piece.NPiece][square.N]Key

// maxHandCount bounds the per-field hand key tables; it must be at least
// as large as the largest legal count for any droppable type (Pawn's 18).
const maxHandCount = 19

// Hand holds one key per (color, droppable-type, count) triple. Moving a
// hand count from n to n+1 (or back) xors out Hand[c][idx][n] and xors in
// Hand[c][idx][n+1], so the hand key never needs to be rebuilt from
// scratch.
var Hand [piece.NColor][piece.NDroppable][maxHandCount]Key

func init() {
	var rng rand.PRNG
	rng.Seed(1070372)

	for p := piece.Piece(0); p < piece.NPiece; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.Uint64Cleared())
		}
	}

	for c := piece.Color(0); c < piece.NColor; c++ {
		for idx := 0; idx < piece.NDroppable; idx++ {
			for n := 0; n < maxHandCount; n++ {
				Hand[c][idx][n] = Key(rng.Uint64Cleared())
			}
		}
	}
}

// HandDelta returns the xor delta that moves a color's hand key from
// holding oldCount pieces of type t to newCount.
func HandDelta(c piece.Color, t piece.Type, oldCount, newCount int) Key {
	idx := t.HandIndex()
	return Hand[c][idx][oldCount] ^ Hand[c][idx][newCount]
}
