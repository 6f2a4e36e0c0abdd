// Package bitboard implements an 81-bit set over a 9x9 Shogi board and
// related manipulation functions.
//
// A Board is stored as a pair of 64-bit lanes: Lo holds squares 0..62
// (the board's first seven files) and Hi holds squares 63..80 (the last
// two files), with square s's bit in Hi at position s-63. This mirrors
// the two-word layout used by real Shogi engines, which keeps every
// operation a pair of ordinary 64-bit word operations instead of a single
// 128-bit one.
package bitboard

import (
	"math/bits"
	"strings"

	"kuroshio.dev/shogi/pkg/shogi/square"
)

// loBits is the number of squares assigned to the Lo lane.
const loBits = 63

// Board is an 81-bit set of Shogi squares.
type Board struct {
	Lo uint64 // squares 0..62
	Hi uint64 // squares 63..80, bit i holds square 63+i
}

// Empty is the empty set.
var Empty = Board{}

// Universe is the set of all 81 squares.
var Universe = Board{Lo: (1 << loBits) - 1, Hi: (1 << (square.N - loBits)) - 1}

// Squares holds a singleton bitboard for every square, precomputed so
// that Set/membership tests never need conditional lane arithmetic at
// call sites that already have a Squares[s] value in hand.
var Squares [square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = fromSquare(s)
	}
}

func fromSquare(s square.Square) Board {
	if int(s) < loBits {
		return Board{Lo: 1 << uint(s)}
	}
	return Board{Hi: 1 << uint(int(s)-loBits)}
}

// IsSet reports whether s is a member of b.
func (b Board) IsSet(s square.Square) bool {
	sb := Squares[s]
	return b.Lo&sb.Lo != 0 || b.Hi&sb.Hi != 0
}

// Set adds s to b.
func (b *Board) Set(s square.Square) {
	sb := Squares[s]
	b.Lo |= sb.Lo
	b.Hi |= sb.Hi
}

// Unset removes s from b.
func (b *Board) Unset(s square.Square) {
	sb := Squares[s]
	b.Lo &^= sb.Lo
	b.Hi &^= sb.Hi
}

// Or returns the union of b and o.
func (b Board) Or(o Board) Board {
	return Board{Lo: b.Lo | o.Lo, Hi: b.Hi | o.Hi}
}

// And returns the intersection of b and o.
func (b Board) And(o Board) Board {
	return Board{Lo: b.Lo & o.Lo, Hi: b.Hi & o.Hi}
}

// Xor returns the symmetric difference of b and o.
func (b Board) Xor(o Board) Board {
	return Board{Lo: b.Lo ^ o.Lo, Hi: b.Hi ^ o.Hi}
}

// AndNot returns b with every square in o removed.
func (b Board) AndNot(o Board) Board {
	return Board{Lo: b.Lo &^ o.Lo, Hi: b.Hi &^ o.Hi}
}

// Not returns the complement of b within the 81-square board.
func (b Board) Not() Board {
	return Universe.AndNot(b)
}

// IsEmpty reports whether b has no member squares.
func (b Board) IsEmpty() bool {
	return b.Lo == 0 && b.Hi == 0
}

// Count returns the number of squares in b.
func (b Board) Count() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// FirstOne returns the lowest-indexed square in b. The result is
// undefined if b is empty; callers must check IsEmpty first.
func (b Board) FirstOne() square.Square {
	if b.Lo != 0 {
		return square.Square(bits.TrailingZeros64(b.Lo))
	}
	return square.Square(loBits + bits.TrailingZeros64(b.Hi))
}

// PopLSB removes and returns the lowest-indexed square in b. The result
// is undefined if b is empty; callers must check IsEmpty first.
func (b *Board) PopLSB() square.Square {
	s := b.FirstOne()
	b.Unset(s)
	return s
}

// String renders b as a 9x9 grid of '1'/'0', one rank per line.
func (b Board) String() string {
	var sb strings.Builder
	for r := square.RankA; r <= square.RankI; r++ {
		for f := square.File9; f >= square.File1; f-- {
			if b.IsSet(square.New(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if f != square.File1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
