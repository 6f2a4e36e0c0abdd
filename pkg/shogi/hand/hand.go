// Package hand implements the packed per-color Shogi hand (komadai): the
// pool of captured pieces available for dropping.
package hand

import (
	"fmt"
	"strconv"
	"strings"

	"kuroshio.dev/shogi/pkg/shogi/piece"
)

// Hand packs the counts of the seven droppable piece types into a single
// 32-bit word. Each count field is followed by one unused guard bit, so
// that Hand.IsEqualOrSuperior can be computed as a single subtraction
// with no cross-field borrow: if every field of h is >= the matching
// field of other, h-other cannot borrow out of any field's guard bit.
type Hand uint32

// field layout: index is piece.Type.HandIndex() (Pawn, Lance, Knight,
// Silver, Bishop, Rook, Gold).
var shift = [7]uint{0, 6, 10, 14, 18, 21, 24}
var maxCount = [7]uint32{18, 4, 4, 4, 2, 2, 4}

// borrowMask has the guard bit of every field set.
const borrowMask Hand = 1<<5 | 1<<9 | 1<<13 | 1<<17 | 1<<20 | 1<<23 | 1<<27

// valueMask holds, per field index, the mask of value bits (guard bit
// excluded) already shifted into place within the packed word.
var valueMask [7]Hand

func init() {
	for idx, max := range maxCount {
		width := uint(0)
		for (uint32(1) << width) <= max {
			width++
		}
		valueMask[idx] = Hand(((1 << width) - 1) << shift[idx])
	}
}

// Num returns the number of pieces of type t held in hand.
func (h Hand) Num(t piece.Type) int {
	idx := t.HandIndex()
	if idx < 0 {
		return 0
	}
	return int((h & valueMask[idx]) >> shift[idx])
}

// Exist reports whether at least one piece of type t is held.
func (h Hand) Exist(t piece.Type) bool {
	return h.Num(t) > 0
}

// PlusOne returns h with one more piece of type t.
func (h Hand) PlusOne(t piece.Type) Hand {
	idx := t.HandIndex()
	return h + Hand(1<<shift[idx])
}

// MinusOne returns h with one fewer piece of type t. The caller must
// ensure Exist(t) first; underflowing a field corrupts neighboring
// fields via the guard-bit trick and is a programmer error.
func (h Hand) MinusOne(t piece.Type) Hand {
	idx := t.HandIndex()
	if !h.Exist(t) {
		panic("hand: MinusOne on empty piece type")
	}
	return h - Hand(1<<shift[idx])
}

// IsEqualOrSuperior reports whether every field of h is greater than or
// equal to the matching field of other, i.e. h's hand dominates other's.
func (h Hand) IsEqualOrSuperior(other Hand) bool {
	return (h-other)&borrowMask == 0
}

// IsEmpty reports whether the hand holds no pieces at all.
func (h Hand) IsEmpty() bool {
	return h == 0
}

// String renders the hand in SFEN order: Rook, Bishop, Gold, Silver,
// Knight, Lance, Pawn, count digit (omitted when 1) then the piece
// letter, upper-case for Black and lower-case for White.
func (h Hand) String(c piece.Color) string {
	order := []piece.Type{piece.Rook, piece.Bishop, piece.Gold, piece.Silver, piece.Knight, piece.Lance, piece.Pawn}

	var sb strings.Builder
	for _, t := range order {
		n := h.Num(t)
		if n == 0 {
			continue
		}
		if n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		letter := piece.New(c, t).String()
		sb.WriteString(letter)
	}
	return sb.String()
}

// ParseSFENHands parses the SFEN hands field (e.g. "2Pb", or "-" for
// empty) into a pair of hands, indexed by piece.Color.
func ParseSFENHands(s string) ([piece.NColor]Hand, error) {
	var hands [piece.NColor]Hand
	if s == "-" {
		return hands, nil
	}

	count := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			continue
		}

		p, err := piece.NewFromSFEN(string(ch))
		if err != nil {
			return hands, fmt.Errorf("hand: %w", err)
		}
		t := p.Type()
		if t.HandIndex() < 0 {
			return hands, fmt.Errorf("hand: piece type %v cannot be held", t)
		}

		if count == 0 {
			count = 1
		}
		if uint32(count) > maxCount[t.HandIndex()] {
			return hands, fmt.Errorf("hand: too many %v in hand (%d > %d)", t, count, maxCount[t.HandIndex()])
		}

		c := p.Color()
		for n := 0; n < count; n++ {
			hands[c] = hands[c].PlusOne(t)
		}

		count = 0
	}

	return hands, nil
}
