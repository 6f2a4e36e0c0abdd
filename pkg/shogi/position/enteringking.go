package position

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/piece"
)

// pointValue gives a piece type's weight under the entering-king
// declaration rule: bishops and rooks (promoted or not) count five
// points, every other piece (excluding the king, which is never
// counted) counts one.
func pointValue(t piece.Type) int {
	switch t {
	case piece.Bishop, piece.Rook, piece.Horse, piece.Dragon:
		return 5
	default:
		return 1
	}
}

// IsEnteringKingWin reports whether the side to move may declare a win
// under the entering-king (Nyugyoku) rule: it is not in check, its king
// stands in the opponent's promotion zone, at least ten of its pieces
// (excluding the king) stand in that zone, and its declaration point
// total meets the threshold for its color (28 for Black, 27 for White).
func (p *Position) IsEnteringKingWin() bool {
	if p.InCheck() {
		return false
	}

	c := p.sideToMove
	kingSq := p.KingSquare(c)
	if !kingSq.IsValid() {
		return false
	}

	zone := bitboard.OpponentFieldMask(int(c))
	if !zone.IsSet(kingSq) {
		return false
	}

	inZone := p.ByColor(c).And(zone)
	inZone.Unset(kingSq)
	if inZone.Count() < 10 {
		return false
	}

	points := 0
	for tmp := inZone; !tmp.IsEmpty(); {
		sq := tmp.PopLSB()
		points += pointValue(p.PieceOn(sq).Type())
	}
	for _, t := range piece.Droppable {
		points += p.Hand(c).Num(t) * pointValue(t)
	}

	threshold := 27
	if c == piece.Black {
		threshold = 28
	}
	return points >= threshold
}
