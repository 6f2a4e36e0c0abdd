package position

import (
	"kuroshio.dev/shogi/pkg/shogi/move/attacks"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// IsDropPawnMate reports whether dropping a pawn of color us on sq
// (directly in front of the enemy king) would deliver checkmate, which
// is illegal (uchifuzume).
func (p *Position) IsDropPawnMate(us piece.Color, sq square.Square) bool {
	them := us.Other()
	theirKing := p.KingSquare(them)
	if !theirKing.IsValid() {
		return false
	}

	occWithPawn := p.Occupied()
	occWithPawn.Set(sq)

	// 1. The king captures the pawn unless we already defend sq.
	if p.AttackersTo(us, sq, occWithPawn).IsEmpty() {
		return false
	}

	// 2. Any eligible enemy piece (not king, lance or pawn, none of
	// which can capture back toward their own side) can safely remove
	// the dropped pawn.
	blockers := p.state().Check.BlockersForKing[them]
	for tmp := p.AttackersToExceptKingAndLancePawn(them, sq, occWithPawn); !tmp.IsEmpty(); {
		a := tmp.PopLSB()
		if !blockers.IsSet(a) {
			return false
		}
		if alignedOnLine(a, theirKing, sq) {
			return false
		}
	}

	// 3. Every king flight square must still be covered after the drop.
	occAfterDrop := occWithPawn
	occAfterDrop.Unset(theirKing)
	for ks := attacks.King[them][theirKing].AndNot(p.byColor[them]); !ks.IsEmpty(); {
		to := ks.PopLSB()
		if p.AttackersTo(us, to, occAfterDrop).IsEmpty() {
			return false
		}
	}

	return true
}
