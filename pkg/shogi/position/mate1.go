package position

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/move/attacks"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// mate1DropOrder is the priority order the 1-ply mate solver tries hand
// piece types in. Pawn is excluded: a pawn-drop mate is never legal
// (uchifuzume), so it can never be the answer.
var mate1DropOrder = [6]piece.Type{
	piece.Gold, piece.Rook, piece.Lance, piece.Bishop, piece.Silver, piece.Knight,
}

// MateIn1 returns a move that checkmates the opponent immediately, or
// move.Null if the current position to move has no such move. The
// search is deliberately narrow: it only considers drops and board
// moves landing on a square adjacent to (or, for knights, a knight's
// move from) the enemy king, since those are the only squares from
// which a single move can deliver check without sliding through the
// rest of the board. This mirrors the pruning every real-time Shogi
// engine's mate1ply routine applies; a mate available only via a
// slider drop or move from further away is missed.
func (p *Position) MateIn1() move.Move {
	if p.InCheck() {
		return move.Null
	}
	if m := p.mate1Drops(); m != move.Null {
		return m
	}
	return p.mate1Boards()
}

func (p *Position) mate1Drops() move.Move {
	us := p.sideToMove
	them := us.Other()
	theirKing := p.KingSquare(them)
	if !theirKing.IsValid() {
		return move.Null
	}
	occ := p.Occupied()

	for _, t := range mate1DropOrder {
		if !p.Hand(us).Exist(t) {
			continue
		}

		var candidates bitboard.Board
		if t == piece.Knight {
			candidates = attacks.Knight[them][theirKing]
		} else {
			candidates = attacks.King[them][theirKing]
		}
		candidates = candidates.AndNot(occ)

		for tmp := candidates; !tmp.IsEmpty(); {
			sq := tmp.PopLSB()

			switch t {
			case piece.Lance:
				if sq.Rank() == lastRank(us) {
					continue
				}
			case piece.Knight:
				if sq.Rank() == lastRank(us) || sq.Rank() == secondToLastRank(us) {
					continue
				}
			}

			if !attacks.Of(t, us, sq, occ).IsSet(theirKing) {
				continue
			}

			if p.dropGivesMate(us, them, theirKing, t, sq, occ) {
				return move.NewDrop(t, sq)
			}
		}
	}

	return move.Null
}

// dropGivesMate reports whether dropping a piece of type t and color us
// on sq delivers an inescapable check to them's king on theirKing. It
// generalizes the uchifuzume test in dropmate.go to every droppable
// type the mate solver considers.
func (p *Position) dropGivesMate(us, them piece.Color, theirKing square.Square, t piece.Type, sq square.Square, occ bitboard.Board) bool {
	occWithDrop := occ
	occWithDrop.Set(sq)

	if t != piece.Knight {
		defended := !p.AttackersTo(us, sq, occ).IsEmpty()
		if !defended {
			return false
		}
	}

	blockers := p.state().Check.BlockersForKing[them]
	for tmp := p.AttackersToExceptKing(them, sq, occWithDrop); !tmp.IsEmpty(); {
		a := tmp.PopLSB()
		if !blockers.IsSet(a) || alignedOnLine(a, theirKing, sq) {
			return false
		}
	}

	occAfterDrop := occWithDrop
	occAfterDrop.Unset(theirKing)

	// The dropped piece itself is not yet reflected in any by-type
	// bitboard, so its own contribution to covering an escape square
	// has to be folded in by hand alongside AttackersTo's view of the
	// rest of the board.
	dropCovers := attacks.Of(t, us, sq, occAfterDrop)

	for ks := attacks.King[them][theirKing].AndNot(p.byColor[them]); !ks.IsEmpty(); {
		to := ks.PopLSB()
		if to == sq {
			continue
		}
		if p.AttackersTo(us, to, occAfterDrop).IsEmpty() && !dropCovers.IsSet(to) {
			return false
		}
	}

	return true
}

func (p *Position) mate1Boards() move.Move {
	us := p.sideToMove
	them := us.Other()
	theirKing := p.KingSquare(them)
	if !theirKing.IsValid() {
		return move.Null
	}

	occ := p.Occupied()
	destinations := attacks.King[them][theirKing].Or(attacks.Knight[them][theirKing]).AndNot(p.byColor[us])

	for _, t := range p.boardPieceTypes() {
		candidateTo := destinations.And(attacks.ProximityCheckMask(t, us, theirKing))
		if candidateTo.IsEmpty() {
			continue
		}

		for toTmp := candidateTo; !toTmp.IsEmpty(); {
			to := toTmp.PopLSB()
			isCapture := p.PieceOn(to) != piece.Empty

			for fromTmp := p.attackersOfType(us, t, to, occ); !fromTmp.IsEmpty(); {
				from := fromTmp.PopLSB()
				allowU, allowP := promotionOptions(t, us, from, to, isCapture)

				if allowU {
					if m := p.mateIfLegalAndMates(move.New(from, to, piece.New(us, t), false)); m != move.Null {
						return m
					}
				}
				if allowP {
					if m := p.mateIfLegalAndMates(move.New(from, to, piece.New(us, t), true)); m != move.Null {
						return m
					}
				}
			}
		}
	}

	return move.Null
}

// mateIfLegalAndMates plays m on the real position (pushing and
// immediately popping a state) and reports m itself if it is legal,
// gives check, and leaves the opponent with no legal reply. Reusing the
// fully general do/undo and legal-generation machinery here, rather
// than hand-deriving pins and escape squares on a scratch copy, is a
// deliberate simplification: it costs one extra legal-move generation
// per candidate but is exactly as correct as the board's own legality
// rules by construction.
func (p *Position) mateIfLegalAndMates(m move.Move) move.Move {
	if !p.PseudoLegal(m, true) || !p.IsLegal(m) {
		return move.Null
	}

	gc := p.GivesCheck(m)
	if !gc {
		return move.Null
	}

	p.DoMove(m, gc)
	replies := p.GenerateMoves(Legal, nil)
	p.UndoMove(m)

	if len(replies) == 0 {
		return m
	}
	return move.Null
}
