package position

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/move/attacks"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// GenType selects which stratum of moves a generator produces.
type GenType int

const (
	CaptureOrPawnPromotion GenType = iota
	QuietsWithoutPawnPromotion
	Evasion
	NonEvasion
	Legal
)

// MaxMoves bounds a move list buffer: one more than the combinatorial
// maximum for any legal Shogi position.
const MaxMoves = 594

// ExtMove pairs a move with a mutable ordering score, left at zero by
// the generators; search assigns it.
type ExtMove struct {
	Move  move.Move
	Score int
}

func lastRank(us piece.Color) square.Rank {
	if us == piece.Black {
		return square.RankA
	}
	return square.RankI
}

func secondToLastRank(us piece.Color) square.Rank {
	if us == piece.Black {
		return square.RankB
	}
	return square.RankH
}

func inZone(s square.Square, us piece.Color) bool {
	return bitboard.OpponentFieldMask(int(us)).IsSet(s)
}

// promotionOptions reports, for a board move of piece type t and color
// us from "from" to "to", whether the unpromoted and/or promoted
// variant is legal to generate. isCapture distinguishes the lance's
// second-to-last-rank special case, where only the capturing unpromote
// survives (the non-capturing one is strictly dominated by the promoted
// form and is pruned at generation time).
func promotionOptions(t piece.Type, us piece.Color, from, to square.Square, isCapture bool) (allowUnpromote, allowPromote bool) {
	if !t.Promotable() {
		return true, false
	}

	switch t {
	case piece.Pawn:
		if to.Rank() == lastRank(us) {
			return false, true
		}
		if inZone(to, us) {
			return true, true
		}
		return true, false

	case piece.Lance:
		if to.Rank() == lastRank(us) {
			return false, true
		}
		if to.Rank() == secondToLastRank(us) {
			return isCapture, true
		}
		if inZone(to, us) {
			return true, true
		}
		return true, false

	case piece.Knight:
		if to.Rank() == lastRank(us) || to.Rank() == secondToLastRank(us) {
			return false, true
		}
		if inZone(to, us) {
			return true, true
		}
		return true, false

	case piece.Silver:
		if inZone(from, us) || inZone(to, us) {
			return true, true
		}
		return true, false

	case piece.Bishop, piece.Rook:
		if inZone(from, us) || inZone(to, us) {
			return false, true
		}
		return true, false

	default:
		return true, false
	}
}

func addVariants(buf []ExtMove, us piece.Color, t piece.Type, from, to square.Square, allowUnpromote, allowPromote bool) []ExtMove {
	pc := piece.New(us, t)
	if allowUnpromote {
		buf = append(buf, ExtMove{Move: move.New(from, to, pc, false)})
	}
	if allowPromote {
		buf = append(buf, ExtMove{Move: move.New(from, to, pc, true)})
	}
	return buf
}

// GenerateMoves appends moves of stratum gt to buf and returns the
// extended slice.
func (p *Position) GenerateMoves(gt GenType, buf []ExtMove) []ExtMove {
	switch gt {
	case Legal:
		var list []ExtMove
		if p.InCheck() {
			list = p.GenerateMoves(Evasion, nil)
		} else {
			list = p.GenerateMoves(NonEvasion, nil)
		}
		for _, em := range list {
			if p.IsLegal(em.Move) {
				buf = append(buf, em)
			}
		}
		return buf

	case NonEvasion:
		buf = p.GenerateMoves(CaptureOrPawnPromotion, buf)
		buf = p.GenerateMoves(QuietsWithoutPawnPromotion, buf)
		return buf

	case Evasion:
		return p.generateEvasions(buf)

	case CaptureOrPawnPromotion:
		return p.generateCaptures(buf)

	case QuietsWithoutPawnPromotion:
		return p.generateQuiets(buf)
	}
	return buf
}

func (p *Position) boardPieceTypes() []piece.Type {
	return []piece.Type{
		piece.Pawn, piece.Lance, piece.Knight, piece.Silver, piece.Bishop, piece.Rook, piece.Gold,
		piece.ProPawn, piece.ProLance, piece.ProKnight, piece.ProSilver, piece.Horse, piece.Dragon,
	}
}

func (p *Position) generateCaptures(buf []ExtMove) []ExtMove {
	us := p.sideToMove
	opp := p.byColor[us.Other()]
	occ := p.Occupied()

	for _, t := range p.boardPieceTypes() {
		bb := p.ByPiece(us, t)
		for tmp := bb; !tmp.IsEmpty(); {
			from := tmp.PopLSB()
			reach := attacks.Of(t, us, from, occ)

			captures := reach.And(opp)
			for cs := captures; !cs.IsEmpty(); {
				to := cs.PopLSB()
				allowU, allowP := promotionOptions(t, us, from, to, true)
				buf = addVariants(buf, us, t, from, to, allowU, allowP)
			}

			if t == piece.Pawn {
				quiet := reach.AndNot(opp).AndNot(p.byColor[us])
				for qs := quiet; !qs.IsEmpty(); {
					to := qs.PopLSB()
					if !inZone(to, us) {
						continue
					}
					allowU, allowP := promotionOptions(t, us, from, to, false)
					buf = addVariants(buf, us, t, from, to, allowU, allowP)
				}
			}
		}
	}

	kingSq := p.KingSquare(us)
	for cs := attacks.King[us][kingSq].And(opp); !cs.IsEmpty(); {
		to := cs.PopLSB()
		buf = append(buf, ExtMove{Move: move.New(kingSq, to, piece.New(us, piece.King), false)})
	}

	return buf
}

func (p *Position) generateQuiets(buf []ExtMove) []ExtMove {
	us := p.sideToMove
	occ := p.Occupied()
	empty := occ.Not()

	for _, t := range p.boardPieceTypes() {
		bb := p.ByPiece(us, t)
		for tmp := bb; !tmp.IsEmpty(); {
			from := tmp.PopLSB()
			quiet := attacks.Of(t, us, from, occ).And(empty)
			for qs := quiet; !qs.IsEmpty(); {
				to := qs.PopLSB()
				if t == piece.Pawn && inZone(to, us) {
					// promotion-eligible pawn pushes are fully handled
					// (both variants) by the noisy/capture stage.
					continue
				}
				allowU, allowP := promotionOptions(t, us, from, to, false)
				buf = addVariants(buf, us, t, from, to, allowU, allowP)
			}
		}
	}

	kingSq := p.KingSquare(us)
	for qs := attacks.King[us][kingSq].And(empty); !qs.IsEmpty(); {
		to := qs.PopLSB()
		buf = append(buf, ExtMove{Move: move.New(kingSq, to, piece.New(us, piece.King), false)})
	}

	buf = p.generateDrops(buf, occ.Not())

	return buf
}

// generateDrops appends every legal hand drop, restricted to the given
// set of candidate empty squares (targets).
func (p *Position) generateDrops(buf []ExtMove, targets bitboard.Board) []ExtMove {
	us := p.sideToMove
	h := p.Hand(us)

	for _, t := range piece.Droppable {
		if !h.Exist(t) {
			continue
		}

		candidates := targets
		switch t {
		case piece.Pawn:
			candidates = candidates.AndNot(bitboard.RankMask[lastRank(us)])
			candidates = p.removeNifuFiles(candidates, us)
			candidates = p.removeDropPawnMateSquares(candidates, us)
		case piece.Lance:
			candidates = candidates.AndNot(bitboard.RankMask[lastRank(us)])
		case piece.Knight:
			candidates = candidates.AndNot(bitboard.RankMask[lastRank(us)])
			candidates = candidates.AndNot(bitboard.RankMask[secondToLastRank(us)])
		}

		for cs := candidates; !cs.IsEmpty(); {
			to := cs.PopLSB()
			buf = append(buf, ExtMove{Move: move.NewDrop(t, to)})
		}
	}

	return buf
}

// removeNifuFiles strips every square on a file that already holds an
// unpromoted own pawn (the two-pawn rule, nifu).
func (p *Position) removeNifuFiles(candidates bitboard.Board, us piece.Color) bitboard.Board {
	pawns := p.ByPiece(us, piece.Pawn)
	for tmp := pawns; !tmp.IsEmpty(); {
		s := tmp.PopLSB()
		candidates = candidates.AndNot(bitboard.FileMask[s.File()])
	}
	return candidates
}

// removeDropPawnMateSquares strips the single square (if any) where a
// pawn drop would deliver drop-pawn-mate (uchifuzume), which is illegal.
func (p *Position) removeDropPawnMateSquares(candidates bitboard.Board, us piece.Color) bitboard.Board {
	theirKing := p.KingSquare(us.Other())
	if !theirKing.IsValid() {
		return candidates
	}
	inFront := attacks.Pawn[us.Other()][theirKing]
	if inFront.IsEmpty() || !candidates.IsSet(inFront.FirstOne()) {
		return candidates
	}
	sq := inFront.FirstOne()
	if p.IsDropPawnMate(us, sq) {
		candidates.Unset(sq)
	}
	return candidates
}

// generateEvasions generates every move that resolves the current
// check.
func (p *Position) generateEvasions(buf []ExtMove) []ExtMove {
	us := p.sideToMove
	checkers := p.CheckersBB()
	kingSq := p.KingSquare(us)
	occ := p.Occupied()

	// King moves: destinations not occupied by our own pieces and not
	// still attacked once the king itself is removed from the
	// occupancy, so that the king cannot "hide" behind the piece it is
	// fleeing.
	occWithoutKing := occ
	occWithoutKing.Unset(kingSq)
	for ks := attacks.King[us][kingSq].AndNot(p.byColor[us]); !ks.IsEmpty(); {
		to := ks.PopLSB()
		if !p.AttackersTo(us.Other(), to, occWithoutKing).IsEmpty() {
			continue
		}
		buf = append(buf, ExtMove{Move: move.New(kingSq, to, piece.New(us, piece.King), false)})
	}

	if checkers.Count() >= 2 {
		// double check: only the king can move
		return buf
	}

	checkerSq := checkers.FirstOne()
	target := bitboard.Between[kingSq][checkerSq]
	target.Set(checkerSq)

	// Non-king movers blocking or capturing the checker.
	for _, t := range p.boardPieceTypes() {
		bb := p.ByPiece(us, t)
		for tmp := bb; !tmp.IsEmpty(); {
			from := tmp.PopLSB()
			reach := attacks.Of(t, us, from, occ).And(target)
			for rs := reach; !rs.IsEmpty(); {
				to := rs.PopLSB()
				isCapture := to == checkerSq
				allowU, allowP := promotionOptions(t, us, from, to, isCapture)
				buf = addVariants(buf, us, t, from, to, allowU, allowP)
			}
		}
	}

	buf = p.generateDrops(buf, bitboard.Between[kingSq][checkerSq])

	return buf
}
