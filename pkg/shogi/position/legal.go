package position

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/move/attacks"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// alignedOnLine reports whether a, b and c all lie on one shared rank,
// file or diagonal. It is the standard pin-legality test: a piece
// pinned towards the king at b may move from a to c only if the three
// stay aligned.
func alignedOnLine(a, b, c square.Square) bool {
	line := bitboard.Line[a][b]
	return !line.IsEmpty() && line.IsSet(c)
}

func (p *Position) checkTarget() (bitboard.Board, bool) {
	if p.CheckersBB().Count() >= 2 {
		return bitboard.Empty, false
	}
	checkerSq := p.CheckersBB().FirstOne()
	kingSq := p.KingSquare(p.sideToMove)
	target := bitboard.Between[kingSq][checkerSq]
	target.Set(checkerSq)
	return target, true
}

// PseudoLegal reports whether m could structurally arise on the current
// board: it does not verify that the mover's own king ends up safe
// (that is Legal's job). When searching is true, additional search-time
// pruning rules reject moves dominated by an equivalent promotion.
func (p *Position) PseudoLegal(m move.Move, searching bool) bool {
	if !m.IsNormal() {
		return false
	}
	us := p.sideToMove

	if m.IsDrop() {
		return p.pseudoLegalDrop(m, us)
	}

	from, to := m.From(), m.To()
	pc := p.PieceOn(from)
	if pc == piece.Empty || pc.Color() != us {
		return false
	}
	if pc != m.MovedPiece() {
		return false
	}
	if dst := p.PieceOn(to); dst != piece.Empty && dst.Color() == us {
		return false
	}

	occ := p.Occupied()
	if !attacks.Of(pc.Type(), us, from, occ).IsSet(to) {
		return false
	}

	isCapture := p.PieceOn(to) != piece.Empty
	allowU, allowP := promotionOptions(pc.Type(), us, from, to, isCapture)
	if m.IsPromotion() {
		if !allowP {
			return false
		}
	} else if !allowU {
		return false
	}

	if searching {
		switch pc.Type() {
		case piece.Bishop, piece.Rook:
			if !m.IsPromotion() && (inZone(from, us) || inZone(to, us)) {
				return false
			}
		case piece.Lance:
			if !m.IsPromotion() && !isCapture && to.Rank() == secondToLastRank(us) {
				return false
			}
		case piece.Pawn:
			if !m.IsPromotion() && inZone(to, us) {
				return false
			}
		}
	}

	if pc.Type() != piece.King && p.InCheck() {
		target, singleChecker := p.checkTarget()
		if !singleChecker {
			return false
		}
		if !target.IsSet(to) {
			return false
		}
	}

	return true
}

func (p *Position) pseudoLegalDrop(m move.Move, us piece.Color) bool {
	t := m.DroppedPiece()
	to := m.To()

	if !p.Hand(us).Exist(t) {
		return false
	}
	if p.PieceOn(to) != piece.Empty {
		return false
	}

	if p.InCheck() {
		target, singleChecker := p.checkTarget()
		if !singleChecker || !target.IsSet(to) {
			return false
		}
	}

	switch t {
	case piece.Pawn:
		if to.Rank() == lastRank(us) {
			return false
		}
		if !p.removeNifuFiles(bitboard.Squares[to], us).IsSet(to) {
			return false
		}
		if attacks.Pawn[us][to].IsSet(p.KingSquare(us.Other())) && p.IsDropPawnMate(us, to) {
			return false
		}
	case piece.Lance:
		if to.Rank() == lastRank(us) {
			return false
		}
	case piece.Knight:
		if to.Rank() == lastRank(us) || to.Rank() == secondToLastRank(us) {
			return false
		}
	}

	return true
}

// IsLegal reports whether a pseudo-legal move m leaves the mover's own
// king safe.
func (p *Position) IsLegal(m move.Move) bool {
	us := p.sideToMove

	if m.IsDrop() {
		return true
	}

	from, to := m.From(), m.To()
	kingSq := p.KingSquare(us)

	if from == kingSq {
		occ := p.Occupied()
		occ.Unset(kingSq)
		return p.AttackersTo(us.Other(), to, occ).IsEmpty()
	}

	blockers := p.state().Check.BlockersForKing[us]
	if !blockers.IsSet(from) {
		return true
	}
	return alignedOnLine(from, kingSq, to)
}

// GivesCheck reports whether playing m (assumed legal) would give check
// to the opponent.
func (p *Position) GivesCheck(m move.Move) bool {
	us := p.sideToMove
	them := us.Other()
	theirKing := p.KingSquare(them)
	if !theirKing.IsValid() {
		return false
	}

	to := m.To()

	var t piece.Type
	if m.IsDrop() {
		t = m.DroppedPiece()
	} else {
		t = p.PieceOn(m.From()).Type()
		if m.IsPromotion() {
			t = t.Promote()
		}
	}

	occ := p.Occupied()
	if !m.IsDrop() {
		occ.Unset(m.From())
	}
	occ.Set(to)

	if attacks.Of(t, us, to, occ).IsSet(theirKing) {
		return true
	}

	if m.IsDrop() {
		return false
	}

	// discovered check: does removing the mover from its origin square
	// reveal an attack from a pinner of the opponent's king?
	pinners := p.state().Check.PinnersForKing[them]
	for tmp := pinners; !tmp.IsEmpty(); {
		pinnerSq := tmp.PopLSB()
		if bitboard.Between[pinnerSq][theirKing].IsSet(m.From()) && !alignedOnLine(pinnerSq, theirKing, to) {
			return true
		}
	}

	return false
}
