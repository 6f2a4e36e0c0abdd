package position

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
	"kuroshio.dev/shogi/pkg/shogi/zobrist"
)

// boardEvalIndex and handEvalIndex give a (type,color,square) or
// (type,color,count) triple an opaque, stable feature-list index. The
// external evaluator (out of scope here) is the only consumer; this
// package's sole obligation is that the mapping stays consistent across
// do_move/undo_move.
func boardEvalIndex(c piece.Color, t piece.Type, s square.Square) int {
	return int(c)*piece.NType*square.N + int(t)*square.N + int(s)
}

func handEvalIndex(c piece.Color, t piece.Type, count int) int {
	base := piece.NColor * piece.NType * square.N
	return base + int(c)*piece.NDroppable*32 + t.HandIndex()*32 + count
}

const noEvalIndex = -1

// DoMove applies m to the position, pushing a new reversible state.
// givesCheck must equal p.GivesCheck(m) computed before the position is
// mutated; the caller supplies it since recomputing it from scratch
// inside DoMove would require occupancy from before the move, which
// DoMove itself is about to destroy.
func (p *Position) DoMove(m move.Move, givesCheck bool) {
	prev := p.state()
	st := p.pushState()

	st.BoardKey = prev.BoardKey ^ zobrist.SideToMove
	st.LastMove = m
	p.gamePly++
	st.PliesFromNull = prev.PliesFromNull + 1

	us := p.sideToMove
	them := us.Other()

	st.ChangedEvalIndex = [2]int{noEvalIndex, noEvalIndex}
	st.ChangedEvalIndexCaptured = [2]int{noEvalIndex, noEvalIndex}
	st.CapturedPiece = piece.Empty

	if m.IsDrop() {
		t := m.DroppedPiece()
		to := m.To()

		oldCount := p.hands[us].Num(t)
		p.hands[us] = p.hands[us].MinusOne(t)
		st.HandKey = prev.HandKey ^ zobrist.HandDelta(us, t, oldCount, oldCount-1)

		pc := piece.New(us, t)
		p.PutPiece(pc, to)
		st.BoardKey ^= zobrist.PieceSquare[pc][to]

		st.ChangedEvalIndex = [2]int{handEvalIndex(us, t, oldCount), boardEvalIndex(us, t, to)}
	} else {
		from, to := m.From(), m.To()
		mover := p.PieceOn(from)

		p.RemovePiece(mover, from)
		st.BoardKey = st.BoardKey ^ zobrist.PieceSquare[mover][from]

		captured := p.PieceOn(to)
		st.HandKey = prev.HandKey
		if captured != piece.Empty {
			st.CapturedPiece = captured
			st.BoardKey ^= zobrist.PieceSquare[captured][to]

			demoted := captured.Demote()
			handType := demoted.Type()
			oldCount := p.hands[us].Num(handType)
			p.hands[us] = p.hands[us].PlusOne(handType)
			st.HandKey ^= zobrist.HandDelta(us, handType, oldCount, oldCount+1)

			st.ChangedEvalIndexCaptured = [2]int{boardEvalIndex(them, demoted.Type(), to), handEvalIndex(us, handType, oldCount)}
		}

		placed := mover
		if m.IsPromotion() {
			placed = mover.Promote()
		}
		p.PutPiece(placed, to)
		st.BoardKey ^= zobrist.PieceSquare[placed][to]

		if mover.Type() == piece.King {
			st.ChangedEvalIndex = [2]int{noEvalIndex, noEvalIndex}
		} else {
			st.ChangedEvalIndex = [2]int{boardEvalIndex(us, mover.Type(), from), boardEvalIndex(us, placed.Type(), to)}
		}
	}

	p.SetGoldsBB()

	if givesCheck {
		occ := p.Occupied()
		st.CheckersBB = p.AttackersToExceptKing(us, p.KingSquare(them), occ)
		st.ContinuousChecks[us] = prev.ContinuousChecks[us] + 1
	} else {
		st.CheckersBB = bitboard.Empty
		st.ContinuousChecks[us] = 0
	}

	p.sideToMove = them
	st.HandOfSideToMove = p.hands[them]
	st.Check = p.recomputeCheckInfo(them)
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove(m move.Move) {
	them := p.sideToMove
	us := them.Other()
	p.sideToMove = us
	p.gamePly--

	if m.IsDrop() {
		to := m.To()
		pc := p.PieceOn(to)
		p.RemovePiece(pc, to)
		p.hands[us] = p.hands[us].PlusOne(m.DroppedPiece())
	} else {
		from, to := m.From(), m.To()
		placed := p.PieceOn(to)
		p.RemovePiece(placed, to)

		mover := placed
		if m.IsPromotion() {
			mover = placed.Demote()
		}
		p.PutPiece(mover, from)

		captured := p.state().CapturedPiece
		if captured != piece.Empty {
			p.PutPiece(captured, to)
			p.hands[us] = p.hands[us].MinusOne(captured.Demote().Type())
		}
	}

	p.SetGoldsBB()
	p.popState()
}

// DoNullMove swaps the side to move without playing a move, used by
// null-move search pruning.
func (p *Position) DoNullMove() {
	prev := p.state()
	st := p.pushState()
	st.BoardKey = prev.BoardKey ^ zobrist.SideToMove
	st.PliesFromNull = 0
	st.ContinuousChecks = [piece.NColor]int{}
	p.sideToMove = p.sideToMove.Other()
	st.HandOfSideToMove = p.hands[p.sideToMove]
	st.CheckersBB = bitboard.Empty
	st.Check = p.recomputeCheckInfo(p.sideToMove)
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.sideToMove = p.sideToMove.Other()
	p.popState()
}
