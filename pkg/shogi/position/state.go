package position

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/hand"
	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/move/attacks"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/zobrist"
)

// CheckInfo holds per-opponent-king data recomputed after every move.
type CheckInfo struct {
	BlockersForKing [piece.NColor]bitboard.Board
	PinnersForKing  [piece.NColor]bitboard.Board
	CheckSquares    [piece.NType]bitboard.Board
}

// StateInfo is the reversible per-ply state pushed onto a Position's
// history stack by do_move/do_null_move and popped by the matching undo.
type StateInfo struct {
	Material          int
	PliesFromNull     int
	ContinuousChecks  [piece.NColor]int
	BoardKey          zobrist.Key
	HandKey           zobrist.Key
	HandOfSideToMove  hand.Hand
	CheckersBB        bitboard.Board
	CapturedPiece     piece.Piece
	Check             CheckInfo
	LastMove          move.Move

	// ChangedEvalIndex and ChangedEvalIndexCaptured record the mover's
	// and (if any) captured piece's evaluation-feature index change, a
	// (from,to) pair of opaque feature-list indices. An external
	// evaluator, not part of this package, consumes these deltas; -1
	// marks "no change" (e.g. for king moves, which are not evaluation
	// features).
	ChangedEvalIndex         [2]int
	ChangedEvalIndexCaptured [2]int
}

func (p *Position) state() *StateInfo {
	return &p.states[len(p.states)-1]
}

// pushState clones the current state onto the stack and returns a
// pointer to the new top, ready for do_move to mutate in place.
func (p *Position) pushState() *StateInfo {
	cur := *p.state()
	p.states = append(p.states, cur)
	return p.state()
}

// popState discards the top state, restoring the previous one.
func (p *Position) popState() {
	p.states = p.states[:len(p.states)-1]
}

// recomputeCheckInfo rebuilds blockers, pinners, and check_squares
// against the given side to move's king.
func (p *Position) recomputeCheckInfo(us piece.Color) CheckInfo {
	var ci CheckInfo
	them := us.Other()

	for _, c := range [2]piece.Color{piece.Black, piece.White} {
		kingSq := p.KingSquare(c)
		if !kingSq.IsValid() {
			continue
		}
		sliders := p.byType[piece.Lance].
			Or(p.byType[piece.Bishop]).Or(p.byType[piece.Horse]).
			Or(p.byType[piece.Rook]).Or(p.byType[piece.Dragon]).
			And(p.byColor[c.Other()])
		blockers, pinners := p.SliderBlockersAndPinners(sliders, c.Other(), kingSq)
		ci.BlockersForKing[c] = blockers
		ci.PinnersForKing[c] = pinners
	}

	occ := p.Occupied()
	theirKing := p.KingSquare(them)
	if theirKing.IsValid() {
		for t := piece.Pawn; t <= piece.Dragon; t++ {
			if t == piece.King {
				continue
			}
			// A color-us piece of type t attacks theirKing from s iff,
			// by ray/step symmetry under the same occupancy, a type-t
			// piece of the opposite color standing on theirKing reaches
			// s. Color-independent sliders (bishop/rook/horse/dragon)
			// are unaffected by which color is passed here.
			ci.CheckSquares[t] = attacks.Of(t, us.Other(), theirKing, occ)
		}
	}

	return ci
}
