// Package position implements a complete Shogi position: board state,
// hands, move generation, and the reversible do/undo machinery used by
// search.
package position

import (
	"fmt"

	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/hand"
	"kuroshio.dev/shogi/pkg/shogi/move/attacks"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
	"kuroshio.dev/shogi/pkg/shogi/zobrist"
)

// Position represents the state of a Shogi game at a given ply,
// together with the history stack needed to undo moves.
type Position struct {
	board     [square.N]piece.Piece
	byType    [piece.NType]bitboard.Board // indexed by piece.Type; Occupied holds the aggregate
	byColor   [piece.NColor]bitboard.Board
	goldsBB   bitboard.Board
	hands     [piece.NColor]hand.Hand
	kings     [piece.NColor]square.Square
	sideToMove piece.Color
	gamePly   int

	states []StateInfo

	// Nodes is an atomic counter shared by worker clones produced by
	// NewFromPosition; it is the only mutable state a Position shares.
	Nodes *int64
}

// New returns an empty Position with no pieces placed; callers normally
// build one via ParseSFEN.
func New() *Position {
	var p Position
	for s := range p.board {
		p.board[s] = piece.Empty
	}
	p.kings[piece.Black] = square.None
	p.kings[piece.White] = square.None
	p.gamePly = 1
	var zero int64
	p.Nodes = &zero
	p.states = append(p.states, StateInfo{})
	return &p
}

// NewFromPosition clones parent for a search worker, sharing only the
// node counter.
func NewFromPosition(parent *Position) *Position {
	clone := *parent
	clone.states = append([]StateInfo(nil), parent.states...)
	return &clone
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() piece.Color { return p.sideToMove }

// GamePly returns the current ply number (>= 1).
func (p *Position) GamePly() int { return p.gamePly }

// PieceOn returns the piece occupying s, or piece.Empty.
func (p *Position) PieceOn(s square.Square) piece.Piece { return p.board[s] }

// Hand returns color c's hand.
func (p *Position) Hand(c piece.Color) hand.Hand { return p.hands[c] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c piece.Color) square.Square { return p.kings[c] }

// Occupied returns the set of all occupied squares.
func (p *Position) Occupied() bitboard.Board { return p.byType[piece.Occupied] }

// ByColor returns the set of squares occupied by color c.
func (p *Position) ByColor(c piece.Color) bitboard.Board { return p.byColor[c] }

// ByType returns the set of squares occupied by a piece of exactly type t
// (promoted types have their own entries), of either color.
func (p *Position) ByType(t piece.Type) bitboard.Board { return p.byType[t] }

// ByPiece returns the set of squares occupied by a piece of color c and
// type t.
func (p *Position) ByPiece(c piece.Color, t piece.Type) bitboard.Board {
	return p.byType[t].And(p.byColor[c])
}

// GoldsBB returns the cached aggregate of Gold and the four
// gold-equivalent promoted types.
func (p *Position) GoldsBB() bitboard.Board { return p.goldsBB }

// CheckersBB returns the set of pieces currently attacking the side to
// move's king.
func (p *Position) CheckersBB() bitboard.Board { return p.state().CheckersBB }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return !p.CheckersBB().IsEmpty() }

// BoardKey and HandKey return the current Zobrist key components.
func (p *Position) BoardKey() zobrist.Key { return p.state().BoardKey }
func (p *Position) HandKey() zobrist.Key  { return p.state().HandKey }

// Key returns the combined Zobrist key of the position.
func (p *Position) Key() zobrist.Key { return p.BoardKey() ^ p.HandKey() }

// PutPiece places pc on sq, which must currently be empty. It updates
// type, color and occupancy bitboards and the mailbox board; it does
// not recompute golds_bb or any Zobrist key.
func (p *Position) PutPiece(pc piece.Piece, sq square.Square) {
	p.board[sq] = pc
	t, c := pc.Type(), pc.Color()
	p.byType[t].Set(sq)
	p.byType[piece.Occupied].Set(sq)
	p.byColor[c].Set(sq)
	if t == piece.King {
		p.kings[c] = sq
	}
}

// RemovePiece removes the piece pc (which must occupy sq) from sq.
func (p *Position) RemovePiece(pc piece.Piece, sq square.Square) {
	p.board[sq] = piece.Empty
	t, c := pc.Type(), pc.Color()
	p.byType[t].Unset(sq)
	p.byType[piece.Occupied].Unset(sq)
	p.byColor[c].Unset(sq)
}

// ExchangePieces atomically swaps the enemy piece occupying sq for
// pcNew, a different-type piece of the other color, used when applying
// a capture-and-place in one step.
func (p *Position) ExchangePieces(pcNew piece.Piece, sq square.Square) {
	old := p.board[sq]
	p.byType[old.Type()].Unset(sq)
	p.byColor[old.Color()].Unset(sq)

	p.board[sq] = pcNew
	p.byType[pcNew.Type()].Set(sq)
	p.byColor[pcNew.Color()].Set(sq)
	if pcNew.Type() == piece.King {
		p.kings[pcNew.Color()] = sq
	}
}

// SetGoldsBB recomputes the Gold-equivalent aggregate; callers must call
// this after any move that changes Gold or promoted-minor bitboards.
func (p *Position) SetGoldsBB() {
	p.goldsBB = p.byType[piece.Gold].
		Or(p.byType[piece.ProPawn]).
		Or(p.byType[piece.ProLance]).
		Or(p.byType[piece.ProKnight]).
		Or(p.byType[piece.ProSilver])
}

// attackersOfType ORs in the attackers of sq amongst a single piece type
// for color c.
func (p *Position) attackersOfType(c piece.Color, t piece.Type, sq square.Square, occ bitboard.Board) bitboard.Board {
	bb := p.ByPiece(c, t)
	if bb.IsEmpty() {
		return bitboard.Empty
	}
	var attackers bitboard.Board
	for tmp := bb; !tmp.IsEmpty(); {
		from := tmp.PopLSB()
		if attacks.Of(t, c, from, occ).IsSet(sq) {
			attackers.Set(from)
		}
	}
	return attackers
}

// AttackersTo returns every color-c piece attacking sq given occupancy
// occ.
func (p *Position) AttackersTo(c piece.Color, sq square.Square, occ bitboard.Board) bitboard.Board {
	var result bitboard.Board
	for t := piece.Pawn; t <= piece.Dragon; t++ {
		if t == piece.King {
			continue
		}
		result = result.Or(p.attackersOfType(c, t, sq, occ))
	}
	kingBB := p.ByPiece(c, piece.King)
	if !kingBB.IsEmpty() && attacks.King[c][kingBB.FirstOne()].IsSet(sq) {
		result.Set(kingBB.FirstOne())
	}
	return result
}

// AttackersToExceptKing is AttackersTo with the color-c king excluded
// from consideration, used when computing checkers after a move (a king
// can never give check) and by the mate-in-1 drop test's capturer scan.
func (p *Position) AttackersToExceptKing(c piece.Color, sq square.Square, occ bitboard.Board) bitboard.Board {
	var result bitboard.Board
	for t := piece.Pawn; t < piece.King; t++ {
		result = result.Or(p.attackersOfType(c, t, sq, occ))
	}
	for t := piece.ProPawn; t <= piece.Dragon; t++ {
		result = result.Or(p.attackersOfType(c, t, sq, occ))
	}
	return result
}

// AttackersToExceptKingAndLancePawn further excludes lances and pawns,
// used by the drop-pawn-mate test (neither can ever capture toward their
// own side, i.e. backward).
func (p *Position) AttackersToExceptKingAndLancePawn(c piece.Color, sq square.Square, occ bitboard.Board) bitboard.Board {
	var result bitboard.Board
	for t := piece.Knight; t < piece.King; t++ {
		result = result.Or(p.attackersOfType(c, t, sq, occ))
	}
	for t := piece.ProPawn; t <= piece.Dragon; t++ {
		result = result.Or(p.attackersOfType(c, t, sq, occ))
	}
	return result
}

// AttackersToBothColors returns the attackers of sq of either color,
// used by SEE.
func (p *Position) AttackersToBothColors(sq square.Square, occ bitboard.Board) bitboard.Board {
	return p.AttackersTo(piece.Black, sq, occ).Or(p.AttackersTo(piece.White, sq, occ))
}

// SliderBlockersAndPinners walks each ray from target_sq through the
// sliders in slidersBB (belonging to colorOfSliders); when exactly one
// piece of either color lies strictly between the slider and the
// target, that piece is a blocker and the slider is its pinner.
func (p *Position) SliderBlockersAndPinners(slidersBB bitboard.Board, colorOfSliders piece.Color, targetSq square.Square) (blockers, pinners bitboard.Board) {
	occ := p.Occupied()
	snipers := slidersBB.And(
		attacks.BishopAttacks(targetSq, bitboard.Empty).
			Or(attacks.RookAttacks(targetSq, bitboard.Empty)).
			Or(attacks.LanceAttacks(colorOfSliders.Other(), targetSq, bitboard.Empty)),
	)

	for tmp := snipers; !tmp.IsEmpty(); {
		sniperSq := tmp.PopLSB()
		pc := p.board[sniperSq]
		if !sliderReachesAlongRay(pc.Type(), pc.Color(), sniperSq, targetSq) {
			continue
		}
		between := bitboard.Between[sniperSq][targetSq].And(occ)
		if between.Count() == 1 {
			blockers = blockers.Or(between)
			pinners.Set(sniperSq)
		}
	}
	return blockers, pinners
}

// sliderReachesAlongRay reports whether a slider of type t/color c
// standing at from could ever (on an empty board) reach to in a
// straight ray, i.e. whether the two squares are aligned along a ray
// that piece type actually slides on.
func sliderReachesAlongRay(t piece.Type, c piece.Color, from, to square.Square) bool {
	switch t {
	case piece.Lance:
		return attacks.LanceAttacks(c, from, bitboard.Empty).IsSet(to)
	case piece.Bishop, piece.Horse:
		return attacks.BishopAttacks(from, bitboard.Empty).IsSet(to)
	case piece.Rook, piece.Dragon:
		return attacks.RookAttacks(from, bitboard.Empty).IsSet(to)
	default:
		return false
	}
}

func (p *Position) String() string {
	s := fmt.Sprintf("%s\nSFEN: %s\nKey: %X\n", boardString(p), p.SFEN(), uint64(p.Key()))
	return s
}
