// Package attacks builds the attack tables used by move generation:
// precomputed stepper tables for short-range pieces and perfect-hash
// tables for the sliding pieces (lance, bishop, rook), built once at
// package initialization and read-only thereafter.
package attacks

import (
	"kuroshio.dev/shogi/pkg/shogi/bitboard"
	"kuroshio.dev/shogi/pkg/shogi/move/attacks/magic"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// step is a single (file,rank) delta pair, defined from Black's
// perspective; White's tables mirror it by negating both components.
type step struct{ df, dr int }

var (
	pawnSteps   = []step{{0, -1}}
	knightSteps = []step{{-1, -2}, {1, -2}}
	silverSteps = []step{{0, -1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	goldSteps   = []step{{0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}}
	kingSteps   = []step{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

func mirror(steps []step) []step {
	out := make([]step, len(steps))
	for i, s := range steps {
		out[i] = step{-s.df, -s.dr}
	}
	return out
}

func buildStepperTable(black, white []step) [piece.NColor][square.N]bitboard.Board {
	var table [piece.NColor][square.N]bitboard.Board
	for s := square.Square(0); s < square.N; s++ {
		f, r := int(s.File()), int(s.Rank())
		for _, d := range black {
			nf, nr := f+d.df, r+d.dr
			if nf >= 0 && nf < square.NFile && nr >= 0 && nr < square.NRank {
				table[piece.Black][s].Set(square.New(square.File(nf), square.Rank(nr)))
			}
		}
		for _, d := range white {
			nf, nr := f+d.df, r+d.dr
			if nf >= 0 && nf < square.NFile && nr >= 0 && nr < square.NRank {
				table[piece.White][s].Set(square.New(square.File(nf), square.Rank(nr)))
			}
		}
	}
	return table
}

// Pawn, Knight, Silver, Gold and King hold, per color and square, the
// set of squares that piece attacks on an otherwise empty board.
var (
	Pawn   = buildStepperTable(pawnSteps, mirror(pawnSteps))
	Knight = buildStepperTable(knightSteps, mirror(knightSteps))
	Silver = buildStepperTable(silverSteps, mirror(silverSteps))
	Gold   = buildStepperTable(goldSteps, mirror(goldSteps))
	King   = buildStepperTable(kingSteps, mirror(kingSteps))
)

// rookDirs and bishopDirs are the rook's and bishop's four ray
// directions.
var (
	rookDirs   = []step{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	bishopDirs = []step{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

func slidingMoveFunc(dirs []step) magic.MoveFunc {
	return func(s square.Square, occ bitboard.Board, masking bool) bitboard.Board {
		var b bitboard.Board
		for _, d := range dirs {
			if masking {
				b = b.Or(magic.RayMask(s, d.df, d.dr))
			} else {
				b = b.Or(magic.Ray(s, d.df, d.dr, occ))
			}
		}
		return b
	}
}

func lanceMoveFunc(dr int) magic.MoveFunc {
	return func(s square.Square, occ bitboard.Board, masking bool) bitboard.Board {
		if masking {
			return magic.RayMask(s, 0, dr)
		}
		return magic.Ray(s, 0, dr, occ)
	}
}

// Rook and Bishop are perfect-hash attack tables indexed by square and
// occupancy.
var (
	Rook   = magic.NewTable(slidingMoveFunc(rookDirs))
	Bishop = magic.NewTable(slidingMoveFunc(bishopDirs))
)

// Lance holds one table per color, since a lance's single ray direction
// depends on which way its side faces.
var Lance = [piece.NColor]*magic.Table{
	piece.Black: magic.NewTable(lanceMoveFunc(-1)),
	piece.White: magic.NewTable(lanceMoveFunc(1)),
}

// RookAttacks, BishopAttacks and LanceAttacks return a slider's attack
// set from s given the full-board occupancy occ.
func RookAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook.Probe(s, occ)
}

func BishopAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop.Probe(s, occ)
}

func LanceAttacks(c piece.Color, s square.Square, occ bitboard.Board) bitboard.Board {
	return Lance[c].Probe(s, occ)
}

// HorseAttacks (promoted bishop) is a bishop slide unioned with a king
// step.
func HorseAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return BishopAttacks(s, occ).Or(King[piece.Black][s]).Or(King[piece.White][s])
}

// DragonAttacks (promoted rook) is a rook slide unioned with a king
// step.
func DragonAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return RookAttacks(s, occ).Or(King[piece.Black][s]).Or(King[piece.White][s])
}

// Of returns the attack set of a piece of type t and color c from square
// s given occupancy occ. Gold-equivalent promoted pieces (ProPawn,
// ProLance, ProKnight, ProSilver) attack like Gold.
func Of(t piece.Type, c piece.Color, s square.Square, occ bitboard.Board) bitboard.Board {
	switch t {
	case piece.Pawn:
		return Pawn[c][s]
	case piece.Lance:
		return LanceAttacks(c, s, occ)
	case piece.Knight:
		return Knight[c][s]
	case piece.Silver:
		return Silver[c][s]
	case piece.Bishop:
		return BishopAttacks(s, occ)
	case piece.Rook:
		return RookAttacks(s, occ)
	case piece.Gold, piece.ProPawn, piece.ProLance, piece.ProKnight, piece.ProSilver:
		return Gold[c][s]
	case piece.King:
		return King[c][s]
	case piece.Horse:
		return HorseAttacks(s, occ)
	case piece.Dragon:
		return DragonAttacks(s, occ)
	default:
		return bitboard.Empty
	}
}

// ProximityCheckMask returns the squares from which a piece of type t
// and color c could plausibly deliver check to a king on kingSquare,
// ignoring obstruction. It is a pessimistic (superset) mask used to
// prune the mate-in-1 search: for sliders it is their pseudo-attack on
// an empty board reflected through kingSquare (any square that attacks
// kingSquare on an empty board also has kingSquare within its own
// empty-board attack set, since every usable ray here is symmetric).
func ProximityCheckMask(t piece.Type, c piece.Color, kingSquare square.Square) bitboard.Board {
	return Of(t, c.Other(), kingSquare, bitboard.Empty)
}
