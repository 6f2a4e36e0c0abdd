package position

import (
	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/piece"
)

// pieceValue gives each piece type's material weight for SEE, in
// centipawn-like units scaled for Shogi's relative piece strengths.
var pieceValue = [piece.NType]int{
	piece.Pawn:      100,
	piece.Lance:     300,
	piece.Knight:    300,
	piece.Silver:    500,
	piece.Bishop:    800,
	piece.Rook:      1000,
	piece.Gold:      600,
	piece.King:      100000,
	piece.ProPawn:   600,
	piece.ProLance:  600,
	piece.ProKnight: 600,
	piece.ProSilver: 600,
	piece.Horse:     1000,
	piece.Dragon:    1200,
}

// seeAttackerOrder is the order least-valuable-attacker search walks,
// cheapest first; promoted minors rank alongside Gold since they share
// its move set and a comparable material weight.
var seeAttackerOrder = []piece.Type{
	piece.Pawn, piece.Lance, piece.Knight, piece.Silver,
	piece.ProPawn, piece.ProLance, piece.ProKnight, piece.ProSilver, piece.Gold,
	piece.Bishop, piece.Horse, piece.Rook, piece.Dragon, piece.King,
}

// SeeGE performs a static exchange evaluation of m, assuming an optimal
// alternating recapture sequence on m's destination square, and reports
// whether the net material swing meets or exceeds threshold.
func (p *Position) SeeGE(m move.Move, threshold int) bool {
	to := m.To()

	var moverType piece.Type
	if m.IsDrop() {
		moverType = m.DroppedPiece()
	} else {
		moverType = p.PieceOn(m.From()).Type()
		if m.IsPromotion() {
			moverType = moverType.Promote()
		}
	}

	balance := pieceValue[p.PieceOn(to).Type()] - threshold
	if balance < 0 {
		return false
	}

	balance -= pieceValue[moverType]
	if balance >= 0 {
		return true
	}

	occ := p.Occupied()
	if !m.IsDrop() {
		occ.Unset(m.From())
	}
	occ.Set(to)

	sideToMove := p.sideToMove.Other()
	attackers := p.AttackersToBothColors(to, occ).And(occ)

	for {
		friends := attackers.And(p.byColor[sideToMove])
		if friends.IsEmpty() {
			break
		}

		attackerType := piece.Occupied
		for _, t := range seeAttackerOrder {
			if !friends.And(p.byType[t]).IsEmpty() {
				attackerType = t
				break
			}
		}
		if attackerType == piece.Occupied {
			break
		}

		if attackerType == piece.King && !attackers.AndNot(friends).IsEmpty() {
			// the king cannot capture into a square still covered by
			// the opponent's remaining attackers.
			break
		}

		source := friends.And(p.byType[attackerType]).FirstOne()
		occ.Unset(source)
		sideToMove = sideToMove.Other()

		balance = -balance - pieceValue[attackerType]

		if balance >= 0 {
			break
		}

		// recompute attackers against the updated occupancy; any newly
		// revealed slider (the "x-ray" update) is picked up naturally
		// since AttackersToBothColors scans every piece type fresh.
		attackers = p.AttackersToBothColors(to, occ).And(occ)
	}

	return sideToMove != p.sideToMove
}
