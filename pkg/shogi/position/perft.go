package position

import "kuroshio.dev/shogi/pkg/shogi/move"

// Perft counts the leaf nodes of the full legal-move tree rooted at the
// current position, to the given depth. It is a pure move-generation
// correctness harness: any mismatch against a known-good count pinpoints
// a bug in GenerateMoves, DoMove or UndoMove.
func (p *Position) Perft(depth int) int64 {
	if depth == 0 {
		return 1
	}

	var buf [MaxMoves]ExtMove
	moves := p.GenerateMoves(Legal, buf[:0])

	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, em := range moves {
		gc := p.GivesCheck(em.Move)
		p.DoMove(em.Move, gc)
		nodes += p.Perft(depth - 1)
		p.UndoMove(em.Move)
	}
	return nodes
}

// PerftDivide is Perft with a per-root-move breakdown, used to localize
// a discrepancy against a reference count to the offending branch.
func (p *Position) PerftDivide(depth int) map[move.Move]int64 {
	result := make(map[move.Move]int64)
	if depth == 0 {
		return result
	}

	var buf [MaxMoves]ExtMove
	moves := p.GenerateMoves(Legal, buf[:0])

	for _, em := range moves {
		gc := p.GivesCheck(em.Move)
		p.DoMove(em.Move, gc)
		result[em.Move] = p.Perft(depth - 1)
		p.UndoMove(em.Move)
	}
	return result
}
