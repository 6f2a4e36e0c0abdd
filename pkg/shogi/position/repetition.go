package position

// RepetitionState classifies the relationship between the current
// position and a prior one reached earlier in the same search line.
type RepetitionState int

const (
	RepetitionNone RepetitionState = iota
	RepetitionDraw
	RepetitionWin
	RepetitionLose
	RepetitionSuperior
	RepetitionInferior
)

func (r RepetitionState) String() string {
	switch r {
	case RepetitionNone:
		return "none"
	case RepetitionDraw:
		return "draw"
	case RepetitionWin:
		return "win"
	case RepetitionLose:
		return "lose"
	case RepetitionSuperior:
		return "superior"
	case RepetitionInferior:
		return "inferior"
	default:
		return "unknown"
	}
}

// repetitionWindow bounds how far back IsRepetition looks; conventional
// for modern Shogi engines but not itself a rule of the game.
const repetitionWindow = 16

// IsRepetition walks the state stack backward in steps of two plies (so
// that it only ever compares positions with the same side to move),
// looking for a match against the current full key. It classifies
// perpetual check sequences as a win or loss for whichever side is doing
// the checking, and otherwise reports a plain draw by repetition or a
// hand-dominance relationship when only the board repeats.
func (p *Position) IsRepetition() RepetitionState {
	n := len(p.states)
	if n < 5 {
		return RepetitionNone
	}

	cur := p.state()
	us := p.sideToMove

	limit := n - repetitionWindow - 1
	if limit < 0 {
		limit = 0
	}

	for i := n - 3; i >= limit; i -= 2 {
		prior := &p.states[i]

		if prior.BoardKey == cur.BoardKey && prior.HandKey == cur.HandKey {
			// A perpetual-check streak that has lasted the whole
			// repetition is an automatic loss for whichever side has
			// been delivering it, regardless of who repeats the
			// position.
			// Each side moved (n-1-i)/2 times since the prior state.
			checksUs := cur.ContinuousChecks[us]
			checksThem := cur.ContinuousChecks[us.Other()]
			movesEach := (n - 1 - i) / 2

			switch {
			case checksUs >= movesEach:
				return RepetitionLose
			case checksThem >= movesEach:
				return RepetitionWin
			default:
				return RepetitionDraw
			}
		}

		if prior.BoardKey == cur.BoardKey {
			if cur.HandOfSideToMove.IsEqualOrSuperior(prior.HandOfSideToMove) {
				return RepetitionSuperior
			}
			if prior.HandOfSideToMove.IsEqualOrSuperior(cur.HandOfSideToMove) {
				return RepetitionInferior
			}
		}
	}

	return RepetitionNone
}
