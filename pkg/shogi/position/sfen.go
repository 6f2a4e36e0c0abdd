package position

import (
	"fmt"
	"strconv"
	"strings"

	"kuroshio.dev/shogi/pkg/shogi/hand"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
	"kuroshio.dev/shogi/pkg/shogi/zobrist"
)

// StartSFEN is the standard Shogi starting position.
const StartSFEN = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// conservedTotal is the number of board-plus-hand pieces of each
// droppable family that must exist at all times.
var conservedTotal = map[piece.Type]int{
	piece.Pawn: 18, piece.Lance: 4, piece.Knight: 4,
	piece.Silver: 4, piece.Gold: 4, piece.Bishop: 2, piece.Rook: 2,
}

// ParseSFEN builds a Position from an SFEN string: "<board> <side>
// <hands> <ply>".
func ParseSFEN(sfen string) (*Position, error) {
	fields := strings.Fields(sfen)
	if len(fields) != 4 {
		return nil, fmt.Errorf("position: invalid number of sfen sections (got %d, want 4)", len(fields))
	}

	p := New()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != square.NRank {
		return nil, fmt.Errorf("position: invalid number of ranks (got %d, want %d)", len(ranks), square.NRank)
	}

	counts := map[piece.Type]int{}

	for r, rankStr := range ranks {
		f := square.NFile - 1
		i := 0
		for i < len(rankStr) {
			ch := rankStr[i]
			if ch >= '1' && ch <= '9' {
				n := int(ch - '0')
				f -= n
				i++
				continue
			}

			promoted := ch == '+'
			if promoted {
				i++
				if i >= len(rankStr) {
					return nil, fmt.Errorf("position: invalid piece characters in rank %q", rankStr)
				}
				ch = rankStr[i]
			}

			letter := string(ch)
			if promoted {
				letter = "+" + letter
			}
			pc, err := piece.NewFromSFEN(letter)
			if err != nil {
				return nil, fmt.Errorf("position: invalid piece characters: %w", err)
			}

			if f < 0 {
				return nil, fmt.Errorf("position: invalid number of files in rank %q", rankStr)
			}

			sq := square.New(square.File(f), square.Rank(r))
			p.PutPiece(pc, sq)
			counts[pc.Type().Demote()]++

			f--
			i++
		}

		if f != -1 {
			return nil, fmt.Errorf("position: invalid number of files in rank %q", rankStr)
		}
	}

	switch fields[1] {
	case "b":
		p.sideToMove = piece.Black
	case "w":
		p.sideToMove = piece.White
	default:
		return nil, fmt.Errorf("position: invalid side to move character %q", fields[1])
	}

	hands, err := hand.ParseSFENHands(fields[2])
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	p.hands = hands

	for c := piece.Black; c <= piece.White; c++ {
		for _, t := range piece.Droppable {
			counts[t] += p.hands[c].Num(t)
		}
	}
	for t, want := range conservedTotal {
		if got := counts[t]; got > want {
			return nil, fmt.Errorf("position: too many %v (board+hand count %d exceeds %d)", t, got, want)
		}
	}

	ply, err := strconv.Atoi(fields[3])
	if err != nil || ply < 1 {
		return nil, fmt.Errorf("position: invalid ply %q", fields[3])
	}
	p.gamePly = ply

	if !p.kings[piece.Black].IsValid() {
		return nil, fmt.Errorf("position: king missing for black")
	}
	if !p.kings[piece.White].IsValid() {
		return nil, fmt.Errorf("position: king missing for white")
	}

	p.SetGoldsBB()
	p.initKeys()
	p.initCheckState()

	return p, nil
}

// initKeys computes board_key and hand_key from scratch; called once
// after construction since do_move otherwise maintains them
// incrementally.
func (p *Position) initKeys() {
	st := p.state()
	st.BoardKey = 0
	st.HandKey = 0

	for s := square.Square(0); s < square.N; s++ {
		pc := p.board[s]
		if pc != piece.Empty {
			st.BoardKey ^= zobrist.PieceSquare[pc][s]
		}
	}
	if p.sideToMove == piece.White {
		st.BoardKey ^= zobrist.SideToMove
	}

	for c := piece.Black; c <= piece.White; c++ {
		for _, t := range piece.Droppable {
			n := p.hands[c].Num(t)
			for i := 0; i < n; i++ {
				st.HandKey ^= zobrist.HandDelta(c, t, i, i+1)
			}
		}
	}

	st.HandOfSideToMove = p.hands[p.sideToMove]
}

// initCheckState computes checkers_bb and check_info for the freshly
// constructed position.
func (p *Position) initCheckState() {
	us := p.sideToMove
	st := p.state()
	st.CheckersBB = p.AttackersToExceptKing(us.Other(), p.KingSquare(us), p.Occupied())
	st.Check = p.recomputeCheckInfo(us)
}

// SFEN renders the position back to SFEN notation.
func (p *Position) SFEN() string {
	var sb strings.Builder

	for r := square.RankA; r <= square.RankI; r++ {
		empties := 0
		for f := square.File9; f >= square.File1; f-- {
			pc := p.board[square.New(f, r)]
			if pc == piece.Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteString(pc.String())
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if r != square.RankI {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')

	blackHand := p.hands[piece.Black].String(piece.Black)
	whiteHand := p.hands[piece.White].String(piece.White)
	hands := blackHand + whiteHand
	if hands == "" {
		hands = "-"
	}
	sb.WriteString(hands)

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.gamePly))

	return sb.String()
}
