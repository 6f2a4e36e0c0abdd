// Package csa encodes and decodes the CSA move-string notation: six
// characters made of a from-square (or "00" for a drop), a to-square,
// and the moved piece's type after the move, each square written as two
// ASCII digits (file then rank, both 1-9) rather than USI's file-digit
// plus rank-letter pairing.
package csa

import (
	"fmt"

	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

var typeCode = map[piece.Type]string{
	piece.Pawn: "FU", piece.Lance: "KY", piece.Knight: "KE", piece.Silver: "GI",
	piece.Gold: "KI", piece.Bishop: "KA", piece.Rook: "HI", piece.King: "OU",
	piece.ProPawn: "TO", piece.ProLance: "NY", piece.ProKnight: "NK", piece.ProSilver: "NG",
	piece.Horse: "UM", piece.Dragon: "RY",
}

var codeType map[string]piece.Type

func init() {
	codeType = make(map[string]piece.Type, len(typeCode))
	for t, s := range typeCode {
		codeType[s] = t
	}
}

// EncodeSquare renders sq as a two-digit CSA square string, e.g. "77".
func EncodeSquare(sq square.Square) string {
	return string(rune('1'+sq.File())) + string(rune('1'+sq.Rank()))
}

// DecodeSquare parses a two-digit CSA square string.
func DecodeSquare(s string) (square.Square, error) {
	if len(s) != 2 {
		return square.None, fmt.Errorf("csa: invalid square %q", s)
	}
	f, r := s[0], s[1]
	if f < '1' || f > '9' || r < '1' || r > '9' {
		return square.None, fmt.Errorf("csa: invalid square %q", s)
	}
	return square.New(square.File(f-'1'), square.Rank(r-'1')), nil
}

// Encode renders m as a six-character CSA move string.
func Encode(m move.Move) (string, error) {
	if !m.IsNormal() {
		return "", fmt.Errorf("csa: cannot encode non-normal move %v", m)
	}

	var t piece.Type
	if m.IsDrop() {
		t = m.DroppedPiece()
	} else {
		t = m.MovedPiece().Type()
		if m.IsPromotion() {
			t = t.Promote()
		}
	}

	code, ok := typeCode[t]
	if !ok {
		return "", fmt.Errorf("csa: no csa code for piece type %v", t)
	}

	from := "00"
	if !m.IsDrop() {
		from = EncodeSquare(m.From())
	}

	return from + EncodeSquare(m.To()) + code, nil
}

// NewFromCSA parses a six-character CSA move string. pieceAt supplies the
// piece currently occupying a board move's from-square, since the CSA
// string names only the piece's type after the move, not its color or
// (for promotions) its original type.
func NewFromCSA(s string, pieceAt func(square.Square) piece.Piece) (move.Move, error) {
	if len(s) != 6 {
		return move.Null, fmt.Errorf("csa: invalid move string %q", s)
	}

	finalType, ok := codeType[s[4:6]]
	if !ok {
		return move.Null, fmt.Errorf("csa: invalid piece code %q", s[4:6])
	}

	to, err := DecodeSquare(s[2:4])
	if err != nil {
		return move.Null, err
	}

	if s[0:2] == "00" {
		return move.NewDrop(finalType, to), nil
	}

	from, err := DecodeSquare(s[0:2])
	if err != nil {
		return move.Null, err
	}

	p := pieceAt(from)
	switch {
	case finalType == p.Type():
		return move.New(from, to, p, false), nil
	case p.Type().Promotable() && finalType == p.Type().Promote():
		return move.New(from, to, p, true), nil
	default:
		return move.Null, fmt.Errorf("csa: piece code %q does not match piece on %s", s[4:6], from)
	}
}
