package position

import (
	"fmt"

	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// HuffmanCodedPos is the packed snapshot format: a fixed-width header
// (side to move, both king squares) followed by one variable-length
// prefix code per non-king square and a run of variable-length codes
// for the pieces held in hand, all packed LSB-first into 32 bytes, plus
// a 16-bit ply carried alongside the bitstream.
type HuffmanCodedPos struct {
	Bytes [32]byte
	Ply   uint16
}

type bitWriter struct {
	buf []byte
	pos int
}

func newBitWriter(n int) *bitWriter {
	return &bitWriter{buf: make([]byte, n)}
}

func (w *bitWriter) writeBits(v uint32, n int) {
	for i := 0; i < n; i++ {
		if v&(1<<uint(i)) != 0 {
			w.buf[w.pos/8] |= 1 << uint(w.pos%8)
		}
		w.pos++
	}
}

type bitReader struct {
	buf []byte
	pos int
}

func (r *bitReader) readBit() uint32 {
	bit := (r.buf[r.pos/8] >> uint(r.pos%8)) & 1
	r.pos++
	return uint32(bit)
}

func (r *bitReader) readBits(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v |= r.readBit() << uint(i)
	}
	return v
}

// hcpCode is one leaf of the occupant prefix-code tree: a value held in
// its low len bits.
type hcpCode struct {
	value uint32
	len   int
}

// hcpMidTypes and hcpBigTypes group the non-pawn occupant kinds by the
// code length they are assigned: lance, knight, silver, gold and the
// promoted lance/knight/silver share six-bit codes, bishop/rook and their
// promoted forms (horse, dragon) share eight-bit codes. Promoted pawns
// join the pawns' four-bit group, so every occupant code is one bit
// longer than its family's hand code.
var hcpMidTypes = []piece.Type{
	piece.Lance, piece.Knight, piece.Silver, piece.Gold,
	piece.ProLance, piece.ProKnight, piece.ProSilver,
}
var hcpBigTypes = []piece.Type{piece.Bishop, piece.Rook, piece.Horse, piece.Dragon}

var hcpEncodeTable = map[piece.Piece]hcpCode{}
var hcpDecodeTable = map[hcpCode]piece.Piece{}

func init() {
	pawnPieces := []piece.Piece{
		piece.New(piece.Black, piece.Pawn), piece.New(piece.White, piece.Pawn),
		piece.New(piece.Black, piece.ProPawn), piece.New(piece.White, piece.ProPawn),
	}

	var midPieces []piece.Piece
	for _, t := range hcpMidTypes {
		midPieces = append(midPieces, piece.New(piece.Black, t), piece.New(piece.White, t))
	}

	var bigPieces []piece.Piece
	for _, t := range hcpBigTypes {
		bigPieces = append(bigPieces, piece.New(piece.Black, t), piece.New(piece.White, t))
	}

	groups := []struct {
		length int
		pieces []piece.Piece
	}{
		{1, []piece.Piece{piece.Empty}},
		{4, pawnPieces},
		{6, midPieces},
		{8, bigPieces},
	}

	// Canonical assignment: walk the groups shortest-length first,
	// handing out consecutive code values and widening by the length
	// delta between groups. This is guaranteed prefix-free for any
	// length sequence satisfying the Kraft inequality, which 1/4/6/8
	// bits over 1/4/14/8 symbols does (with equality). The codes are
	// prefix-free read leading bit first, and the stream is written and
	// read least-significant bit first, so each value is stored
	// bit-reversed.
	code := uint32(0)
	prevLength := 0
	for _, g := range groups {
		if prevLength != 0 {
			code <<= uint(g.length - prevLength)
		}
		for _, p := range g.pieces {
			rev := uint32(0)
			for i := 0; i < g.length; i++ {
				rev |= (code >> uint(i) & 1) << uint(g.length-1-i)
			}
			c := hcpCode{value: rev, len: g.length}
			hcpEncodeTable[p] = c
			hcpDecodeTable[c] = p
			code++
		}
		prevLength = g.length
	}
}

// conservedOrder fixes the iteration order the hand-piece code run uses;
// encode and decode must agree on it exactly.
var conservedOrder = []piece.Type{
	piece.Pawn, piece.Lance, piece.Knight, piece.Silver, piece.Gold, piece.Bishop, piece.Rook,
}

func handCodeWidth(t piece.Type) int {
	switch t {
	case piece.Pawn:
		return 3
	case piece.Bishop, piece.Rook:
		return 7
	default:
		return 5
	}
}

func (p *Position) boardFamilyCount(t piece.Type) int {
	n := 0
	for s := square.Square(0); s < square.N; s++ {
		pc := p.PieceOn(s)
		if pc == piece.Empty || pc.Type() == piece.King {
			continue
		}
		if pc.Demote().Type() == t {
			n++
		}
	}
	return n
}

// EncodeHCP packs p into its Huffman-coded snapshot. The hand run carries
// no counts: DecodeHCP derives each family's hand total from
// conservedTotal minus the pieces found on the board, so only positions
// holding the full 40-piece set (board plus hands) round-trip.
func (p *Position) EncodeHCP() HuffmanCodedPos {
	w := newBitWriter(32)

	stm := uint32(0)
	if p.sideToMove == piece.White {
		stm = 1
	}
	w.writeBits(stm, 1)

	blackKing := p.KingSquare(piece.Black)
	whiteKing := p.KingSquare(piece.White)
	w.writeBits(uint32(blackKing), 7)
	w.writeBits(uint32(whiteKing), 7)

	for s := square.Square(0); s < square.N; s++ {
		if s == blackKing || s == whiteKing {
			continue
		}
		c := hcpEncodeTable[p.PieceOn(s)]
		w.writeBits(c.value, c.len)
	}

	for _, t := range conservedOrder {
		width := handCodeWidth(t)
		for _, c := range [2]piece.Color{piece.Black, piece.White} {
			for i := 0; i < p.Hand(c).Num(t); i++ {
				w.writeBits(uint32(c), width)
			}
		}
	}

	var hcp HuffmanCodedPos
	copy(hcp.Bytes[:], w.buf)
	hcp.Ply = uint16(p.gamePly)
	return hcp
}

func decodeOccupant(r *bitReader) (piece.Piece, error) {
	var value uint32
	for length := 1; length <= 8; length++ {
		value |= r.readBit() << uint(length-1)
		if pc, ok := hcpDecodeTable[hcpCode{value: value, len: length}]; ok {
			return pc, nil
		}
	}
	return piece.Empty, fmt.Errorf("position: invalid huffman occupant code")
}

// DecodeHCP rebuilds a Position from a Huffman-coded snapshot.
func DecodeHCP(hcp HuffmanCodedPos) (*Position, error) {
	r := &bitReader{buf: hcp.Bytes[:]}

	stm := r.readBits(1)
	blackKing := square.Square(r.readBits(7))
	whiteKing := square.Square(r.readBits(7))
	if !blackKing.IsValid() || !whiteKing.IsValid() {
		return nil, fmt.Errorf("position: invalid huffman king square")
	}

	p := New()
	p.PutPiece(piece.New(piece.Black, piece.King), blackKing)
	p.PutPiece(piece.New(piece.White, piece.King), whiteKing)

	boardCounts := map[piece.Type]int{}

	for s := square.Square(0); s < square.N; s++ {
		if s == blackKing || s == whiteKing {
			continue
		}
		pc, err := decodeOccupant(r)
		if err != nil {
			return nil, err
		}
		if pc != piece.Empty {
			p.PutPiece(pc, s)
			boardCounts[pc.Demote().Type()]++
		}
	}

	for _, t := range conservedOrder {
		remaining := conservedTotal[t] - boardCounts[t]
		if remaining < 0 {
			return nil, fmt.Errorf("position: huffman decode overflows %v family", t)
		}
		width := handCodeWidth(t)
		for i := 0; i < remaining; i++ {
			bits := r.readBits(width)
			c := piece.Color(bits & 1)
			p.hands[c] = p.hands[c].PlusOne(t)
		}
	}

	if stm == 1 {
		p.sideToMove = piece.White
	}
	p.gamePly = int(hcp.Ply)

	p.SetGoldsBB()
	p.initKeys()
	p.initCheckState()

	return p, nil
}
