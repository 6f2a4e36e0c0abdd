package bitboard

import "kuroshio.dev/shogi/pkg/shogi/square"

// FileMask holds, for each file, the bitboard of every square on it.
var FileMask [square.NFile]Board

// RankMask holds, for each rank, the bitboard of every square on it.
var RankMask [square.NRank]Board

// Between holds, for each ordered pair of squares, the bitboard of
// squares strictly between them if they share a rank, file, or diagonal;
// otherwise Empty.
var Between [square.N][square.N]Board

// Line holds, for each ordered pair of squares sharing a rank, file, or
// diagonal, the bitboard of every square on the infinite line through
// both, clipped to the board; otherwise Empty.
var Line [square.N][square.N]Board

// directions is the eight unit rays radiating from a square, expressed as
// (file delta, rank delta) pairs.
var directions = [8][2]int{
	{0, -1}, {0, 1}, // N, S
	{-1, 0}, {1, 0}, // E, W (file decreases/increases)
	{-1, -1}, {1, -1}, // NE, NW
	{-1, 1}, {1, 1}, // SE, SW
}

func init() {
	for f := square.File(0); f < square.NFile; f++ {
		for r := square.Rank(0); r < square.NRank; r++ {
			s := square.New(f, r)
			FileMask[f].Set(s)
			RankMask[r].Set(s)
		}
	}

	for a := square.Square(0); a < square.N; a++ {
		af, ar := int(a.File()), int(a.Rank())

		for _, d := range directions {
			var ray []square.Square

			cf, cr := af+d[0], ar+d[1]
			for cf >= 0 && cf < square.NFile && cr >= 0 && cr < square.NRank {
				ray = append(ray, square.New(square.File(cf), square.Rank(cr)))
				cf += d[0]
				cr += d[1]
			}

			var line Board
			line.Set(a)
			for _, s := range ray {
				line.Set(s)
			}
			for cf, cr := af-d[0], ar-d[1]; cf >= 0 && cf < square.NFile && cr >= 0 && cr < square.NRank; cf, cr = cf-d[0], cr-d[1] {
				line.Set(square.New(square.File(cf), square.Rank(cr)))
			}

			var between Board
			for _, b := range ray {
				Between[a][b] = between
				Line[a][b] = line
				between.Set(b)
			}
		}
	}
}

// OpponentFieldMask returns the three-rank promotion zone belonging to the
// opponent of c, i.e. the zone c's pieces promote in.
func OpponentFieldMask(c int) Board {
	if c == 0 { // Black: opponent's field is ranks A-C
		return RankMask[0].Or(RankMask[1]).Or(RankMask[2])
	}
	// White: opponent's field is ranks G-I
	return RankMask[6].Or(RankMask[7]).Or(RankMask[8])
}

// IsAlignedAndSq2IsNotBetweenSq0AndSq1 reports whether a, b and c are
// collinear (share a rank, file, or diagonal) and c is not strictly
// between a and b. It is used to decide whether moving a piece pinned
// along the a-b ray to b is still legal when c is the king square.
func IsAlignedAndSq2IsNotBetweenSq0AndSq1(a, b, c square.Square) bool {
	line := Line[a][b]
	if line.IsEmpty() {
		return false
	}
	if !line.IsSet(c) {
		return false
	}
	return !Between[a][b].IsSet(c)
}
