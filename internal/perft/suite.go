// Package perft drives the position package's move-generation counters
// over a fixed suite of positions, reporting progress and results the
// way the tuner command reports training epochs.
package perft

// Case is a single perft suite entry: a labelled position and the depth
// to walk it to.
type Case struct {
	Name  string
	Sfen  string
	Depth int
}

// Suite is the standard set of positions used to stress move generation:
// the starting position plus a handful of well-known edge-case
// positions exercising drops, promotions and checks.
var Suite = []Case{
	{
		Name:  "startpos",
		Sfen:  "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1",
		Depth: 4,
	},
	{
		Name:  "maximum-walk",
		Sfen:  "l6nl/5+P1gk/2np1S3/p1p4Pp/3P2Sp1/1PPb2P1P/P5GS1/R8/LN4bKL w RGgsn5p 1",
		Depth: 3,
	},
	{
		Name:  "drop-heavy",
		Sfen:  "4k4/9/9/9/9/9/9/9/4K4 b 2r2b4g4s4n4l18p 1",
		Depth: 3,
	},
	{
		Name:  "near-mate",
		Sfen:  "8k/9/8P/9/9/9/9/9/8K b G 1",
		Depth: 3,
	},
}
