// Package selfplaydata is test-only scaffolding for the CSA move-string
// codec, not a self-play training data generator (explicitly out of
// scope). It reads real chess PGN games with notnil/chess, the pack's
// only externally-available reference move parser, purely as a source
// of known-good from/to square pairs, and round-trips each one through
// pkg/shogi/csa's square codec independent of any board semantics.
// Grounded on scripts/datagen/main.go's use of the same dependency as a
// PGN/game-record container format, narrowed to a pure codec exercise.
package selfplaydata

import (
	"fmt"
	"io"

	"github.com/notnil/chess"

	"kuroshio.dev/shogi/pkg/shogi/csa"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// CheckCodec scans every game in corpus and, for every move in every
// game, maps its source/destination square indices onto the Shogi
// square range and checks that csa.EncodeSquare/csa.DecodeSquare round
// trip them losslessly. It returns the number of squares checked.
func CheckCodec(corpus io.Reader) (int, error) {
	scanner := chess.NewScanner(corpus)

	checked := 0
	for scanner.Scan() {
		game := scanner.Next()
		for _, m := range game.Moves() {
			for _, idx := range [2]int{int(m.S1()), int(m.S2())} {
				if err := checkRoundTrip(idx); err != nil {
					return checked, err
				}
				checked++
			}
		}
	}

	return checked, nil
}

// checkRoundTrip folds an arbitrary square index into Shogi's 9x9
// range and checks that encoding then decoding it through the CSA
// codec reproduces the same square.
func checkRoundTrip(idx int) error {
	f := square.File(idx % square.NFile)
	r := square.Rank((idx / square.NFile) % square.NRank)
	sq := square.New(f, r)

	s := csa.EncodeSquare(sq)
	got, err := csa.DecodeSquare(s)
	if err != nil {
		return fmt.Errorf("selfplaydata: decode %q: %w", s, err)
	}
	if got != sq {
		return fmt.Errorf("selfplaydata: round trip mismatch for %v: got %v", sq, got)
	}
	return nil
}
