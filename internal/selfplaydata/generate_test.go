package selfplaydata_test

import (
	"strings"
	"testing"

	"kuroshio.dev/shogi/internal/selfplaydata"
)

const fixturePGN = `[Event "Test"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "A"]
[Black "B"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 1-0
`

func TestCheckCodecRoundTripsEveryMoveSquare(t *testing.T) {
	checked, err := selfplaydata.CheckCodec(strings.NewReader(fixturePGN))
	if err != nil {
		t.Fatalf("codec round trip failed: %v", err)
	}
	if checked == 0 {
		t.Fatal("expected at least one square to be checked")
	}
}
