package position_test

import (
	"testing"

	"kuroshio.dev/shogi/pkg/shogi/position"
)

func TestSFEN(t *testing.T) {
	tests := []string{
		position.StartSFEN,
		"lnsgkgsnl/1r5b1/pppppp1pp/6p2/9/2P6/PP1PPPPPP/1B5R1/LNSGKGSNL w - 2",
		"4k4/9/9/9/9/9/9/9/4K4 b Bb 1",
		"kl7/1n7/K8/9/9/9/9/9/9 b P 1",
		"8k/9/8P/9/9/9/9/9/8K b G 1",
		"6Rbk/9/8P/9/9/9/9/9/8K b G 1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			p, err := position.ParseSFEN(test)
			if err != nil {
				t.Fatalf("test %d: parse error: %v", n, err)
			}
			if got := p.SFEN(); got != test {
				t.Errorf("test %d: wrong sfen\nwant %s\ngot  %s", n, test, got)
			}
		})
	}
}

func TestSFENRejectsMalformed(t *testing.T) {
	tests := []string{
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b -", // missing ply field
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1", // missing rank
		"lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL x - 1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			if _, err := position.ParseSFEN(test); err == nil {
				t.Errorf("test %d: expected error for %q", n, test)
			}
		})
	}
}

func TestHuffmanRoundTrip(t *testing.T) {
	tests := []string{
		position.StartSFEN,
		"4k4/9/9/9/9/9/9/9/4K4 b B2rb4g4s4n4l18p 1",
		"kl7/1n7/K8/9/9/9/9/9/9 b P2r2b4g4s3n3l17p 1",
		"6Rbk/9/8P/9/9/9/9/9/8K b Grb3g4s4n4l17p 1",
	}

	for n, test := range tests {
		t.Run(test, func(t *testing.T) {
			p, err := position.ParseSFEN(test)
			if err != nil {
				t.Fatalf("test %d: parse error: %v", n, err)
			}

			hcp := p.EncodeHCP()
			got, err := position.DecodeHCP(hcp)
			if err != nil {
				t.Fatalf("test %d: decode error: %v", n, err)
			}

			if got.SFEN() != p.SFEN() {
				t.Errorf("test %d: huffman round trip mismatch\nwant %s\ngot  %s", n, p.SFEN(), got.SFEN())
			}
		})
	}
}
