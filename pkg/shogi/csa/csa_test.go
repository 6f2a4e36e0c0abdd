package csa_test

import (
	"testing"

	"kuroshio.dev/shogi/pkg/shogi/csa"
	"kuroshio.dev/shogi/pkg/shogi/position"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p, err := position.ParseSFEN(position.StartSFEN)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m, err := csa.NewFromCSA("7776FU", p.PieceOn)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}

	got, err := csa.Encode(m)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if got != "7776FU" {
		t.Errorf("got %s, want 7776FU", got)
	}
}

func TestEncodeDrop(t *testing.T) {
	p, err := position.ParseSFEN("8k/9/8P/9/9/9/9/9/8K b G 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m := p.MateIn1()
	got, err := csa.Encode(m)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if got != "0012KI" {
		t.Errorf("got %s, want 0012KI", got)
	}
}

func TestDecodeRejectsBadPieceCode(t *testing.T) {
	p, err := position.ParseSFEN(position.StartSFEN)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if _, err := csa.NewFromCSA("7776XX", p.PieceOn); err == nil {
		t.Error("expected an error for an invalid piece code")
	}
}
