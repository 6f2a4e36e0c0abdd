package engine_test

import (
	"testing"

	"kuroshio.dev/shogi/internal/engine"
)

func TestNewClientRunsPositionAndGo(t *testing.T) {
	client, err := engine.NewClient()
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if err := client.Run("usi"); err != nil {
		t.Fatalf("usi command error: %v", err)
	}

	if err := client.Run("position", "sfen", "8k/9/8P/9/9/9/9/9/8K", "b", "G", "1"); err != nil {
		t.Fatalf("position command error: %v", err)
	}

	if err := client.Run("go"); err != nil {
		t.Fatalf("go command error: %v", err)
	}

	if err := client.Run("d"); err != nil {
		t.Fatalf("d command error: %v", err)
	}
}

func TestNewClientRejectsBadPosition(t *testing.T) {
	client, err := engine.NewClient()
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if err := client.Run("position", "sfen", "not", "a", "valid", "sfen"); err == nil {
		t.Error("expected an error for a malformed sfen")
	}
}
