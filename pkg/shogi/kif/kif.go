// Package kif reads a minimal KIF-shaped game record: a block of
// "Key: Value" tag pairs (the analogue of a PGN tag pair section)
// followed by a blank line and a numbered list of USI move strings.
// This is not the full kanji KIF move notation Japanese shogi software
// exchanges; it borrows only the tag-pairs-then-movetext shape.
package kif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Game is one parsed game record.
type Game struct {
	Tags  map[string]string
	Moves []string
}

// Tag looks up a tag value, grapheme-cluster-trimmed of surrounding
// whitespace so multi-codepoint player names (combining diacritics,
// accented kanji readings) don't get mangled by a naive byte trim.
func (g Game) Tag(key string) string {
	return trimGraphemes(g.Tags[key])
}

// Read parses every game record in r. Records are separated by one or
// more blank lines following a game's move list.
func Read(r io.Reader) ([]Game, error) {
	scanner := bufio.NewScanner(r)

	var games []Game
	current := Game{Tags: map[string]string{}}
	inMoves := false

	flush := func() {
		if len(current.Tags) > 0 || len(current.Moves) > 0 {
			games = append(games, current)
		}
		current = Game{Tags: map[string]string{}}
		inMoves = false
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			if inMoves {
				flush()
			}
			continue
		}

		if !inMoves {
			key, value, ok := strings.Cut(line, ":")
			if ok {
				current.Tags[strings.TrimSpace(key)] = strings.TrimSpace(value)
				continue
			}
			inMoves = true
		}

		move, err := parseMoveLine(line)
		if err != nil {
			return nil, err
		}
		current.Moves = append(current.Moves, move)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()
	return games, nil
}

// parseMoveLine accepts either "N. move" or a bare "move" token per
// line.
func parseMoveLine(line string) (string, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return fields[0], nil
	case 2:
		if _, err := strconv.Atoi(strings.TrimSuffix(fields[0], ".")); err != nil {
			return "", fmt.Errorf("kif: invalid move number %q", fields[0])
		}
		return fields[1], nil
	default:
		return "", fmt.Errorf("kif: invalid move line %q", line)
	}
}

// Write serializes games back to the same tag-pairs-then-movetext
// shape Read accepts.
func Write(w io.Writer, games []Game) error {
	for i, g := range games {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for key, value := range g.Tags {
			if _, err := fmt.Fprintf(w, "%s: %s\n", key, value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		for i, m := range g.Moves {
			if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func trimGraphemes(s string) string {
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, string(g.Runes()))
	}

	start := 0
	for start < len(clusters) && isBlank(clusters[start]) {
		start++
	}
	end := len(clusters)
	for end > start && isBlank(clusters[end-1]) {
		end--
	}

	return strings.Join(clusters[start:end], "")
}

func isBlank(cluster string) bool {
	return cluster == " " || cluster == "\t"
}
