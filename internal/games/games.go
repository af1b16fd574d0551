// ABOUTME: JSON I/O for game records, filter lists, and ranking results
// ABOUTME: The only external data format the optimizer speaks, in or out

// Package games reads game records and filter lists from JSON, and writes
// ranking.Result back out the same way.
package games

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/stojg/rankcraft/internal/ranking"
)

// ReadGames loads a JSON array of {"winner": ..., "loser": ...} records
// from path, in file order.
func ReadGames(path string) ([]ranking.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games file: %w", err)
	}

	var out []ranking.Game
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse games file: %w", err)
	}

	for i, g := range out {
		if g.Winner == "" || g.Loser == "" {
			return nil, fmt.Errorf("malformed game record at index %d: winner and loser are both required", i)
		}
		if g.Winner == g.Loser {
			return nil, fmt.Errorf("malformed game record at index %d: winner and loser must differ (%q)", i, g.Winner)
		}
	}

	return out, nil
}

// ReadFilter loads a JSON array of competitor strings from path.
func ReadFilter(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter file: %w", err)
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse filter file: %w", err)
	}

	return out, nil
}

// WriteResult serializes result as indented JSON to path.
func WriteResult(path string, result ranking.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}

	return nil
}

// EncodeResult writes result as indented JSON to an arbitrary writer, for
// callers that want stdout rather than a file (the CLI's default path).
func EncodeResult(w io.Writer, result ranking.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
