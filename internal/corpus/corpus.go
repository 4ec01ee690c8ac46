// Package corpus loads a small seed corpus for the search engine CLI from
// a TOML descriptor: a list of documents with an id, text, status, and
// ratings, ready to hand to engine.AddDocument.
package corpus

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/devancy/searchengine/engine"
)

// Entry is one document as written in a searchengine.toml seed file.
type Entry struct {
	ID      int    `toml:"id"`
	Text    string `toml:"text"`
	Status  string `toml:"status"`
	Ratings []int  `toml:"ratings"`
}

// file is the top-level shape of a seed corpus document.
type file struct {
	Documents []Entry `toml:"document"`
}

// statusByName maps the TOML status string to an engine.Status, defaulting
// to engine.Actual when the field is omitted.
func statusByName(name string) (engine.Status, error) {
	switch name {
	case "", "ACTUAL":
		return engine.Actual, nil
	case "IRRELEVANT":
		return engine.Irrelevant, nil
	case "BANNED":
		return engine.Banned, nil
	case "REMOVED":
		return engine.Removed, nil
	default:
		return 0, fmt.Errorf("corpus: unknown status %q", name)
	}
}

// Load reads a TOML seed corpus from path and returns its entries.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("corpus: decoding %s: %w", path, err)
	}
	return f.Documents, nil
}

// Populate adds every entry in path to e, in file order. AddDocument's own
// validation (duplicate/negative ids, control bytes) applies unchanged; a
// failure on one entry aborts the whole load rather than leaving the
// engine partially seeded from a bad file.
func Populate(e *engine.Engine, path string) (int, error) {
	entries, err := Load(path)
	if err != nil {
		return 0, err
	}

	statuses := make([]engine.Status, len(entries))
	for i, entry := range entries {
		status, err := statusByName(entry.Status)
		if err != nil {
			return 0, err
		}
		statuses[i] = status
	}

	for i, entry := range entries {
		if err := e.AddDocument(entry.ID, entry.Text, statuses[i], entry.Ratings); err != nil {
			for _, added := range entries[:i] {
				e.RemoveDocument(added.ID)
			}
			return 0, fmt.Errorf("corpus: document %d: %w", entry.ID, err)
		}
	}
	return len(entries), nil
}
