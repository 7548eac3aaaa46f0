// Package seed provides the starter notes written on first run.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kwadjo-wusu-ansah/notes/internal/note"
)

//go:embed data.json
var bundled []byte

type document struct {
	Notes []note.Raw `json:"notes"`
}

// Load reads starter notes from path, or the bundled set when path is empty.
// The file holds an object with a "notes" array; anything else yields no
// notes.
func Load(path string) ([]note.Raw, error) {
	data := bundled
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) ([]note.Raw, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if doc.Notes == nil {
		return []note.Raw{}, nil
	}
	return doc.Notes, nil
}
