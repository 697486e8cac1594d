// Package catalog loads the seed songs a fresh session preloads into the
// engine. The engine itself never reads files; this package is the
// external collaborator that turns a JSON catalog into AddSong calls.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Song is one entry in a seed catalog file.
type Song struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Likes     int    `json:"likes"`
	PlayCount int    `json:"play_count"`
}

// Load reads a JSON array of Song from path.
func Load(path string) ([]Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var songs []Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return songs, nil
}

// SessionID returns a fresh correlation ID for a single engine run. The
// TUI shows it in its status line and header and stamps it onto the
// snapshot it saves.
func SessionID() string {
	return uuid.NewString()
}
