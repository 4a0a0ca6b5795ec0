// Package ingest turns pasted text or a loaded file into a Lyrics value.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyLyrics is returned for input that is empty after trimming.
var ErrEmptyLyrics = errors.New("empty lyrics")

// Lyrics is one unit of raw text handed to the tokenizer.
type Lyrics struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// FromText trims text and wraps it as Lyrics. source names where the text
// came from, e.g. "paste" or a file name.
func FromText(source, text string) (Lyrics, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(text, "\ufeff"))
	if trimmed == "" {
		return Lyrics{}, fmt.Errorf("%s: %w", source, ErrEmptyLyrics)
	}
	return Lyrics{
		ID:        uuid.NewString(),
		Source:    source,
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// FromReader reads r to the end and wraps its content as Lyrics.
func FromReader(source string, r io.Reader) (Lyrics, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Lyrics{}, fmt.Errorf("read %s: %w", source, err)
	}
	return FromText(source, string(b))
}
