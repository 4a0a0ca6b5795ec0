// Package session holds the state of one vocabulary-building run: the
// tokenizer, the accumulated vocabulary and what has been processed so far.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"lyricvocab/extract"
	"lyricvocab/ingest"
	"lyricvocab/model"
	"lyricvocab/tokenize"
	"lyricvocab/vocab"
)

// Report describes the outcome of processing one Lyrics.
type Report struct {
	Lyrics ingest.Lyrics  `json:"lyrics"`
	Tokens []model.Token  `json:"tokens"`
	Result extract.Result `json:"-"`
}

// HistoryItem is the summary kept for every processed Lyrics.
type HistoryItem struct {
	LyricsID   string `json:"lyrics_id"`
	Source     string `json:"source"`
	Tokens     int    `json:"tokens"`
	Candidates int    `json:"candidates"`
	Added      int    `json:"added"`
}

// Session accumulates the vocabulary of every lyrics added to it.
type Session struct {
	ID string

	tok       tokenize.Tokenizer
	set       *vocab.Set
	extractor *extract.Extractor
	logger    *slog.Logger

	mu      sync.Mutex
	history []HistoryItem
}

// New starts a session around set. A nil set starts from an empty one and a
// nil logger uses slog.Default.
func New(tok tokenize.Tokenizer, set *vocab.Set, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if set == nil {
		set = vocab.NewSet(vocab.WithLogger(logger))
	}
	id := uuid.NewString()
	logger = logger.With("session", id)
	return &Session{
		ID:        id,
		tok:       tok,
		set:       set,
		extractor: extract.New(logger),
		logger:    logger,
	}
}

// AddLyrics tokenizes l and merges its vocabulary into the session.
func (s *Session) AddLyrics(ctx context.Context, l ingest.Lyrics) (Report, error) {
	tokens, err := s.tok.Tokenize(ctx, l.Text)
	if err != nil {
		return Report{}, fmt.Errorf("tokenize %s: %w", l.Source, err)
	}

	// Serialize whole extractions so history order matches set growth.
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.extractor.Extract(tokens, s.set)
	if err != nil {
		return Report{}, fmt.Errorf("extract %s: %w", l.Source, err)
	}
	s.history = append(s.history, HistoryItem{
		LyricsID:   l.ID,
		Source:     l.Source,
		Tokens:     len(tokens),
		Candidates: len(res.Candidates),
		Added:      len(res.Added),
	})

	s.logger.Info("lyrics processed",
		"lyrics", l.ID,
		"source", l.Source,
		"tokens", len(tokens),
		"added", len(res.Added),
		"vocabulary", s.set.Len())

	return Report{Lyrics: l, Tokens: tokens, Result: res}, nil
}

// AddText ingests pasted text and processes it.
func (s *Session) AddText(ctx context.Context, source, text string) (Report, error) {
	l, err := ingest.FromText(source, text)
	if err != nil {
		return Report{}, err
	}
	return s.AddLyrics(ctx, l)
}

// Remove deletes an entry from the session vocabulary, e.g. when the user
// discards a wrong word.
func (s *Session) Remove(e model.Entry) bool {
	removed := s.set.Remove(e)
	if removed {
		s.logger.Info("vocabulary entry removed", "written", e.WrittenForm, "reading", e.Reading)
	}
	return removed
}

// Vocabulary returns the session's vocabulary set.
func (s *Session) Vocabulary() *vocab.Set {
	return s.set
}

// History returns a copy of the per-lyrics summaries in processing order.
func (s *Session) History() []HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryItem, len(s.history))
	copy(out, s.history)
	return out
}
