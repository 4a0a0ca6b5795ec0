// Package vocab holds the accumulated vocabulary of a session.
package vocab

import (
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"lyricvocab/model"
)

// Set is a collection of unique vocabulary entries. It is safe for
// concurrent use.
type Set struct {
	mu      sync.RWMutex
	entries map[model.Entry]struct{}
	order   Order
	lang    language.Tag
	logger  *slog.Logger
}

// Option configures a Set.
type Option func(*Set)

// WithOrder sets the order used by Sorted and SortedWrittenForms.
func WithOrder(o Order) Option {
	return func(s *Set) { s.order = o }
}

// WithLanguage sets the collation language. Defaults to Japanese.
func WithLanguage(tag language.Tag) Option {
	return func(s *Set) { s.lang = tag }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Set) { s.logger = l }
}

// NewSet returns an empty Set.
func NewSet(opts ...Option) *Set {
	s := &Set{
		entries: make(map[model.Entry]struct{}),
		order:   OrderWritten,
		lang:    language.Japanese,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Add inserts e and reports whether it was new. Duplicates are ignored.
func (s *Set) Add(e model.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[e]; ok {
		return false
	}
	s.entries[e] = struct{}{}
	s.logger.Debug("vocabulary entry added", "written", e.WrittenForm, "reading", e.Reading)
	return true
}

// Remove deletes e and reports whether it was present.
func (s *Set) Remove(e model.Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[e]; !ok {
		return false
	}
	delete(s.entries, e)
	s.logger.Debug("vocabulary entry removed", "written", e.WrittenForm, "reading", e.Reading)
	return true
}

// Contains reports whether e is in the set.
func (s *Set) Contains(e model.Entry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[e]
	return ok
}

// Len returns the number of distinct entries.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// List returns a copy of all entries in no particular order.
func (s *Set) List() []model.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Entry, 0, len(s.entries))
	for e := range s.entries {
		out = append(out, e)
	}
	return out
}

// Sorted returns all entries in collation order.
func (s *Set) Sorted() []model.Entry {
	out := s.List()
	sortEntries(out, s.order, s.lang)
	return out
}

// SortedWrittenForms returns the written forms of all entries in collation
// order. Entries sharing a written form with different readings each
// contribute one element.
func (s *Set) SortedWrittenForms() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, e := range sorted {
		out[i] = e.WrittenForm
	}
	return out
}
