// Package extract turns a token stream into vocabulary entries.
package extract

import (
	"errors"
	"fmt"
	"log/slog"

	"lyricvocab/model"
	"lyricvocab/vocab"
)

// ErrMalformedToken is returned when a token that passed the filters has no
// kana base form. Tokenizers must always fill it.
var ErrMalformedToken = errors.New("malformed token")

// ErrNoSet is returned when Extract is given no vocabulary to merge into.
var ErrNoSet = errors.New("nil vocabulary set")

// Result summarizes one extraction call.
type Result struct {
	// Candidates holds every surviving entry once, in first-seen order.
	Candidates []model.Entry
	// Added holds the candidates that were not yet in the set.
	Added []model.Entry
	// Rejected counts tokens dropped by the filters.
	Rejected int
}

// Extractor filters tokens and merges the survivors into a vocab.Set.
type Extractor struct {
	logger *slog.Logger
}

// New returns an Extractor. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract runs the default Extractor.
func Extract(tokens []model.Token, set *vocab.Set) (Result, error) {
	return New(nil).Extract(tokens, set)
}

// Extract filters tokens, maps survivors to entries and adds them to set.
// If any surviving token is malformed, nothing is added.
func (x *Extractor) Extract(tokens []model.Token, set *vocab.Set) (Result, error) {
	if set == nil {
		return Result{}, ErrNoSet
	}
	var res Result
	seen := make(map[model.Entry]struct{}, len(tokens))

	for i, t := range tokens {
		if why := Classify(t.WrittenBaseForm); why != Kept {
			res.Rejected++
			x.logger.Debug("token rejected", "index", i, "form", t.WrittenBaseForm, "rule", why.String())
			continue
		}
		if t.KanaBaseForm == "" {
			return Result{}, fmt.Errorf("%w: token %d (%q) has no kana base form", ErrMalformedToken, i, t.WrittenBaseForm)
		}
		e := model.NewEntry(t)
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		res.Candidates = append(res.Candidates, e)
	}

	for _, e := range res.Candidates {
		if set.Add(e) {
			res.Added = append(res.Added, e)
		}
	}

	x.logger.Debug("extraction finished",
		"tokens", len(tokens),
		"rejected", res.Rejected,
		"candidates", len(res.Candidates),
		"added", len(res.Added),
		"vocabulary", set.Len())
	return res, nil
}
