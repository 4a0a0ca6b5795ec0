// Package tokenize adapts the kagome morphological analyzer to the token
// stream consumed by vocabulary extraction.
package tokenize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"lyricvocab/model"
)

// Tokenizer splits raw text into morphological tokens.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

const (
	DictUni = "uni"
	DictIPA = "ipa"

	ModeNormal   = "normal"
	ModeSearch   = "search"
	ModeExtended = "extended"
)

var (
	ErrUnknownDict = errors.New("unknown tokenizer dictionary")
	ErrUnknownMode = errors.New("unknown tokenizer mode")
)

// The embedded dictionaries are large; load each at most once per process.
var (
	uniDict = sync.OnceValue(func() *dict.Dict { return uni.Dict() })
	ipaDict = sync.OnceValue(func() *dict.Dict { return ipa.Dict() })
)

// Kagome is a Tokenizer backed by github.com/ikawaha/kagome.
type Kagome struct {
	t    *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
	dict string
}

// NewKagome builds a kagome tokenizer for the named dictionary (uni|ipa)
// and segmentation mode (normal|search|extended).
func NewKagome(dictName, modeName string) (*Kagome, error) {
	d, name, err := loadDict(dictName)
	if err != nil {
		return nil, err
	}
	mode, err := ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome tokenizer: %w", err)
	}
	return &Kagome{t: t, mode: mode, dict: name}, nil
}

func loadDict(name string) (*dict.Dict, string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DictUni:
		return uniDict(), DictUni, nil
	case DictIPA:
		return ipaDict(), DictIPA, nil
	default:
		return nil, "", fmt.Errorf("%w: %q (expected %s|%s)", ErrUnknownDict, name, DictUni, DictIPA)
	}
}

// ParseMode maps a mode name onto a kagome mode.
func ParseMode(name string) (tokenizer.TokenizeMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ModeNormal:
		return tokenizer.Normal, nil
	case ModeSearch:
		return tokenizer.Search, nil
	case ModeExtended:
		return tokenizer.Extended, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected %s|%s|%s)", ErrUnknownMode, name, ModeNormal, ModeSearch, ModeExtended)
	}
}

// Dict returns the dictionary name the tokenizer was built with.
func (k *Kagome) Dict() string {
	return k.dict
}

// Tokenize analyzes text. Empty text yields no tokens.
func (k *Kagome) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return convertKagomeTokens(k.t.Analyze(text, k.mode), k.dict), nil
}

// UniDic feature columns holding the kana lemma form (lForm) and the
// pronunciation of the base form (pronBase).
const (
	uniLemmaReading = 6
	uniPronBase     = 11
)

// kanaBase returns the dictionary form reading of a token. UniDic carries
// it in the lemma columns; IPADIC only knows the reading of the surface as
// written, so an inflected verb reads as its conjugated stem there.
func kanaBase(kt tokenizer.Token, dictName string) (string, bool) {
	if dictName == DictUni {
		f := kt.Features()
		for _, i := range []int{uniLemmaReading, uniPronBase} {
			if i < len(f) && usable(f[i]) {
				return f[i], true
			}
		}
		return "", false
	}
	r, ok := kt.Reading()
	return r, ok && usable(r)
}

func usable(feature string) bool {
	return feature != "" && feature != "*"
}

// convertKagomeTokens maps kagome tokens onto model tokens. Words missing
// from the dictionary carry no base form or reading; both fall back to the
// surface so downstream extraction always sees complete tokens.
func convertKagomeTokens(ktoks []tokenizer.Token, dictName string) []model.Token {
	out := make([]model.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		base, ok := kt.BaseForm()
		if !ok || !usable(base) {
			base = kt.Surface
		}
		reading, ok := kanaBase(kt, dictName)
		if !ok {
			reading = kt.Surface
		}
		out = append(out, model.Token{
			Surface:         kt.Surface,
			WrittenBaseForm: base,
			KanaBaseForm:    reading,
			POS:             strings.Join(kt.POS(), ","),
			Start:           kt.Start,
			End:             kt.End,
		})
	}
	return out
}
