package extract

import "lyricvocab/kana"

// Rejection names the rule that excluded a written form.
type Rejection int

const (
	Kept Rejection = iota
	KanaOnly
	DigitsOnly
	Denylisted
)

func (r Rejection) String() string {
	switch r {
	case Kept:
		return "kept"
	case KanaOnly:
		return "kana-only"
	case DigitsOnly:
		return "digits-only"
	case Denylisted:
		return "denylisted"
	default:
		return "unknown"
	}
}

// denylist holds punctuation, brackets and romanization noise that the
// tokenizer emits as standalone forms.
var denylist = map[string]struct{}{
	"*": {},
	"[": {},
	"]": {},
	"”": {},
	"“": {},
	"）": {},
	"「": {},
	"」": {},
	"『": {},
	"（": {},
	"、": {},
	"。": {},
	"!": {},
	"・": {},
	"F": {},
	"J": {},
	"M": {},

	"\u3000": {}, // ideographic space
}

// Classify reports which rule, if any, rejects the written base form.
// Every rule is a full-string match.
func Classify(form string) Rejection {
	switch {
	case kana.IsKanaOnly(form):
		return KanaOnly
	case kana.IsDigits(form):
		return DigitsOnly
	}
	if _, ok := denylist[form]; ok {
		return Denylisted
	}
	return Kept
}

// Keep reports whether a token with this written base form is vocabulary.
func Keep(form string) bool {
	return Classify(form) == Kept
}
