package model

// Token is one morpheme produced by a tokenizer. Only WrittenBaseForm and
// KanaBaseForm take part in vocabulary extraction; the rest is carried for
// debugging dumps.
type Token struct {
	Surface         string `json:"surface"`
	WrittenBaseForm string `json:"written_base_form"`
	KanaBaseForm    string `json:"kana_base_form"`
	POS             string `json:"pos,omitempty"`
	Start           int    `json:"start"`
	End             int    `json:"end"`
}

// Entry is a vocabulary item. It is a comparable value: == and map keys use
// exactly (WrittenForm, Reading), which makes it the dedup key as-is.
type Entry struct {
	WrittenForm string `json:"written_form"`
	Reading     string `json:"reading"`
}

// NewEntry maps a token onto the entry it contributes.
func NewEntry(t Token) Entry {
	return Entry{WrittenForm: t.WrittenBaseForm, Reading: t.KanaBaseForm}
}
