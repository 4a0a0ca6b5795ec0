// Package kana classifies Japanese text by script.
package kana

const (
	hiraganaFirst = 0x3041 // ぁ
	hiraganaLast  = 0x3093 // ん
	katakanaFirst = 0x30A1 // ァ
	katakanaLast  = 0x30F3 // ン
)

// IsKana reports whether r is a basic hiragana or katakana letter.
// Long vowel marks, iteration marks and small ヵヶ are outside these ranges.
func IsKana(r rune) bool {
	return (r >= hiraganaFirst && r <= hiraganaLast) || (r >= katakanaFirst && r <= katakanaLast)
}

// IsKanaOnly reports whether s is non-empty and made of kana letters only.
func IsKanaOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is made of ASCII digits only. The empty string
// counts as digits.
func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsKanji reports whether r is in the CJK Unified Ideographs block.
func IsKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// ContainsKanji reports whether any rune of s is a kanji.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// ToHiragana converts katakana to hiragana, leaving everything else as is.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
