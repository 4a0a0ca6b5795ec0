package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyricvocab/model"
	"lyricvocab/vocab"
)

func tok(written, reading string) model.Token {
	return model.Token{Surface: written, WrittenBaseForm: written, KanaBaseForm: reading}
}

func TestExtract_SentenceKeepsOnlyKanjiWords(t *testing.T) {
	set := vocab.NewSet()
	tokens := []model.Token{
		tok("私", "ワタシ"),
		tok("は", "ハ"),
		tok("学生", "ガクセイ"),
		tok("です", "デス"),
		tok("。", "。"),
	}

	res, err := Extract(tokens, set)
	require.NoError(t, err)

	want := []model.Entry{
		{WrittenForm: "私", Reading: "ワタシ"},
		{WrittenForm: "学生", Reading: "ガクセイ"},
	}
	assert.Equal(t, want, res.Candidates)
	assert.Equal(t, want, res.Added)
	assert.Equal(t, 3, res.Rejected)
	assert.ElementsMatch(t, want, set.List())
}

func TestExtract_RepeatedTokenInOneCall(t *testing.T) {
	set := vocab.NewSet()
	tokens := []model.Token{tok("猫", "ねこ"), tok("が", "が"), tok("猫", "ねこ")}

	res, err := Extract(tokens, set)
	require.NoError(t, err)

	assert.Len(t, res.Candidates, 1)
	assert.Len(t, res.Added, 1)
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(model.Entry{WrittenForm: "猫", Reading: "ねこ"}))
}

func TestExtract_IsIdempotent(t *testing.T) {
	tokens := []model.Token{
		tok("空", "ソラ"),
		tok("の", "ノ"),
		tok("青", "アオ"),
		tok("空", "ソラ"),
		tok("2024", "2024"),
	}

	once := vocab.NewSet()
	_, err := Extract(tokens, once)
	require.NoError(t, err)

	twice := vocab.NewSet()
	_, err = Extract(tokens, twice)
	require.NoError(t, err)
	res, err := Extract(tokens, twice)
	require.NoError(t, err)

	assert.ElementsMatch(t, once.List(), twice.List())
	assert.Empty(t, res.Added)
	assert.Len(t, res.Candidates, 2)
}

func TestExtract_AccumulatesAcrossCalls(t *testing.T) {
	set := vocab.NewSet()

	first, err := Extract([]model.Token{tok("夜", "ヨル"), tok("星", "ホシ"), tok("月", "ツキ")}, set)
	require.NoError(t, err)
	second, err := Extract([]model.Token{tok("月", "ツキ"), tok("雨", "アメ")}, set)
	require.NoError(t, err)

	assert.Len(t, first.Added, 3)
	assert.Len(t, second.Candidates, 2)
	assert.Equal(t, []model.Entry{{WrittenForm: "雨", Reading: "アメ"}}, second.Added)
	// 3 + 2 unique survivors, minus the one cross-call duplicate.
	assert.Equal(t, 4, set.Len())
}

func TestExtract_DigitsAndLatin(t *testing.T) {
	set := vocab.NewSet()

	res, err := Extract([]model.Token{tok("123", "123"), tok("Xyz", "Xyz")}, set)
	require.NoError(t, err)

	assert.Equal(t, []model.Entry{{WrittenForm: "Xyz", Reading: "Xyz"}}, res.Candidates)
	assert.Equal(t, 1, res.Rejected)
}

func TestExtract_EveryDenylistedFormIsDropped(t *testing.T) {
	forms := []string{
		"*", "[", "]", "　", "”", "“", "）", "「", "」", "『", "（", "、", "。", "!", "・",
		"F", "J", "M",
		"", "0", "42",
		"は", "です", "ネコ", "ひらカタ",
	}
	tokens := make([]model.Token, 0, len(forms))
	for _, f := range forms {
		tokens = append(tokens, tok(f, "x"))
	}

	set := vocab.NewSet()
	res, err := Extract(tokens, set)
	require.NoError(t, err)

	assert.Empty(t, res.Candidates)
	assert.Equal(t, len(forms), res.Rejected)
	assert.Zero(t, set.Len())
}

func TestExtract_MalformedTokenLeavesSetUntouched(t *testing.T) {
	set := vocab.NewSet()
	set.Add(model.Entry{WrittenForm: "歌", Reading: "ウタ"})

	_, err := Extract([]model.Token{tok("夢", "ユメ"), tok("花", "")}, set)
	require.ErrorIs(t, err, ErrMalformedToken)
	assert.Contains(t, err.Error(), "token 1")

	assert.Equal(t, 1, set.Len())
	assert.False(t, set.Contains(model.Entry{WrittenForm: "夢", Reading: "ユメ"}))
}

func TestExtract_NilSet(t *testing.T) {
	res, err := Extract([]model.Token{tok("夢", "ユメ")}, nil)
	require.ErrorIs(t, err, ErrNoSet)
	assert.Empty(t, res.Candidates)
}

func TestExtract_MissingReadingOnRejectedTokenIsIgnored(t *testing.T) {
	set := vocab.NewSet()

	res, err := Extract([]model.Token{tok("。", ""), tok("", "")}, set)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rejected)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		form string
		want Rejection
	}{
		{"学生", Kept},
		{"食べる", Kept},
		{"Xyz", Kept},
		{"ラーメン", Kept},
		{"』", Kept},
		{"FJ", Kept},
		{"f", Kept},
		{"１２３", Kept},
		{"です", KanaOnly},
		{"カタカナ", KanaOnly},
		{"", DigitsOnly},
		{"123", DigitsOnly},
		{"。", Denylisted},
		{"　", Denylisted},
		{"M", Denylisted},
	}
	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.form))
			assert.Equal(t, tt.want == Kept, Keep(tt.form))
		})
	}
}
