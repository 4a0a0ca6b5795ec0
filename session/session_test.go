package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyricvocab/extract"
	"lyricvocab/ingest"
	"lyricvocab/model"
	"lyricvocab/vocab"
)

// fakeTokenizer splits on spaces; each word is "written/reading".
type fakeTokenizer struct {
	err error
}

func (f fakeTokenizer) Tokenize(_ context.Context, text string) ([]model.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Token
	for _, w := range strings.Fields(text) {
		written, reading, _ := strings.Cut(w, "/")
		out = append(out, model.Token{Surface: written, WrittenBaseForm: written, KanaBaseForm: reading})
	}
	return out, nil
}

func TestSession_AccumulatesAcrossLyrics(t *testing.T) {
	s := New(fakeTokenizer{}, nil, nil)
	ctx := context.Background()

	first, err := s.AddText(ctx, "verse", "夜/ヨル に/ニ 駆ける/カケル 。/。")
	require.NoError(t, err)
	second, err := s.AddText(ctx, "chorus", "夜/ヨル の/ノ 空/ソラ")
	require.NoError(t, err)

	assert.Len(t, first.Tokens, 4)
	assert.Len(t, first.Result.Added, 2)
	assert.Equal(t, []model.Entry{{WrittenForm: "空", Reading: "ソラ"}}, second.Result.Added)
	assert.Equal(t, 3, s.Vocabulary().Len())

	hist := s.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "verse", hist[0].Source)
	assert.Equal(t, first.Lyrics.ID, hist[0].LyricsID)
	assert.Equal(t, 2, hist[1].Candidates)
	assert.Equal(t, 1, hist[1].Added)
}

func TestSession_UsesGivenSet(t *testing.T) {
	set := vocab.NewSet(vocab.WithOrder(vocab.OrderLegacy))
	set.Add(model.Entry{WrittenForm: "歌", Reading: "ウタ"})

	s := New(fakeTokenizer{}, set, nil)
	rep, err := s.AddText(context.Background(), "paste", "歌/ウタ")
	require.NoError(t, err)

	assert.Empty(t, rep.Result.Added)
	assert.Same(t, set, s.Vocabulary())
}

func TestSession_Remove(t *testing.T) {
	s := New(fakeTokenizer{}, nil, nil)
	_, err := s.AddText(context.Background(), "paste", "猫/ネコ 犬/イヌ")
	require.NoError(t, err)

	assert.True(t, s.Remove(model.Entry{WrittenForm: "犬", Reading: "イヌ"}))
	assert.False(t, s.Remove(model.Entry{WrittenForm: "犬", Reading: "イヌ"}))
	assert.Equal(t, []string{"猫"}, s.Vocabulary().SortedWrittenForms())
}

func TestSession_EmptyText(t *testing.T) {
	s := New(fakeTokenizer{}, nil, nil)
	_, err := s.AddText(context.Background(), "paste", "  ")
	require.ErrorIs(t, err, ingest.ErrEmptyLyrics)
	assert.Empty(t, s.History())
}

func TestSession_TokenizerError(t *testing.T) {
	boom := errors.New("boom")
	s := New(fakeTokenizer{err: boom}, nil, nil)

	_, err := s.AddText(context.Background(), "paste", "猫/ネコ")
	require.ErrorIs(t, err, boom)
	assert.Empty(t, s.History())
}

func TestSession_MalformedToken(t *testing.T) {
	s := New(fakeTokenizer{}, nil, nil)

	_, err := s.AddText(context.Background(), "paste", "猫/ネコ 犬")
	require.ErrorIs(t, err, extract.ErrMalformedToken)
	assert.Zero(t, s.Vocabulary().Len())
	assert.Empty(t, s.History())
}
