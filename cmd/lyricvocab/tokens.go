package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"lyricvocab/ingest"
	"lyricvocab/model"
	"lyricvocab/tokenize"
)

type tokenDump struct {
	Lyrics ingest.Lyrics `json:"lyrics"`
	Tokens []model.Token `json:"tokens"`
}

func newTokensCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [files...]",
		Short: "Print the tokenizer output for lyrics as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			lyrics, err := readLyrics(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			tok, err := tokenize.NewKagome(state.cfg.Tokenizer.Dict, state.cfg.Tokenizer.Mode)
			if err != nil {
				return err
			}

			out := make([]tokenDump, 0, len(lyrics))
			for _, l := range lyrics {
				toks, err := tok.Tokenize(cmd.Context(), l.Text)
				if err != nil {
					return err
				}
				out = append(out, tokenDump{Lyrics: l, Tokens: toks})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
