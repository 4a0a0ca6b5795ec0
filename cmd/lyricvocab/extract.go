package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"lyricvocab/config"
	"lyricvocab/logger"
	"lyricvocab/session"
	"lyricvocab/tokenize"
	"lyricvocab/vocab"
)

func newExtractCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract vocabulary from lyrics files or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, state.cfg, args)
		},
	}
}

func runExtract(cmd *cobra.Command, cfg config.Config, args []string) error {
	lyrics, err := readLyrics(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	if cfg.Output.DumpDir != "" {
		if err := logger.InitDumpDir(cfg.Output.DumpDir); err != nil {
			return err
		}
	}

	for _, l := range lyrics {
		rep, err := sess.AddLyrics(cmd.Context(), l)
		if err != nil {
			return err
		}
		if cfg.Output.DumpDir != "" {
			if err := logger.WriteJSON(cfg.Output.DumpDir, l.ID+"_tokens", rep); err != nil {
				slog.Warn("failed to write token dump", "lyrics", l.ID, "error", err)
			}
		}
	}

	if cfg.Output.DumpDir != "" {
		snapshot := map[string]any{
			"session":    sess.ID,
			"history":    sess.History(),
			"vocabulary": sess.Vocabulary().Sorted(),
		}
		if err := logger.WriteJSON(cfg.Output.DumpDir, "vocabulary", snapshot); err != nil {
			slog.Warn("failed to write vocabulary dump", "error", err)
		}
	}

	return render(cmd.OutOrStdout(), sess.Vocabulary(), cfg.Output)
}

func newSession(cfg config.Config) (*session.Session, error) {
	tok, err := tokenize.NewKagome(cfg.Tokenizer.Dict, cfg.Tokenizer.Mode)
	if err != nil {
		return nil, err
	}
	order, err := vocab.ParseOrder(cfg.Vocab.Order)
	if err != nil {
		return nil, err
	}
	set := vocab.NewSet(vocab.WithOrder(order), vocab.WithLogger(slog.Default()))
	slog.Debug("session configured", "dict", tok.Dict(), "mode", cfg.Tokenizer.Mode, "order", order.String())
	return session.New(tok, set, slog.Default()), nil
}
