package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"lyricvocab/config"
	"lyricvocab/kana"
	"lyricvocab/model"
	"lyricvocab/vocab"
)

// render writes the vocabulary in the configured format. list prints the
// sorted written forms only; the other formats include readings.
func render(w io.Writer, set *vocab.Set, out config.OutputConfig) error {
	switch strings.ToLower(out.Format) {
	case config.FormatList:
		for _, form := range set.SortedWrittenForms() {
			if _, err := fmt.Fprintln(w, form); err != nil {
				return err
			}
		}
		return nil
	case config.FormatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, "WRITTEN\tREADING"); err != nil {
			return err
		}
		for _, e := range readings(set.Sorted(), out.Hiragana) {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", e.WrittenForm, e.Reading); err != nil {
				return err
			}
		}
		return tw.Flush()
	case config.FormatTSV:
		for _, e := range readings(set.Sorted(), out.Hiragana) {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", e.WrittenForm, e.Reading); err != nil {
				return err
			}
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(readings(set.Sorted(), out.Hiragana))
	default:
		return fmt.Errorf("invalid output format %q", out.Format)
	}
}

func readings(entries []model.Entry, hiragana bool) []model.Entry {
	if !hiragana {
		return entries
	}
	out := make([]model.Entry, len(entries))
	for i, e := range entries {
		out[i] = model.Entry{WrittenForm: e.WrittenForm, Reading: kana.ToHiragana(e.Reading)}
	}
	return out
}
