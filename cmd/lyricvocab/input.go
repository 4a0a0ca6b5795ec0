package main

import (
	"fmt"
	"io"
	"os"

	"lyricvocab/ingest"
)

// readLyrics loads every argument as a lyrics file; no arguments or "-"
// read stdin.
func readLyrics(stdin io.Reader, args []string) ([]ingest.Lyrics, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := make([]ingest.Lyrics, 0, len(args))
	for _, name := range args {
		l, err := readOne(stdin, name)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func readOne(stdin io.Reader, name string) (ingest.Lyrics, error) {
	if name == "-" {
		return ingest.FromReader("stdin", stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return ingest.Lyrics{}, fmt.Errorf("open lyrics: %w", err)
	}
	defer f.Close()
	return ingest.FromReader(name, f)
}
