// Package wordlist loads and validates the word list that feeds the
// similarity matrix. Each input line becomes one Entry; insertion order is
// preserved and is the identity used in the final report (1-based there).
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/surgebase/porter2"
	"golang.org/x/text/cases"

	"github.com/simtools/wordsim/internal/progress"
)

// Input size bounds. Fewer than MinWords makes pairwise comparison
// meaningless; MaxWords bounds the O(N²) comparison stage.
const (
	MinWords = 2
	MaxWords = 500_000
)

// maxLineBytes caps a single input line. The default bufio.Scanner limit of
// 64KB is too small for long phrases pasted from other tools.
const maxLineBytes = 1 << 20

// Entry is one input line. Original keeps the text exactly as read for
// reporting; Normalized is the case-folded (and optionally stemmed) form
// every comparison runs against. Fingerprint is the xxhash of Normalized,
// used by the engine to short-circuit identical strings.
type Entry struct {
	Normalized  string
	Original    string
	Fingerprint uint64
}

// List is an ordered word list. An Entry's index in the List is its identity.
type List []Entry

// Options control how lines are normalized before comparison.
type Options struct {
	// Stem applies Porter2 stemming to each whitespace-separated token of
	// the case-folded line, so inflected forms ("connection", "connected")
	// compare as equal stems.
	Stem bool
}

// Load reads one word or phrase per line from r and returns the validated
// list. It fails with *ValidationError (ErrEmptyLine) on the first
// zero-length line, and with *ValidationError (ErrCountOutOfRange) when the
// final count falls outside [MinWords, MaxWords]. The observer receives one
// increment per line read and never influences the result.
func Load(r io.Reader, opts Options, obs progress.Observer) (List, error) {
	if obs == nil {
		obs = progress.Nop{}
	}
	obs.Start(-1) // line count unknown until EOF
	defer obs.Finish()

	folder := cases.Fold()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words List
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			return nil, &ValidationError{Kind: ErrEmptyLine, Line: lineNo}
		}

		normalized := folder.String(line)
		if opts.Stem {
			normalized = stemTokens(normalized)
		}
		words = append(words, Entry{
			Normalized:  normalized,
			Original:    line,
			Fingerprint: xxhash.Sum64String(normalized),
		})
		obs.Increment(1)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if len(words) < MinWords || len(words) > MaxWords {
		return nil, &ValidationError{
			Kind:  ErrCountOutOfRange,
			Count: len(words),
			Min:   MinWords,
			Max:   MaxWords,
		}
	}
	return words, nil
}

// LoadFile opens path and loads it via Load, wrapping open failures with the
// underlying OS error.
func LoadFile(path string, opts Options, obs progress.Observer) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()

	words, err := Load(f, opts, obs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// stemTokens stems each whitespace-separated token, preserving single-space
// joins. Interior runs of whitespace collapse, which is fine: the result is
// only ever compared against other stemmed lines.
func stemTokens(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = porter2.Stem(f)
	}
	return strings.Join(fields, " ")
}
