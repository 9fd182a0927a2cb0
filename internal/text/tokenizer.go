package text

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tebeka/snowball"
)

// Tokenizer normalizes raw review text into lowercase word tokens.
type Tokenizer struct {
	minTokenLen int
	stemmer     *snowball.Stemmer
}

// NewTokenizer creates a tokenizer. When stem is true, tokens are run
// through the English snowball stemmer.
func NewTokenizer(minTokenLen int, stem bool) (*Tokenizer, error) {
	t := &Tokenizer{minTokenLen: minTokenLen}
	if stem {
		stemmer, err := snowball.New("english")
		if err != nil {
			return nil, fmt.Errorf("failed to create stemmer: %w", err)
		}
		t.stemmer = stemmer
	}
	return t, nil
}

// Tokenize splits text into normalized tokens (lowercase words)
func (t *Tokenizer) Tokenize(text string) []string {
	f := func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsNumber(c)
	}
	fields := strings.FieldsFunc(text, f)
	var tokens []string
	for _, field := range fields {
		if len(field) < t.minTokenLen {
			continue
		}
		token := strings.ToLower(field)
		if t.stemmer != nil {
			token = t.stemmer.Stem(token)
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Close releases the stemmer, if one was created.
func (t *Tokenizer) Close() {
	if t.stemmer != nil {
		t.stemmer.Close()
		t.stemmer = nil
	}
}
