package text

import (
	"sort"
)

// Vocabulary is the ordered set of the most frequent corpus tokens,
// with a mapping from token to its position. Frozen after Build.
type Vocabulary struct {
	Tokens []string
	Index  map[string]int
}

// BuildVocabulary counts token frequency across the tokenized corpus and
// retains the k most frequent tokens. Frequency ties break
// lexicographically so the result is deterministic.
func BuildVocabulary(docs [][]string, k int) *Vocabulary {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, token := range doc {
			counts[token]++
		}
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	if k > 0 && len(tokens) > k {
		tokens = tokens[:k]
	}

	index := make(map[string]int, len(tokens))
	for i, token := range tokens {
		index[token] = i
	}
	return &Vocabulary{Tokens: tokens, Index: index}
}

// Size returns the number of tokens in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.Tokens)
}
