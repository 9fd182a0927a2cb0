package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rating-engine/ratings/internal/text"
)

func TestBuildVocabularyTopK(t *testing.T) {
	docs := [][]string{
		{"pizza", "pizza", "pizza", "good"},
		{"pizza", "good", "service"},
		{"good", "slow"},
	}

	vocab := text.BuildVocabulary(docs, 2)

	// pizza appears 4 times, good 3 times; service and slow miss the cut
	assert.Equal(t, 2, vocab.Size())
	assert.Equal(t, []string{"pizza", "good"}, vocab.Tokens)
	assert.Equal(t, 0, vocab.Index["pizza"])
	assert.Equal(t, 1, vocab.Index["good"])
}

func TestBuildVocabularyFewerTokensThanK(t *testing.T) {
	docs := [][]string{
		{"only", "three", "words"},
	}

	vocab := text.BuildVocabulary(docs, 1000)

	if vocab.Size() > 1000 {
		t.Errorf("Vocabulary size %d exceeds configured cap", vocab.Size())
	}
	assert.Equal(t, 3, vocab.Size())
}

func TestBuildVocabularyDeterministicTieBreak(t *testing.T) {
	docs := [][]string{
		{"zebra", "apple", "mango"},
	}

	vocab := text.BuildVocabulary(docs, 3)

	// Equal frequencies sort lexicographically
	assert.Equal(t, []string{"apple", "mango", "zebra"}, vocab.Tokens)
}

func TestBuildVocabularyEmptyCorpus(t *testing.T) {
	vocab := text.BuildVocabulary(nil, 10)
	assert.Equal(t, 0, vocab.Size())
}
