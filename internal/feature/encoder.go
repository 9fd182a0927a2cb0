package feature

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rating-engine/ratings/internal/text"
)

// Encoder turns tokenized records into fixed-length bag-of-words count
// vectors. The final slot always holds the constant bias term 1.
type Encoder struct {
	vocab *text.Vocabulary
}

// NewEncoder creates an encoder over a frozen vocabulary.
func NewEncoder(vocab *text.Vocabulary) *Encoder {
	return &Encoder{vocab: vocab}
}

// Dim returns the feature vector length: vocabulary size plus the bias slot.
func (e *Encoder) Dim() int {
	return e.vocab.Size() + 1
}

// Encode converts one tokenized record to a count vector. Tokens outside
// the vocabulary are ignored.
func (e *Encoder) Encode(tokens []string) []float64 {
	vector := make([]float64, e.Dim())
	for _, token := range tokens {
		if idx, exists := e.vocab.Index[token]; exists {
			vector[idx]++
		}
	}
	vector[e.Dim()-1] = 1
	return vector
}

// EncodeAll builds the design matrix for a batch of tokenized records,
// one encoded row per record.
func (e *Encoder) EncodeAll(docs [][]string) *mat.Dense {
	X := mat.NewDense(len(docs), e.Dim(), nil)
	for i, doc := range docs {
		X.SetRow(i, e.Encode(doc))
	}
	return X
}
