package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/rating-engine/ratings/internal/config"
	"github.com/rating-engine/ratings/internal/corpus"
	"github.com/rating-engine/ratings/internal/feature"
	"github.com/rating-engine/ratings/internal/model"
	"github.com/rating-engine/ratings/internal/selector"
	"github.com/rating-engine/ratings/internal/split"
	"github.com/rating-engine/ratings/internal/text"
)

// Pipeline orchestrates the end-to-end training run: load the corpus,
// build the vocabulary, encode features, partition, select a model on
// the validation slice and score it once on the test slice.
type Pipeline struct {
	Config    *config.Config
	Logger    *logrus.Entry
	Tokenizer *text.Tokenizer
	Selector  *selector.Selector
}

// Result carries everything a caller needs to report a finished run.
type Result struct {
	VocabSize int
	Records   int
	Selection *selector.Selection
	TestError float64
}

// New wires the pipeline components from config.
func New(cfg *config.Config, logger *logrus.Entry) (*Pipeline, error) {
	if cfg.Features.VocabSize < 1 {
		return nil, fmt.Errorf("vocabulary size %d must be positive", cfg.Features.VocabSize)
	}

	tokenizer, err := text.NewTokenizer(cfg.Features.MinTokenLen, cfg.Features.EnableStemming)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	return &Pipeline{
		Config:    cfg,
		Logger:    logger,
		Tokenizer: tokenizer,
		Selector:  selector.New(model.RidgeSolver{}, logger),
	}, nil
}

// Run loads the configured corpus file and evaluates it.
func (p *Pipeline) Run() (*Result, error) {
	p.Logger.WithField("path", p.Config.Corpus.Path).Info("Loading corpus")
	records, err := corpus.Load(p.Config.Corpus.Path, p.Config.Corpus.Limit)
	if err != nil {
		return nil, err
	}
	return p.Evaluate(records)
}

// Evaluate runs the full train/validation/test procedure over loaded
// records. The test partition is only touched after selection is final.
func (p *Pipeline) Evaluate(records []corpus.Record) (*Result, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to evaluate")
	}
	p.Logger.WithField("records", len(records)).Info("Corpus loaded")

	docs := make([][]string, len(records))
	targets := make([]float64, len(records))
	for i, rec := range records {
		docs[i] = p.Tokenizer.Tokenize(rec.Text)
		targets[i] = float64(rec.Stars)
	}

	vocab := text.BuildVocabulary(docs, p.Config.Features.VocabSize)
	p.Logger.WithField("vocab_size", vocab.Size()).Info("Vocabulary built")
	encoder := feature.NewEncoder(vocab)

	partition, err := split.Split(len(records), p.Config.Split.Seed)
	if err != nil {
		return nil, err
	}
	p.Logger.WithFields(logrus.Fields{
		"train":      len(partition.Train),
		"validation": len(partition.Validation),
		"test":       len(partition.Test),
	}).Info("Partitioned corpus")

	trainX, trainY := encodeSubset(encoder, docs, targets, partition.Train)
	validX, validY := encodeSubset(encoder, docs, targets, partition.Validation)

	sel, err := p.Selector.Select(trainX, trainY, validX, validY, p.Config.Model.LambdaGrid)
	if err != nil {
		return nil, err
	}
	p.Logger.WithFields(logrus.Fields{
		"lambda":           sel.Model.Lambda,
		"validation_error": sel.ValidationError,
	}).Info("Selected model")

	// The one and only look at the held-out slice.
	testX, testY := encodeSubset(encoder, docs, targets, partition.Test)
	testError, err := scoreTest(sel.Model, testX, testY)
	if err != nil {
		return nil, err
	}

	return &Result{
		VocabSize: vocab.Size(),
		Records:   len(records),
		Selection: sel,
		TestError: testError,
	}, nil
}

// Close releases tokenizer resources.
func (p *Pipeline) Close() {
	p.Tokenizer.Close()
}

func encodeSubset(encoder *feature.Encoder, docs [][]string, targets []float64, indices []int) (*mat.Dense, []float64) {
	subset := make([][]string, len(indices))
	y := make([]float64, len(indices))
	for i, idx := range indices {
		subset[i] = docs[idx]
		y[i] = targets[idx]
	}
	return encoder.EncodeAll(subset), y
}

func scoreTest(m *model.Model, X *mat.Dense, y []float64) (float64, error) {
	predictions, err := m.Predict(X)
	if err != nil {
		return 0, fmt.Errorf("test prediction failed: %w", err)
	}
	mse, err := model.MSE(predictions, y)
	if err != nil {
		return 0, fmt.Errorf("test scoring failed: %w", err)
	}
	return mse, nil
}
