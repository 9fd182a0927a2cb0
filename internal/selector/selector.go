package selector

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/rating-engine/ratings/internal/model"
)

// Candidate records the diagnostics for one regularization strength.
type Candidate struct {
	Lambda          float64
	TrainError      float64
	ValidationError float64
}

// Selection is the outcome of a grid search. It is built once and never
// mutated afterwards.
type Selection struct {
	Model           *model.Model
	ValidationError float64
	Candidates      []Candidate
}

// Selector picks the regularization strength with the lowest validation
// error from a fixed candidate grid.
type Selector struct {
	solver model.Solver
	logger *logrus.Entry
}

// New creates a selector backed by the given solver.
func New(solver model.Solver, logger *logrus.Entry) *Selector {
	return &Selector{
		solver: solver,
		logger: logger,
	}
}

// Select fits one model per candidate lambda on the training data and
// scores each on the validation data. The candidate with strictly the
// smallest validation error wins; on exact ties the first one seen is
// kept. The test partition is never visible to this method.
func (s *Selector) Select(trainX *mat.Dense, trainY []float64, validX *mat.Dense, validY []float64, lambdas []float64) (*Selection, error) {
	if len(lambdas) == 0 {
		return nil, fmt.Errorf("candidate grid is empty, no model can be selected")
	}

	var best *model.Model
	bestError := 0.0
	candidates := make([]Candidate, 0, len(lambdas))

	for _, lambda := range lambdas {
		weights, err := s.solver.Fit(trainX, trainY, lambda)
		if err != nil {
			return nil, fmt.Errorf("fit failed for lambda %g: %w", lambda, err)
		}
		m := &model.Model{Lambda: lambda, Weights: weights}

		trainError, err := scoreModel(m, trainX, trainY)
		if err != nil {
			return nil, fmt.Errorf("training score failed for lambda %g: %w", lambda, err)
		}
		validError, err := scoreModel(m, validX, validY)
		if err != nil {
			return nil, fmt.Errorf("validation score failed for lambda %g: %w", lambda, err)
		}

		candidates = append(candidates, Candidate{
			Lambda:          lambda,
			TrainError:      trainError,
			ValidationError: validError,
		})
		s.logger.WithFields(logrus.Fields{
			"lambda":           lambda,
			"train_error":      trainError,
			"validation_error": validError,
		}).Info("Evaluated candidate")

		if best == nil || validError < bestError {
			best = m
			bestError = validError
		}
	}

	return &Selection{
		Model:           best,
		ValidationError: bestError,
		Candidates:      candidates,
	}, nil
}

func scoreModel(m *model.Model, X *mat.Dense, y []float64) (float64, error) {
	predictions, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	return model.MSE(predictions, y)
}
