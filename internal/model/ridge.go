package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solver fits a linear model from a design matrix, a target vector and a
// regularization strength.
type Solver interface {
	Fit(X *mat.Dense, y []float64, lambda float64) ([]float64, error)
}

// RidgeSolver solves regularized least squares in closed form via the
// normal equations (X'X + lambda*I) w = X'y.
type RidgeSolver struct{}

// Fit returns the fitted weight vector, one weight per feature column.
func (RidgeSolver) Fit(X *mat.Dense, y []float64, lambda float64) ([]float64, error) {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("cannot fit on an empty design matrix")
	}
	if rows != len(y) {
		return nil, fmt.Errorf("design matrix has %d rows but %d targets", rows, len(y))
	}
	if lambda < 0 {
		return nil, fmt.Errorf("regularization strength %g is negative", lambda)
	}

	var gram mat.Dense
	gram.Mul(X.T(), X)
	for i := 0; i < cols; i++ {
		gram.Set(i, i, gram.At(i, i)+lambda)
	}

	rhs := mat.NewVecDense(cols, nil)
	rhs.MulVec(X.T(), mat.NewVecDense(rows, y))

	var w mat.VecDense
	if err := w.SolveVec(&gram, rhs); err != nil {
		return nil, fmt.Errorf("ridge solve failed for lambda %g: %w", lambda, err)
	}

	weights := make([]float64, cols)
	for i := 0; i < cols; i++ {
		weights[i] = w.AtVec(i)
	}
	return weights, nil
}

// Model pairs a regularization strength with its fitted weights.
type Model struct {
	Lambda  float64
	Weights []float64
}

// Predict computes X*w, one prediction per row of X.
func (m *Model) Predict(X *mat.Dense) ([]float64, error) {
	rows, cols := X.Dims()
	if cols != len(m.Weights) {
		return nil, fmt.Errorf("design matrix has %d columns but model has %d weights", cols, len(m.Weights))
	}

	out := mat.NewVecDense(rows, nil)
	out.MulVec(X, mat.NewVecDense(len(m.Weights), m.Weights))

	predictions := make([]float64, rows)
	for i := 0; i < rows; i++ {
		predictions[i] = out.AtVec(i)
	}
	return predictions, nil
}
