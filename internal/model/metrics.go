package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MSE computes the mean squared error between predictions and targets.
func MSE(predictions, targets []float64) (float64, error) {
	if len(predictions) != len(targets) {
		return 0, fmt.Errorf("got %d predictions for %d targets", len(predictions), len(targets))
	}
	if len(predictions) == 0 {
		return 0, fmt.Errorf("cannot compute error over zero samples")
	}

	distance := floats.Distance(predictions, targets, 2)
	return distance * distance / float64(len(predictions)), nil
}
