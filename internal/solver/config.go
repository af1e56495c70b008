package solver

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Config holds the parameters of one optimization run. It is read once at
// construction and never mutated afterwards.
type Config struct {
	// X0 is the initial iterate. Every array the run produces keeps X0's
	// dimensions.
	X0 *mat.Dense

	// MaxIter bounds the number of outer iterations. The loop runs
	// MaxIter+1 rounds unless Epsilon stops it earlier.
	MaxIter int

	// Beta is the inertial (momentum) weight, in [0, 1).
	Beta float64

	// Eta is the backtracking growth factor for the Lipschitz estimate,
	// strictly greater than 1.
	Eta float64

	// LInit seeds the local Lipschitz estimate. Values <= 0 leave the
	// estimate unseeded.
	LInit float64

	// BoundL clamps every curvature estimate below by LInit and makes the
	// backtracking seed always the previously accepted estimate.
	BoundL bool

	// Epsilon is the early-stop threshold on the step norm; 0 disables
	// early stopping.
	Epsilon float64
}

func (c *Config) validate() error {
	switch {
	case c.X0 == nil:
		return errors.New("solver: initial iterate X0 is required")
	case c.MaxIter < 0:
		return errors.New("solver: MaxIter must not be negative")
	case c.Beta < 0 || c.Beta >= 1:
		return errors.New("solver: Beta must be in [0, 1)")
	case c.Eta <= 1:
		return errors.New("solver: Eta must be greater than 1")
	case c.Epsilon < 0:
		return errors.New("solver: Epsilon must not be negative")
	}
	return nil
}
