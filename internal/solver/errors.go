package solver

import (
	"errors"

	"github.com/piano-ml/piano/internal/objective"
)

// ErrShapeMismatch reports a Gradient or Prox collaborator breaking the
// shape contract. It is objective.ErrShapeMismatch, re-exported so callers
// of this package can match it without importing objective.
var ErrShapeMismatch = objective.ErrShapeMismatch

// ErrDiverged reports that backtracking drove the local Lipschitz estimate
// to a non-finite value. The smooth term does not satisfy the smoothness
// assumptions the method relies on, or Eta/LInit are unusable; the run
// cannot continue.
var ErrDiverged = errors.New("solver: lipschitz estimate grew to a non-finite value")
