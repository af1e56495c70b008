// Package solver implements nmiPiano, an inertial proximal-gradient
// method for composite objectives F(x) = f(x) + g(x) with a
// differentiable (possibly nonconvex) smooth term f and a convex
// nonsmooth term g known only through its proximal map.
//
// Each outer iteration combines a gradient step on f with an inertial
// term and applies the proximal map of g:
//
//	xₙ₊₁ = prox_{αₙ·g}( xₙ − αₙ·∇f(xₙ) + β·(xₙ − xₙ₋₁) )
//
// The step size αₙ = 2(1−β)/Lₙ is driven by a local Lipschitz estimate
// Lₙ, recalibrated every iteration by backtracking: Lₙ grows by a factor
// Eta until a sufficient-decrease surrogate accepts the candidate step.
package solver

import (
	"context"
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/piano-ml/piano/internal/objective"
)

// Monitor observes one outer iteration. It is invoked synchronously with
// a deep copy of the iteration state, so it may inspect or retain the
// value freely; mutating the copy has no effect on the run.
type Monitor func(State)

// Solver runs the method for one objective and configuration. A Solver is
// stateless between runs; each Optimize call owns its state exclusively.
type Solver struct {
	obj     objective.Objective
	cfg     Config
	monitor Monitor
	log     logrus.FieldLogger
}

// Option configures a Solver.
type Option func(*Solver)

// WithMonitor installs a per-iteration monitoring callback. The default
// is a no-op.
func WithMonitor(m Monitor) Option {
	return func(s *Solver) { s.monitor = m }
}

// WithLogger installs a sink for non-fatal diagnostics (slow backtracking,
// non-finite curvature probes). The default discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Solver) { s.log = log }
}

// nullLogger drops everything; diagnostics are opt-in via WithLogger.
var nullLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// New validates cfg and builds a Solver for obj.
func New(obj objective.Objective, cfg Config, opts ...Option) (*Solver, error) {
	if obj == nil {
		return nil, errors.New("solver: objective is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		obj:     obj,
		cfg:     cfg,
		monitor: func(State) {},
		log:     nullLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Result is the outcome of one completed run.
type Result struct {
	X          *mat.Dense // final iterate
	F          float64    // smooth-term value at X
	Iterations int        // accepted outer iterations
	Converged  bool       // true when the Epsilon early stop fired
}

// initialize builds the iteration state from the configuration: both
// history slots start at X0, objective quantities are evaluated there,
// and the Lipschitz estimate is seeded from LInit and, when the gradient
// is not negligible, refined by a curvature probe driven with a bootstrap
// step size of 0.1.
func (s *Solver) initialize() (*State, error) {
	st := &State{
		X:      cloneDense(s.cfg.X0),
		XPrev:  cloneDense(s.cfg.X0),
		DeltaX: zerosLike(s.cfg.X0),
	}

	st.FVal = s.obj.Value(st.X)
	st.GVal = s.obj.NonsmoothValue(st.X)
	grad := s.obj.Gradient(st.X)
	if err := objective.CheckShape(grad, st.X); err != nil {
		return nil, err
	}
	st.Grad = grad

	st.AlphaN = 0.1
	if s.cfg.LInit > 0 {
		st.LN = s.cfg.LInit
	}
	if gn := mat.Norm(st.Grad, 2); gn*gn > 0.001 {
		l, err := s.estimateL(st)
		if err != nil {
			return nil, err
		}
		st.LN = math.Max(st.LN, l)
	}
	st.AlphaN = 2 * (1 - s.cfg.Beta) / st.LN

	return st, nil
}

// Optimize runs the method to completion and returns the final iterate
// with its smooth-term value. The loop performs MaxIter+1 outer rounds,
// fewer when Epsilon > 0 and the accepted step norm drops below it, or
// when ctx is cancelled.
//
// Fatal conditions (a shape-contract violation by a collaborator, or a
// diverging Lipschitz estimate) abort the run immediately with an error;
// they indicate broken assumptions, not transient faults.
func (s *Solver) Optimize(ctx context.Context) (*Result, error) {
	st, err := s.initialize()
	if err != nil {
		return nil, err
	}

	converged := false
	for t := 0; t <= s.cfg.MaxIter; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The pre-update state is what monitors observe; this is the only
		// way the n=0 state is ever seen by callers.
		s.monitor(st.Clone())

		lSeed, err := s.estimateL(st)
		if err != nil {
			return nil, err
		}
		if !isFinite(lSeed) || s.cfg.BoundL {
			if !s.cfg.BoundL {
				s.log.WithFields(logrus.Fields{
					"iteration": st.N,
					"estimate":  lSeed,
					"previous":  st.LN,
				}).Warn("curvature probe not finite, reusing previous lipschitz estimate")
			}
			lSeed = st.LN
		}

		xCand, err := s.backtrack(st, lSeed)
		if err != nil {
			return nil, err
		}

		st.XPrev = st.X
		st.X = xCand

		st.FVal = s.obj.Value(st.X)
		st.GVal = s.obj.NonsmoothValue(st.X)
		grad := s.obj.Gradient(st.X)
		if err := objective.CheckShape(grad, st.X); err != nil {
			return nil, err
		}
		st.Grad = grad
		st.N++

		if s.cfg.Epsilon > 0 && st.DeltaNorm < s.cfg.Epsilon {
			converged = true
			break
		}
	}

	return &Result{
		X:          st.X,
		F:          st.FVal,
		Iterations: st.N,
		Converged:  converged,
	}, nil
}
