// Copyright 2025 Piano ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/piano-ml/piano/internal/objective"
	"github.com/piano-ml/piano/internal/solver"
)

// Objective is the full set of collaborators for one composite problem:
// smooth value and gradient, nonsmooth value, and proximal map.
type Objective = objective.Objective

// Funcs adapts four first-class functions into an Objective. Nonsmooth
// and ProxMap may be nil, which selects g ≡ 0 with the identity prox.
type Funcs = objective.Funcs

// Config holds the parameters of one optimization run.
type Config = solver.Config

// State is the numeric snapshot of one run, as seen by monitors.
type State = solver.State

// Monitor observes one outer iteration with a deep-copied State.
type Monitor = solver.Monitor

// Option configures a Solver.
type Option = solver.Option

// Result is the outcome of one completed run.
type Result = solver.Result

// Solver runs the nmiPiano method for one objective and configuration.
type Solver = solver.Solver

// Fatal error categories surfaced by Optimize.
var (
	ErrShapeMismatch = solver.ErrShapeMismatch
	ErrDiverged      = solver.ErrDiverged
)

// New validates cfg and builds a Solver for obj.
func New(obj Objective, cfg Config, opts ...Option) (*Solver, error) {
	return solver.New(obj, cfg, opts...)
}

// WithMonitor installs a per-iteration monitoring callback.
func WithMonitor(m Monitor) Option {
	return solver.WithMonitor(m)
}

// WithLogger installs a sink for non-fatal diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return solver.WithLogger(log)
}
