// Copyright 2025 Piano ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package prox provides proximal operators for common convex nonsmooth
// terms: the weighted l1 norm, squared l2 norm, box and nonnegativity
// indicators, and the identity (g ≡ 0).
//
// Each Operator pairs a term's value with its proximal map, ready to plug
// into a solver objective:
//
//	l1 := prox.L1{Lambda: 0.1}
//	obj := solver.Funcs{
//	    Smooth:     f,
//	    SmoothGrad: grad,
//	    Nonsmooth:  l1.Value,
//	    ProxMap:    l1.Prox,
//	}
package prox

import (
	"github.com/piano-ml/piano/internal/prox"
)

// Operator is a convex term g given by its value and its proximal map.
type Operator = prox.Operator

// Identity is the zero term g ≡ 0; its proximal map copies the input.
type Identity = prox.Identity

// L1 is the weighted l1 norm; its proximal map is soft-thresholding.
type L1 = prox.L1

// SquaredL2 is the Tikhonov term (Lambda/2)·‖x‖²; its proximal map is
// uniform shrinkage.
type SquaredL2 = prox.SquaredL2

// Box is the indicator of an elementwise interval constraint; its
// proximal map clamps.
type Box = prox.Box

// NonNegative is the indicator of the nonnegative orthant.
func NonNegative() Box {
	return prox.NonNegative()
}
