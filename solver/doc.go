// Copyright 2025 Piano ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver provides the nmiPiano inertial proximal-gradient method
// for minimizing composite objectives F(x) = f(x) + g(x).
//
// # Overview
//
// The caller supplies the smooth term f, its gradient, and (optionally)
// the nonsmooth term g through its proximal map; the solver supplies the
// iteration: adaptive local-Lipschitz backtracking, the inertial proximal
// update, and termination.
//
// # Basic Usage
//
//	import (
//	    "context"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/piano-ml/piano/prox"
//	    "github.com/piano-ml/piano/solver"
//	)
//
//	func main() {
//	    l1 := prox.L1{Lambda: 0.1}
//	    obj := solver.Funcs{
//	        Smooth: func(x *mat.Dense) float64 {
//	            // 0.5‖x − b‖²
//	            var d mat.Dense
//	            d.Sub(x, b)
//	            n := mat.Norm(&d, 2)
//	            return 0.5 * n * n
//	        },
//	        SmoothGrad: func(x *mat.Dense) *mat.Dense {
//	            var g mat.Dense
//	            g.Sub(x, b)
//	            return &g
//	        },
//	        Nonsmooth: l1.Value,
//	        ProxMap:   l1.Prox,
//	    }
//
//	    s, err := solver.New(obj, solver.Config{
//	        X0:      mat.NewDense(2, 1, nil),
//	        MaxIter: 500,
//	        Beta:    0.5,
//	        Eta:     1.2,
//	        LInit:   1,
//	        Epsilon: 1e-8,
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    res, err := s.Optimize(context.Background())
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = res.X // minimizer
//	}
//
// # Monitoring
//
// A Monitor receives a deep copy of the iteration state once per outer
// round, before the round updates it:
//
//	s, _ := solver.New(obj, cfg, solver.WithMonitor(func(st solver.State) {
//	    fmt.Println(st.N, st.FVal+st.GVal, st.LN)
//	}))
package solver
