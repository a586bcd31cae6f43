// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// Status reports how a Driver.Solve call ended, mirroring the external
// minimizer contract's Success/NoSolution outcome.
type Status int

const (
	NoSolution Status = iota
	Success
)

func (st Status) String() string {
	if st == Success {
		return "Success"
	}
	return "NoSolution"
}

// Driver runs a SolverSystem's assembled constraints through a
// BFGS-family minimizer. Unlike the stress-path Driver it is adapted
// from, there is no incremental path to walk: one Solve call drives the
// whole constraint set to (hopefully) zero in a single minimization.
type Driver struct {
	Silent    bool    // do not print iteration/result summaries
	Precision float64 // residual-vector norm at or below which the result counts as Success

	sys    *SolverSystem
	Result *optimize.Result
}

// Init wires sys into the driver and sets a default precision matching
// the system's own tolerance conventions.
func (d *Driver) Init(sys *SolverSystem) {
	d.sys = sys
	if d.Precision == 0 {
		d.Precision = 1e-10
	}
}

// objective sums the squared residual of every constraint at x, writing
// x into the pool's Params first. x and pool.Params always have the same
// length and order: Params is only ever appended to by Build, and the
// minimizer's x vector is sized from len(pool.Params) once, up front.
func (d *Driver) objective(x []float64) float64 {
	copy(d.sys.Pool.Params, x)
	sum := 0.0
	for _, c := range d.sys.Constraints {
		for _, r := range c.Residuals(d.sys.Pool) {
			sum += r * r
		}
	}
	return sum
}

// residualNorm gathers every constraint's residuals into one vector and
// returns its Euclidean norm, the measure Solve checks for convergence.
func (d *Driver) residualNorm() float64 {
	var res []float64
	for _, c := range d.sys.Constraints {
		res = append(res, c.Residuals(d.sys.Pool)...)
	}
	return la.VecNorm(res)
}

// Solve drives sys's constraints to zero via BFGS, starting from the
// pool's current Params values (normally the design-time or
// last-solved positions). It returns Success when the final residual
// vector's norm is within d.Precision of zero.
func (d *Driver) Solve() (Status, error) {
	if len(d.sys.Pool.Params) == 0 {
		return Success, nil // nothing to solve: triangulation alone placed every joint
	}
	x0 := append([]float64(nil), d.sys.Pool.Params...)
	problem := optimize.Problem{
		Func: d.objective,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, d.objective, x, nil)
		},
	}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.BFGS{})
	if err != nil {
		return NoSolution, chk.Err("Solve: BFGS minimization failed: %v", err)
	}
	d.Result = result
	copy(d.sys.Pool.Params, result.X)
	norm := d.residualNorm()

	if !d.Silent {
		io.Pf("solve: %d iterations, objective=%v, |residual|=%v, status=%v\n", result.Iterations, result.F, norm, result.Status)
	}
	if norm <= d.Precision {
		return Success, nil
	}
	return NoSolution, nil
}
