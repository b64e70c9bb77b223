// SPDX-License-Identifier: MIT

package calculus

import (
	"errors"
	"fmt"
	"math"
)

// Defaults for the sampling schedule and the integrators.
const (
	DefaultH0         = 0.1 // first step of the derivative/limit schedule
	DefaultSteps      = 6   // h_0 .. h_5
	DefaultIntervals  = 400 // Simpson subintervals (even)
	DefaultGaussOrder = 32  // Gauss–Legendre nodes
)

var (
	// ErrNoResult means no usable approximation could be produced.
	ErrNoResult = errors.New("calculus: no result")

	// ErrEqualBounds is returned when an integral's bounds coincide.
	ErrEqualBounds = errors.New("calculus: integration bounds are equal")

	// ErrInvalidPoint marks a NaN or ±Inf sample point or bound.
	ErrInvalidPoint = errors.New("calculus: point must be finite")

	// ErrInvalidOptions marks a schedule or integrator setting out of range.
	ErrInvalidOptions = errors.New("calculus: invalid options")
)

// Evaluator is anything that can be evaluated at a real point.
// expr.Func satisfies it.
type Evaluator interface {
	Eval(x float64) (float64, error)
}

// Options configures the step schedule and the integrators.
// A nil *Options means DefaultOptions().
type Options struct {
	H0         float64 // first step size, > 0
	Steps      int     // number of step sizes, ≥ 1
	Intervals  int     // Simpson subintervals, even and ≥ 2
	GaussOrder int     // Gauss–Legendre nodes, ≥ 1
}

// DefaultOptions returns the schedule used by the calculator pages.
func DefaultOptions() *Options {
	return &Options{
		H0:         DefaultH0,
		Steps:      DefaultSteps,
		Intervals:  DefaultIntervals,
		GaussOrder: DefaultGaussOrder,
	}
}

// resolve returns opts or the defaults; zero fields fall back to defaults.
func resolve(opts *Options) Options {
	o := *DefaultOptions()
	if opts == nil {
		return o
	}
	if opts.H0 != 0 {
		o.H0 = opts.H0
	}
	if opts.Steps != 0 {
		o.Steps = opts.Steps
	}
	if opts.Intervals != 0 {
		o.Intervals = opts.Intervals
	}
	if opts.GaussOrder != 0 {
		o.GaussOrder = opts.GaussOrder
	}

	return o
}

// validateSchedule checks the derivative/limit settings.
func (o Options) validateSchedule() error {
	if !isFinite(o.H0) || o.H0 <= 0 {
		return fmt.Errorf("H0=%v: %w", o.H0, ErrInvalidOptions)
	}
	if o.Steps < 1 {
		return fmt.Errorf("Steps=%d: %w", o.Steps, ErrInvalidOptions)
	}

	return nil
}

// step returns h_i = H0 / 10^i.
func (o Options) step(i int) float64 {
	return o.H0 / math.Pow(10, float64(i))
}

// Side selects which side(s) of the target point a limit is sampled from.
type Side int

const (
	// Both samples a−h and a+h.
	Both Side = iota
	// Left samples a−h only.
	Left
	// Right samples a+h only.
	Right
)

// String returns "both", "left" or "right".
func (s Side) String() string {
	switch s {
	case Both:
		return "both"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide maps "both", "left" or "right" (and "" as both) to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "", "both":
		return Both, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Both, fmt.Errorf("side %q: %w", s, ErrInvalidOptions)
	}
}

// DerivativeRow is one successfully evaluated step of the schedule.
type DerivativeRow struct {
	H      float64 `json:"h"`
	Approx float64 `json:"approx"`
}

// DerivativeResult holds the convergence table and the final estimate.
type DerivativeResult struct {
	Point  float64         `json:"point"`
	Rows   []DerivativeRow `json:"rows"`
	Approx float64         `json:"approx"` // row with the smallest h
}

// LimitRow is one step of the schedule. A side that did not evaluate
// finitely is nil.
type LimitRow struct {
	H     float64  `json:"h"`
	Left  *float64 `json:"left,omitempty"`
	Right *float64 `json:"right,omitempty"`
}

// LimitResult holds the sampled rows and the per-side and combined estimates.
// Approx is nil for Both when only one side produced a value.
type LimitResult struct {
	Point  float64    `json:"point"`
	Side   Side       `json:"-"`
	Rows   []LimitRow `json:"rows"`
	Left   *float64   `json:"left,omitempty"`
	Right  *float64   `json:"right,omitempty"`
	Approx *float64   `json:"approx,omitempty"`
}

// IntegralResult describes a completed quadrature.
type IntegralResult struct {
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Intervals int     `json:"intervals"` // subintervals (Simpson) or nodes (Gauss)
	Value     float64 `json:"value"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
