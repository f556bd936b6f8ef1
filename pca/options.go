// SPDX-License-Identifier: MIT

// Package pca: functional configuration of the pipeline.
// This file defines:
//   - policy enums (ZeroStdPolicy, Solver, SignPolicy) with string forms,
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which resolves the effective configuration.
//
// k is NOT an option: it is a required positional argument of Fit/Run/Select.
package pca

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// ZeroStdPolicy selects the Standardizer's behaviour for a constant feature.
type ZeroStdPolicy int

const (
	// ZeroStdError fails with *DegenerateFeatureError.
	ZeroStdError ZeroStdPolicy = iota
	// ZeroStdEpsilon divides by StdEpsilon instead; the column becomes ~0.
	ZeroStdEpsilon
)

func (p ZeroStdPolicy) String() string {
	switch p {
	case ZeroStdError:
		return "error"
	case ZeroStdEpsilon:
		return "epsilon-substitute"
	default:
		return fmt.Sprintf("ZeroStdPolicy(%d)", int(p))
	}
}

// ParseZeroStdPolicy accepts "error" or "epsilon-substitute" ("epsilon" as shorthand).
func ParseZeroStdPolicy(s string) (ZeroStdPolicy, error) {
	switch s {
	case "error":
		return ZeroStdError, nil
	case "epsilon-substitute", "epsilon":
		return ZeroStdEpsilon, nil
	}

	return 0, fmt.Errorf("pca: unknown zero-std policy %q", s)
}

// Solver selects the eigendecomposition backend.
type Solver int

const (
	// SolverJacobi runs classical Jacobi rotations (matrix.Eigen).
	SolverJacobi Solver = iota
	// SolverGonum delegates to gonum's symmetric eigensolver (mat.EigenSym).
	SolverGonum
)

func (s Solver) String() string {
	switch s {
	case SolverJacobi:
		return "jacobi"
	case SolverGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver accepts "jacobi" or "gonum".
func ParseSolver(s string) (Solver, error) {
	switch s {
	case "jacobi":
		return SolverJacobi, nil
	case "gonum":
		return SolverGonum, nil
	}

	return 0, fmt.Errorf("pca: unknown solver %q", s)
}

// SignPolicy controls how the per-eigenvector sign ambiguity is reported.
type SignPolicy int

const (
	// SignAsSolved keeps each eigenvector exactly as the solver produced it.
	SignAsSolved SignPolicy = iota
	// SignCanonical flips each eigenvector so its largest-magnitude loading is
	// positive and records the flip in Eigensystem.Flipped.
	SignCanonical
)

func (p SignPolicy) String() string {
	switch p {
	case SignAsSolved:
		return "as-solved"
	case SignCanonical:
		return "canonical"
	default:
		return fmt.Sprintf("SignPolicy(%d)", int(p))
	}
}

// ParseSignPolicy accepts "as-solved" or "canonical".
func ParseSignPolicy(s string) (SignPolicy, error) {
	switch s {
	case "as-solved":
		return SignAsSolved, nil
	case "canonical":
		return SignCanonical, nil
	}

	return 0, fmt.Errorf("pca: unknown sign policy %q", s)
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStandardize applies the Standardizer stage.
	DefaultStandardize = true

	// DefaultZeroStdPolicy fails on constant features.
	DefaultZeroStdPolicy = ZeroStdError

	// DefaultStdEpsilon is the substitute denominator under ZeroStdEpsilon.
	DefaultStdEpsilon = 1e-8

	// DefaultSolver is the Jacobi eigensolver.
	DefaultSolver = SolverJacobi

	// DefaultTolerance is the Jacobi off-diagonal threshold, relative to the
	// largest absolute covariance entry (1 for an all-zero covariance).
	DefaultTolerance = 1e-12

	// DefaultSymmetryTolerance bounds |C[i,j] − C[j,i]| accepted by
	// Eigendecompose, relative like DefaultTolerance.
	DefaultSymmetryTolerance = 1e-9

	// DefaultMaxIterations = 0 means "derive from d": max(100, 32·d²) rotations.
	DefaultMaxIterations = 0

	// DefaultSignPolicy reports vectors as solved.
	DefaultSignPolicy = SignAsSolved

	// DegenerateStdTolerance: besides exactly constant columns, std ≤
	// DegenerateStdTolerance·|mean| counts as zero (spread lost in round-off).
	DegenerateStdTolerance = 1e-12
)

const (
	panicStdEpsilon    = "pca: WithStdEpsilon: eps must be finite and > 0"
	panicTolerance     = "pca: WithTolerance: tol must be finite and > 0"
	panicMaxIterations = "pca: WithMaxIterations: n must be >= 0"
	panicZeroStd       = "pca: WithZeroStdPolicy: unknown policy"
	panicSolver        = "pca: WithSolver: unknown solver"
	panicSignPolicy    = "pca: WithSignPolicy: unknown policy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	standardize bool
	zeroStd     ZeroStdPolicy
	stdEps      float64
	solver      Solver
	tol         float64
	maxIter     int
	sign        SignPolicy
	logger      *slog.Logger
}

// WithStandardization toggles the Standardizer stage. When disabled the
// stage only centers columns and reports std = 1.
func WithStandardization(on bool) Option {
	return func(o *Options) { o.standardize = on }
}

// WithoutStandardization is shorthand for WithStandardization(false).
func WithoutStandardization() Option { return WithStandardization(false) }

// WithZeroStdPolicy selects the behaviour for zero-variance features.
func WithZeroStdPolicy(p ZeroStdPolicy) Option {
	if p != ZeroStdError && p != ZeroStdEpsilon {
		panic(panicZeroStd)
	}

	return func(o *Options) { o.zeroStd = p }
}

// WithStdEpsilon sets the substitute denominator used under ZeroStdEpsilon.
func WithStdEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicStdEpsilon)
	}

	return func(o *Options) { o.stdEps = eps }
}

// WithSolver selects the eigensolver backend.
func WithSolver(s Solver) Option {
	if s != SolverJacobi && s != SolverGonum {
		panic(panicSolver)
	}

	return func(o *Options) { o.solver = s }
}

// WithTolerance sets the relative Jacobi convergence threshold.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolerance)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps Jacobi rotations; 0 restores the d-derived default.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSignPolicy selects how eigenvector signs are reported.
func WithSignPolicy(p SignPolicy) Option {
	if p != SignAsSolved && p != SignCanonical {
		panic(panicSignPolicy)
	}

	return func(o *Options) { o.sign = p }
}

// WithLogger routes stage-level Debug records to l. A nil l keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() Options {
	return Options{
		standardize: DefaultStandardize,
		zeroStd:     DefaultZeroStdPolicy,
		stdEps:      DefaultStdEpsilon,
		solver:      DefaultSolver,
		tol:         DefaultTolerance,
		maxIter:     DefaultMaxIterations,
		sign:        DefaultSignPolicy,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies user options in order over the defaults; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// maxIterationsFor resolves the rotation budget for a d×d problem.
func (o Options) maxIterationsFor(d int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}

	return max(100, 32*d*d)
}
