package bnb

import (
	"context"

	"github.com/katalvlaran/movc/mbe"
	"github.com/katalvlaran/movc/pareto"
)

// Search holds one Branch-and-Bound run's state: a dedicated struct rather
// than recursion-local closures, mirroring the teacher's bbEngine so the
// hot DFS loop's dependencies stay explicit and testable in isolation.
type Search struct {
	cfg config

	engine     *mbe.Engine
	n          int
	assignment []bool
	incumbent  pareto.Set

	steps        int
	lastPctShown float64

	ctx context.Context
}

// New constructs a Search with the given options applied.
func New(opts ...Option) *Search {
	cfg := config{deadlineInterval: defaultDeadlineInterval}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Search{cfg: cfg}
}

// Solve runs the DFS to completion (or until ctx is done) and returns the
// Pareto-optimal front of feasible covers found. An empty Set means the
// instance is infeasible — that is the only failure mode that isn't an
// error. The only error Solve can return is ctx.Err() from an early
// cancellation.
func (s *Search) Solve(ctx context.Context, engine *mbe.Engine) (pareto.Set, error) {
	s.engine = engine
	s.n = engine.Order().Len()
	s.assignment = make([]bool, 0, s.n)
	s.incumbent = pareto.New()
	s.steps = 0
	s.lastPctShown = -1
	s.ctx = ctx

	if seed := s.greedyDescent(); hasFinitePoint(seed) {
		s.incumbent = seed
	}

	s.dfs()

	if err := ctx.Err(); err != nil {
		return s.incumbent, err
	}

	return s.incumbent, nil
}

// dfs explores the current assignment prefix: it prunes via the Mini-
// Bucket lower bound, commits feasible full assignments into the
// incumbent, and otherwise branches 0 then 1 on the next vertex.
func (s *Search) dfs() {
	s.steps++
	if s.cfg.deadlineInterval > 0 && s.steps%s.cfg.deadlineInterval == 0 {
		select {
		case <-s.ctx.Done():
			return
		default:
		}
	}

	s.reportProgress()

	lb, _ := s.engine.CostAt(s.assignment)
	if !s.incumbent.IsEmpty() && s.incumbent.LessEq(lb) {
		return // the incumbent already weakly dominates every possible completion
	}

	if len(s.assignment) == s.n {
		if hasFinitePoint(lb) {
			s.incumbent = s.incumbent.Union(lb)
		}

		return
	}

	for _, v := range [2]bool{false, true} {
		s.assignment = append(s.assignment, v)
		s.dfs()
		s.assignment = s.assignment[:len(s.assignment)-1]

		if err := s.ctx.Err(); err != nil {
			return
		}
	}
}

// reportProgress estimates the search's coverage as a binary fraction of
// the assignment prefix (0-then-1 branching maps naturally onto a binary
// expansion) and fires OnProgress whenever that has advanced by at least
// one percentage point since the last report (the first node visited,
// the root included, always reports).
func (s *Search) reportProgress() {
	if s.cfg.onProgress == nil {
		return
	}

	frac, scale := 0.0, 0.5
	for _, b := range s.assignment {
		if b {
			frac += scale
		}
		scale /= 2
	}
	pct := frac * 100
	if pct-s.lastPctShown >= 1.0 {
		s.lastPctShown = pct
		s.cfg.onProgress(pct)
	}
}

// greedyDescent walks one root-to-leaf path, at each step following the
// Mini-Bucket heuristic's own recommended next value (mbe.Engine.CostAt's
// second return), and evaluates the resulting full assignment exactly.
// This seeds the incumbent before DFS proper begins (spec.md §4.G "State"),
// so the very first branch-and-bound prune already has a real bound to
// compare against instead of an empty Set that prunes nothing.
func (s *Search) greedyDescent() pareto.Set {
	prefix := make([]bool, 0, s.n)
	for len(prefix) < s.n {
		_, recommend := s.engine.CostAt(prefix)
		prefix = append(prefix, recommend)
	}

	leaf, _ := s.engine.CostAt(prefix)

	return leaf
}

func hasFinitePoint(s pareto.Set) bool {
	for _, p := range s.Points() {
		if !p.IsInfinite() {
			return true
		}
	}

	return false
}
