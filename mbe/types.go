package mbe

import (
	"errors"

	"github.com/katalvlaran/movc/ordering"
	"github.com/katalvlaran/movc/table"
	"github.com/katalvlaran/movc/vcgraph"
)

// ErrMaxVarsTooSmall indicates Build was called with a width bound too
// small to ever hold an elementary two-vertex constraint.
var ErrMaxVarsTooSmall = errors.New("mbe: maxVars must be at least 2")

// defaultCacheCapacity is the evaluation-cache size spec.md §5 calls for
// (~3e5 entries).
const defaultCacheCapacity = 300000

// Bucket holds one vertex's pooled dependencies: Costs are the elementary
// constraints deposited directly from adjacency (spec.md §4.F.1), and
// Heuristics are the reduced tables deposited by eliminating some earlier
// (in elimination order) vertex (spec.md §4.F.2).
type Bucket struct {
	Costs      []*table.Table
	Heuristics []*table.Table
}

// engineConfig holds Build's optional settings, mutated by Option values
// the same way the teacher's builder/options.go pattern validates and
// applies functional options.
type engineConfig struct {
	cacheCapacity int
}

// Option configures an Engine at Build time.
type Option func(*engineConfig)

// WithCacheCapacity overrides the bounded evaluation-cache size (default
// 300000, spec.md §5). Panics if n < 1: a non-positive capacity is a
// caller construction error, not a reachable runtime condition.
func WithCacheCapacity(n int) Option {
	if n < 1 {
		panic("mbe: WithCacheCapacity requires n >= 1")
	}

	return func(c *engineConfig) { c.cacheCapacity = n }
}

// Engine is the compiled Mini-Bucket structure over a graph: a working
// copy whose vertex costs get rescaled by Split, an untouched original
// copy for exact full-assignment evaluation, the elimination order, and
// one Bucket per vertex.
type Engine struct {
	original *vcgraph.Graph
	working  *vcgraph.Graph
	order    ordering.Order
	forward  []string
	elim     []string

	buckets map[string]*Bucket

	costCache *lruCache
	nextCache *lruCache
}

// Order returns the forward elimination order the engine was built with.
func (e *Engine) Order() ordering.Order { return e.order }

// Bucket returns the vertex's compiled bucket, or nil if id is unknown.
func (e *Engine) Bucket(id string) *Bucket { return e.buckets[id] }
