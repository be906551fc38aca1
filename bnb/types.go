package bnb

// ProgressFunc is invoked with a 0-100 percentage estimate whenever the
// search's coverage of the assignment tree has advanced by at least one
// percentage point since the previous call.
type ProgressFunc func(percent float64)

// config holds Search's optional settings, applied by functional Options
// the same way the teacher's builder/options.go pattern does.
type config struct {
	onProgress       ProgressFunc
	deadlineInterval int
}

// Option configures a Search at construction time.
type Option func(*config)

// defaultDeadlineInterval mirrors tsp/bb.go's deadlineCheck cadence: the
// context is polled on node entry every 4096 node visits.
const defaultDeadlineInterval = 4096

// WithOnProgress registers a hook fired at ≥1% search-tree granularity.
// Panics if fn is nil: a nil hook is a caller construction error, not a
// reachable runtime condition.
func WithOnProgress(fn ProgressFunc) Option {
	if fn == nil {
		panic("bnb: WithOnProgress requires a non-nil function")
	}

	return func(c *config) { c.onProgress = fn }
}

// WithDeadlineInterval overrides how many node visits elapse between the
// context.Context cancellation polls made on node entry. Panics if n < 1.
func WithDeadlineInterval(n int) Option {
	if n < 1 {
		panic("bnb: WithDeadlineInterval requires n >= 1")
	}

	return func(c *config) { c.deadlineInterval = n }
}
