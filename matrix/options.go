// SPDX-License-Identifier: MIT

package matrix

// Options configures how a hypergraph is lowered into a matrix.
//
//   - Weighted: entries carry the step cost of the hyperedge (its weight,
//     or one when unweighted) instead of a unit mark. Default false.
//   - KeepLoops: the clique expansion records singleton and repeated
//     co-membership on the diagonal. Default false (zero diagonal).
type Options struct {
	Weighted  bool
	KeepLoops bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the unit-mark, zero-diagonal configuration.
func DefaultOptions() Options {
	return Options{}
}

// NewMatrixOptions folds opts over DefaultOptions.
func NewMatrixOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWeighted makes entries carry step costs.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithKeepLoops fills the adjacency diagonal with the vertex degree.
func WithKeepLoops() Option {
	return func(o *Options) { o.KeepLoops = true }
}
