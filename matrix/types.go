// Package matrix defines configuration options and enumerations shared by
// the sparse-matrix constructors in this package.
package matrix

// BuildOptions configures how NewSparseCSCFromTriplets assembles a SparseCSC
// from an unordered list of (row, col, value) triplets.
//   - SortRows:     sort row_idx ascending within each column (required by
//     every CSC invariant in this module; disable only when the caller
//     already supplies triplets in sorted order, as a performance escape
//     hatch).
//   - SumDuplicates: when two triplets target the same (row, col), sum their
//     values instead of treating the second as an error.
//
// Use NewBuildOptions to obtain the default configuration and override it
// with the With* functions.
type BuildOptions struct {
	SortRows      bool
	SumDuplicates bool
}

// BuildOption configures a BuildOptions instance.
type BuildOption func(*BuildOptions)

// WithSortRows returns a BuildOption toggling row-sorting within columns.
func WithSortRows(s bool) BuildOption {
	return func(o *BuildOptions) { o.SortRows = s }
}

// WithSumDuplicates returns a BuildOption toggling duplicate-entry summation.
func WithSumDuplicates(s bool) BuildOption {
	return func(o *BuildOptions) { o.SumDuplicates = s }
}

// NewBuildOptions constructs a BuildOptions with the given overrides applied.
// Defaults: SortRows=true, SumDuplicates=true.
func NewBuildOptions(opts ...BuildOption) BuildOptions {
	bo := BuildOptions{
		SortRows:      true,
		SumDuplicates: true,
	}
	for _, opt := range opts {
		opt(&bo)
	}

	return bo
}
