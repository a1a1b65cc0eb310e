package report

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrIncompleteBundle indicates the bundle is missing the result or
	// comparison and no document can be assembled.
	ErrIncompleteBundle = constError("incomplete report bundle")

	// ErrAssemblyFailed indicates the document could not be written.
	// The computed bundle itself remains valid and re-renderable.
	ErrAssemblyFailed = constError("report assembly failed")
)
