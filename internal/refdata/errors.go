package refdata

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Load-time failures. Both are fatal for the session: no computation
// may proceed on a store that failed to load.
var (
	// ErrMissingColumn indicates a required column is absent from a
	// reference dataset.
	ErrMissingColumn = constError("required column missing")

	// ErrMalformedData indicates a reference dataset could not be
	// parsed into a usable table.
	ErrMalformedData = constError("malformed reference data")
)
