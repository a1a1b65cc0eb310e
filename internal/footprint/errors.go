package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownCountry indicates the caller supplied a country that is not
// a column of the factor table. This is a caller bug, distinct from a
// known country merely lacking the factor for one activity, and is
// rejected before any aggregation runs.
var ErrUnknownCountry = constError("unknown country")
