package greenops

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNegativeValue indicates a negative footprint value. Emissions
// cannot be negative.
var ErrNegativeValue = constError("negative carbon value")
