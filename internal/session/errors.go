package session

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNoCountry indicates an operation that requires an active
	// country ran in the country-selection state.
	ErrNoCountry = constError("no country selected")

	// ErrNotConfirmed indicates Calculate ran before the explicit user
	// confirmation.
	ErrNotConfirmed = constError("calculation not confirmed")

	// ErrNegativeQuantity indicates a negative activity quantity.
	ErrNegativeQuantity = constError("quantity must be nonnegative")
)
