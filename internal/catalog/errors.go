package catalog

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrPartitionViolated indicates the catalog declaration does not
// partition the activity set: an ID appears in more than one category,
// or the catalog is empty. This is a configuration error surfaced at
// startup, before any computation.
var ErrPartitionViolated = constError("activity catalog partition violated")
