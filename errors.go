package askeys

import "errors"

// Sentinel errors. Every failure returned by this package wraps one of these,
// so callers classify with errors.Is and read the detail from the message.
var (
	// ErrMissingColumn reports that a requested key or grouping column does
	// not exist in the source.
	ErrMissingColumn = errors.New("askeys: missing column")

	// ErrInvalidParameter reports a rejected parameter: an unknown output
	// mode, a non-positive batch size or sample count, a sample count larger
	// than the available rows, or a missing key name. Bad values are never
	// silently coerced or clamped.
	ErrInvalidParameter = errors.New("askeys: invalid parameter")

	// ErrIO reports a failed write to the console writer or a partition file.
	ErrIO = errors.New("askeys: io failure")
)
