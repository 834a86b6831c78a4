package upcheck

import "errors"

// Validation failure kinds. Both indicate malformed caller input, never an
// internal fault, and are matchable with errors.Is.
var (
	// ErrPayloadDigitOutOfRange reports a payload digit outside [0, 9].
	ErrPayloadDigitOutOfRange = errors.New("upcheck: payload digit out of range [0,9]")

	// ErrCheckDigitOutOfRange reports a check digit outside [0, 9].
	ErrCheckDigitOutOfRange = errors.New("upcheck: check digit out of range [0,9]")
)
