// Package upcheck validates UPC-A and UPC-E check digits.
//
// A Code pairs the data digits of a printed code (its Payload) with the
// check digit to verify. Validate applies the standard weighted modulo-10
// algorithm and reports whether the check digit matches; any digit outside
// [0, 9] is rejected with ErrPayloadDigitOutOfRange or
// ErrCheckDigitOutOfRange instead of being computed over.
//
// The package does no I/O and holds no state; values may be validated
// concurrently.
package upcheck
