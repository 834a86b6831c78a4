package upcheck

// Payload is the digit sequence of a UPC code without its check digit,
// tagged with the standard it belongs to. Payloads are immutable once built.
//
// The zero value is an empty StandardUnknown payload; it is accepted by the
// validator and checksums to an expected check digit of 0.
type Payload struct {
	standard Standard
	digits   []int
}

// NewUPCAPayload builds a UPC-A payload from the 11 data digits of a code,
// in printed order, with the trailing check digit omitted.
func NewUPCAPayload(digits [upcaPayloadDigits]int) Payload {
	return Payload{standard: StandardUPCA, digits: digits[:]}
}

// NewUPCEPayload builds a UPC-E payload from the 7 data digits of a
// compressed code, in printed order, with the trailing check digit omitted.
func NewUPCEPayload(digits [upcePayloadDigits]int) Payload {
	return Payload{standard: StandardUPCE, digits: digits[:]}
}

// Standard reports which symbology the payload belongs to.
func (p Payload) Standard() Standard { return p.standard }

// Len returns the number of payload digits.
func (p Payload) Len() int { return len(p.digits) }

// Digits returns a copy of the payload digits in printed order.
func (p Payload) Digits() []int {
	out := make([]int, len(p.digits))
	copy(out, p.digits)
	return out
}

// ExpectedCheckDigit computes the check digit the payload should carry under
// the weighted modulo-10 algorithm. It fails with ErrPayloadDigitOutOfRange
// if any payload digit is outside [0, 9].
func (p Payload) ExpectedCheckDigit() (int, error) {
	if err := p.validateDigits(); err != nil {
		return 0, err
	}
	return (10 - checksum(p.digits)) % 10, nil
}

// validateDigits range-checks the payload in printed order; the first digit
// outside [0, 9] wins.
func (p Payload) validateDigits() error {
	for _, d := range p.digits {
		if !isDigit(d) {
			return ErrPayloadDigitOutOfRange
		}
	}
	return nil
}
