package upcheck

// Code pairs a payload with the check digit to verify against it.
type Code struct {
	Payload    Payload
	CheckDigit int
}

// NewUPCACode builds a Code from a full 12-digit UPC-A code; the trailing
// digit is split off as the check digit.
func NewUPCACode(code [upcaPayloadDigits + 1]int) Code {
	var digits [upcaPayloadDigits]int
	copy(digits[:], code[:upcaPayloadDigits])
	return Code{Payload: NewUPCAPayload(digits), CheckDigit: code[upcaPayloadDigits]}
}

// NewUPCECode builds a Code from a full 8-digit UPC-E code; the trailing
// digit is split off as the check digit.
func NewUPCECode(code [upcePayloadDigits + 1]int) Code {
	var digits [upcePayloadDigits]int
	copy(digits[:], code[:upcePayloadDigits])
	return Code{Payload: NewUPCEPayload(digits), CheckDigit: code[upcePayloadDigits]}
}

// Validate reports whether CheckDigit is the correct checksum for Payload.
//
// Payload digits are range-checked first, in printed order; the first digit
// outside [0, 9] yields ErrPayloadDigitOutOfRange and no checksum is
// computed. A CheckDigit outside [0, 9] then yields ErrCheckDigitOutOfRange.
// With every input in range the result is a definitive boolean.
func (c Code) Validate() (bool, error) {
	if err := c.Payload.validateDigits(); err != nil {
		return false, err
	}
	if !isDigit(c.CheckDigit) {
		return false, ErrCheckDigitOutOfRange
	}
	return c.CheckDigit == (10-checksum(c.Payload.digits))%10, nil
}

// checksum returns the weighted modulo-10 total of the digits. Digits at
// even 0-based indices (the 1st, 3rd, 5th, ... printed digits) carry weight
// 3, the others weight 1.
func checksum(digits []int) int {
	total := 0
	for i, d := range digits {
		if i%2 == 0 {
			total += d * 3
		} else {
			total += d
		}
	}
	return total % 10
}

func isDigit(v int) bool { return v >= 0 && v <= 9 }
