package upcheck

// Standard represents a UPC symbology.
type Standard int

const (
	StandardUnknown Standard = iota
	StandardUPCA
	StandardUPCE
)

const (
	upcaPayloadDigits = 11
	upcePayloadDigits = 7
)

// String returns the conventional name of the standard.
func (s Standard) String() string {
	switch s {
	case StandardUPCA:
		return "UPC-A"
	case StandardUPCE:
		return "UPC-E"
	default:
		return "unknown"
	}
}

// PayloadDigits returns the number of data digits a code of this standard
// carries, excluding the check digit. Zero for StandardUnknown.
func (s Standard) PayloadDigits() int {
	switch s {
	case StandardUPCA:
		return upcaPayloadDigits
	case StandardUPCE:
		return upcePayloadDigits
	default:
		return 0
	}
}

// CodeDigits returns the full printed length of a code of this standard,
// including the trailing check digit. Zero for StandardUnknown.
func (s Standard) CodeDigits() int {
	if n := s.PayloadDigits(); n > 0 {
		return n + 1
	}
	return 0
}
