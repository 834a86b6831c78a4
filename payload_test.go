package upcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadZeroValue(t *testing.T) {
	var p Payload

	require.Equal(t, StandardUnknown, p.Standard())
	require.Equal(t, 0, p.Len())
	require.Empty(t, p.Digits())

	expected, err := p.ExpectedCheckDigit()
	require.NoError(t, err)
	require.Equal(t, 0, expected)
}

func TestPayloadDigitsReturnsCopy(t *testing.T) {
	p := NewUPCAPayload([11]int{0, 3, 6, 0, 0, 0, 2, 4, 1, 4, 5})

	digits := p.Digits()
	digits[0] = 9

	require.Equal(t, []int{0, 3, 6, 0, 0, 0, 2, 4, 1, 4, 5}, p.Digits())
}

func TestPayloadExpectedCheckDigit(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    int
		wantErr error
	}{
		{
			name:    "UPC-A 036000241457",
			payload: NewUPCAPayload([11]int{0, 3, 6, 0, 0, 0, 2, 4, 1, 4, 5}),
			want:    7,
		},
		{
			name:    "UPC-E 01234565",
			payload: NewUPCEPayload([7]int{0, 1, 2, 3, 4, 5, 6}),
			want:    5,
		},
		{
			name:    "all zeros",
			payload: NewUPCAPayload([11]int{}),
			want:    0,
		},
		{
			name:    "all nines",
			payload: NewUPCAPayload([11]int{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}),
			want:    3,
		},
		{
			name:    "digit above range",
			payload: NewUPCAPayload([11]int{9, 9, 9, 9, 9, 12, 9, 9, 9, 9, 9}),
			wantErr: ErrPayloadDigitOutOfRange,
		},
		{
			name:    "negative digit",
			payload: NewUPCEPayload([7]int{0, 1, -2, 3, 4, 5, 6}),
			wantErr: ErrPayloadDigitOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.payload.ExpectedCheckDigit()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPayloadStandardTagging(t *testing.T) {
	upca := NewUPCAPayload([11]int{})
	upce := NewUPCEPayload([7]int{})

	require.Equal(t, StandardUPCA, upca.Standard())
	require.Equal(t, upca.Len(), StandardUPCA.PayloadDigits())
	require.Equal(t, StandardUPCE, upce.Standard())
	require.Equal(t, upce.Len(), StandardUPCE.PayloadDigits())
}
