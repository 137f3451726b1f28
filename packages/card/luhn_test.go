package card

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid_KnownNumbers(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{"visa test number", "4111111111111111", true},
		{"visa wrong check digit", "4111111111111112", false},
		{"amex test number", "378282246310005", true},
		{"discover test number", "6011111111111117", true},
		{"with spaces", "4111 1111 1111 1111", true},
		{"with dashes", "4111-1111-1111-1111", true},
		{"too short", "123", false},
		{"too long", "41111111111111111111", false},
		{"empty", "", false},
		{"letters only", "not a card", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.number))
		})
	}
}

func TestCheckDigit_Completes(t *testing.T) {
	d, err := CheckDigit("411111111111111")
	require.NoError(t, err)
	assert.Equal(t, byte('1'), d)
	assert.True(t, IsValid("411111111111111"+string(d)))
}

func TestCheckDigit_ExactlyOneDigitPasses(t *testing.T) {
	// For any prefix exactly one digit in 0-9 completes a passing checksum.
	for _, length := range []int{14, 18} {
		for trial := 0; trial < 100; trial++ {
			prefix := randomDigits(length)
			passing := 0
			for d := byte('0'); d <= '9'; d++ {
				full := prefix + string(d)
				if luhnSum(full)%10 == 0 {
					passing++
				}
			}
			require.Equal(t, 1, passing, "prefix %s", prefix)

			d, err := CheckDigit(prefix)
			require.NoError(t, err)
			assert.Equal(t, 0, luhnSum(prefix+string(d))%10)
		}
	}
}

func randomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rand.Intn(10))
	}
	return string(b)
}
