package card

import "fmt"

// Card numbers fall between 13 (short Visa) and 19 (some UnionPay) digits.
const (
	minDigits = 13
	maxDigits = 19
)

// IsValid reports whether a number passes the Luhn checksum. Non-digit
// characters (spaces, dashes) are stripped first. Numbers outside the
// 13-19 digit range fail closed. Never panics; empty input returns false.
func IsValid(number string) bool {
	digits := stripNonDigits(number)
	if len(digits) < minDigits || len(digits) > maxDigits {
		return false
	}
	return luhnSum(digits)%10 == 0
}

// luhnSum computes the Luhn checksum over a digit string: traverse right to
// left, double every second digit, subtract 9 from doubled values above 9,
// and sum.
func luhnSum(digits string) int {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

// CheckDigit returns the digit that, appended to partial, makes the full
// sequence pass the Luhn check. Exactly one digit in 0-9 satisfies this for
// any input; the error return exists only to keep the impossible
// fall-through from silently producing a wrong number.
func CheckDigit(partial string) (byte, error) {
	digits := stripNonDigits(partial)
	for d := byte('0'); d <= '9'; d++ {
		if luhnSum(digits+string(d))%10 == 0 {
			return d, nil
		}
	}
	return 0, fmt.Errorf("no luhn check digit for %q", partial)
}
