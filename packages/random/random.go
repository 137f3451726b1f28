package random

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?"
)

// String returns n random letters (mixed case).
func String(n int) string {
	return fromCharset(n, lowerChars+upperChars)
}

// Alphanumeric returns n random letters and digits.
func Alphanumeric(n int) string {
	return fromCharset(n, lowerChars+upperChars+digitChars)
}

// Digits returns n random decimal digits.
func Digits(n int) string {
	return fromCharset(n, digitChars)
}

// Int returns a random integer in [min, max]. Swapped bounds are corrected.
func Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + rand.Intn(max-min+1)
}

// Pick returns a random element of choices, or the zero value for an
// empty slice.
func Pick[T any](choices []T) T {
	var zero T
	if len(choices) == 0 {
		return zero
	}
	return choices[rand.Intn(len(choices))]
}

// Email returns a random lowercase address under a .com domain.
func Email() string {
	user := fromCharset(8, lowerChars)
	domain := fromCharset(6, lowerChars)
	return fmt.Sprintf("%s@%s.com", user, domain)
}

// UUID returns a random UUID v4 string.
func UUID() string {
	return uuid.New().String()
}

// PhoneNumber substitutes random digits for each '#' in format. Other
// characters pass through, so "+1 (###) ###-####" works as expected.
// An empty format defaults to "###-###-####".
func PhoneNumber(format string) string {
	if format == "" {
		format = "###-###-####"
	}
	var b strings.Builder
	b.Grow(len(format))
	for _, ch := range format {
		if ch == '#' {
			b.WriteByte(digitChars[rand.Intn(10)])
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// PasswordOptions selects the character classes for Password. The zero
// value is not useful; use DefaultPasswordOptions as a base.
type PasswordOptions struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// DefaultPasswordOptions enables every class at 16 characters.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Length: 16, Upper: true, Lower: true, Digits: true, Symbols: true}
}

// Password generates a random password. Each enabled character class is
// guaranteed to appear at least once when the length allows. The only
// error case is an empty character pool (no class enabled).
func Password(opts PasswordOptions) (string, error) {
	if opts.Length <= 0 {
		opts.Length = 16
	}

	var classes []string
	if opts.Lower {
		classes = append(classes, lowerChars)
	}
	if opts.Upper {
		classes = append(classes, upperChars)
	}
	if opts.Digits {
		classes = append(classes, digitChars)
	}
	if opts.Symbols {
		classes = append(classes, symbolChars)
	}
	if len(classes) == 0 {
		return "", errors.New("password: no character classes enabled")
	}

	pool := strings.Join(classes, "")
	out := make([]byte, opts.Length)
	for i := range out {
		out[i] = pool[rand.Intn(len(pool))]
	}

	// Guarantee one character per enabled class, then shuffle so the
	// guaranteed characters are not clustered at the front.
	if opts.Length >= len(classes) {
		for i, class := range classes {
			out[i] = class[rand.Intn(len(class))]
		}
		rand.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return string(out), nil
}

func fromCharset(n int, charset string) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
