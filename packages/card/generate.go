package card

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Options configures Generate. The zero value produces a valid Visa number.
type Options struct {
	// Type selects the card network. Defaults to Visa.
	Type Type
	// Invalid skips the Luhn check digit and appends a random digit
	// instead, which may or may not happen to pass.
	Invalid bool
}

// Generate produces a test card number for the given options. The result
// always has the network's fixed digit count; unless Invalid is set, it
// always passes IsValid.
func Generate(opts Options) string {
	info := cardTypes[opts.Type]
	prefix := info.prefixes[rand.Intn(len(info.prefixes))]

	var b strings.Builder
	b.Grow(info.length)
	b.WriteString(prefix)
	for b.Len() < info.length-1 {
		b.WriteByte(randomDigit())
	}

	if opts.Invalid {
		b.WriteByte(randomDigit())
		return b.String()
	}

	d, err := CheckDigit(b.String())
	if err != nil {
		// Unreachable: a Luhn check digit exists for every prefix.
		panic(err)
	}
	b.WriteByte(d)
	return b.String()
}

// CVC produces a random CVC of the network's length (3 digits, 4 for Amex).
func CVC(t Type) string {
	var b strings.Builder
	for i := 0; i < cardTypes[t].cvcLength; i++ {
		b.WriteByte(randomDigit())
	}
	return b.String()
}

// Expiry returns a card-face expiry string (MM/YY) the given number of
// years ahead of now.
func Expiry(yearsAhead int) string {
	exp := time.Now().AddDate(yearsAhead, 0, 0)
	return fmt.Sprintf("%02d/%02d", int(exp.Month()), exp.Year()%100)
}

func randomDigit() byte {
	return byte('0' + rand.Intn(10))
}
