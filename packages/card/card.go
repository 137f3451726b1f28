package card

import (
	"strings"
)

// Type identifies a card network.
type Type int

const (
	Visa Type = iota
	Mastercard
	Amex
	Discover
)

// String returns the lowercase network name.
func (t Type) String() string {
	switch t {
	case Visa:
		return "visa"
	case Mastercard:
		return "mastercard"
	case Amex:
		return "amex"
	case Discover:
		return "discover"
	default:
		return "unknown"
	}
}

// ParseType maps a network name to its Type. Matching is case-insensitive
// and accepts the common aliases. Unknown names return false.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visa":
		return Visa, true
	case "mastercard", "master":
		return Mastercard, true
	case "amex", "american-express", "americanexpress":
		return Amex, true
	case "discover":
		return Discover, true
	default:
		return Visa, false
	}
}

// typeInfo describes a network's IIN prefixes, total digit count, and CVC
// length.
type typeInfo struct {
	prefixes  []string
	length    int
	cvcLength int
}

// cardTypes is the closed set of supported networks. DetectType iterates in
// this order, so more specific prefixes must not be shadowed by earlier
// entries.
var cardTypes = [...]typeInfo{
	Visa:       {prefixes: []string{"4"}, length: 16, cvcLength: 3},
	Mastercard: {prefixes: []string{"51", "52", "53", "54", "55"}, length: 16, cvcLength: 3},
	Amex:       {prefixes: []string{"34", "37"}, length: 15, cvcLength: 4},
	Discover:   {prefixes: []string{"6011", "65"}, length: 16, cvcLength: 3},
}

// Length returns the total number of digits for the network (15 for Amex,
// 16 otherwise).
func (t Type) Length() int {
	return cardTypes[t].length
}

// CVCLength returns the CVC digit count for the network (4 for Amex, 3
// otherwise).
func (t Type) CVCLength() int {
	return cardTypes[t].cvcLength
}

// Types lists all supported networks in detection order.
func Types() []Type {
	return []Type{Visa, Mastercard, Amex, Discover}
}

// DetectType classifies a number by its IIN prefix. Non-digit characters
// are stripped first. Returns false when no network matches.
func DetectType(number string) (Type, bool) {
	digits := stripNonDigits(number)
	if digits == "" {
		return Visa, false
	}
	for _, t := range Types() {
		for _, prefix := range cardTypes[t].prefixes {
			if strings.HasPrefix(digits, prefix) {
				return t, true
			}
		}
	}
	return Visa, false
}

// stripNonDigits removes everything but ASCII digits.
func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
