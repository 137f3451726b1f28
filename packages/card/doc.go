// Package card generates and validates test-only payment card numbers.
//
// Generated numbers are syntactically valid (correct IIN prefix, length,
// and Luhn check digit) but never correspond to real instruments. Use them
// for form validation tests, fixture data, and payment-flow mocks.
package card
