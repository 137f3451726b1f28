// Package random generates test data: strings, numbers, passwords, phone
// numbers, emails, and person/address values.
//
// Generators can be called directly or by name through a Registry, which
// supports the {{name(args)}} style used in data templates:
//   - uuid(): random UUID v4
//   - email(): random email address
//   - password(length): random password
//   - phoneNumber(format): digits substituted into a # template
//   - cardNumber(type): Luhn-valid test card number
//
// Values are pseudo-random and not cryptographically secure.
package random
