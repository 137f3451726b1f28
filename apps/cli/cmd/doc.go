// Package cmd implements the testkit CLI commands using Cobra.
//
// Available commands:
//   - card: Generate and validate test card numbers
//   - csv: Validate, convert, and query CSV fixtures
//   - random: Generate random test data by generator name
//   - version: Show testkit version information
//
// Defaults (card type, delimiter, encoding, color) can be set in a
// .testkit.yaml file; flags override config values.
package cmd
