package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testkit-dev/testkit/packages/card"
)

var (
	cardTypeFlag    string
	cardCountFlag   int
	cardInvalidFlag bool
	cardFormatFlag  bool
	cardCVCFlag     bool
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Generate and validate test card numbers",
}

var cardGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate test card numbers",
	Long: `Generate syntactically valid test card numbers.

Examples:
  testkit card generate
  testkit card generate --type amex --count 5
  testkit card generate --invalid
  testkit card generate --format --cvc`,
	RunE: cardGenerateCommand,
}

var cardValidateCmd = &cobra.Command{
	Use:   "validate <number...>",
	Short: "Check numbers against the Luhn checksum",
	Args:  cobra.MinimumNArgs(1),
	RunE:  cardValidateCommand,
}

func cardGenerateCommand(cmd *cobra.Command, args []string) error {
	typeName := cardTypeFlag
	if typeName == "" {
		typeName = cfg.DefaultCardType
	}
	cardType, ok := card.ParseType(typeName)
	if !ok {
		return fmt.Errorf("unknown card type %q (want visa, mastercard, amex, or discover)", typeName)
	}

	for i := 0; i < cardCountFlag; i++ {
		number := card.Generate(card.Options{Type: cardType, Invalid: cardInvalidFlag})
		if cardFormatFlag {
			number = card.Format(number, cardType)
		}
		if cardCVCFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", number, card.CVC(cardType), card.Expiry(3))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), number)
		}
	}
	return nil
}

func cardValidateCommand(cmd *cobra.Command, args []string) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	invalid := 0
	for _, number := range args {
		label := "unknown"
		if t, ok := card.DetectType(number); ok {
			label = t.String()
		}
		if card.IsValid(number) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", pass("valid"), number, label)
		} else {
			invalid++
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", fail("invalid"), number, label)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d numbers failed the Luhn check", invalid, len(args))
	}
	return nil
}

func init() {
	cardGenerateCmd.Flags().StringVarP(&cardTypeFlag, "type", "t", "", "card type: visa, mastercard, amex, discover")
	cardGenerateCmd.Flags().IntVarP(&cardCountFlag, "count", "n", 1, "how many numbers to generate")
	cardGenerateCmd.Flags().BoolVar(&cardInvalidFlag, "invalid", false, "skip the Luhn check digit")
	cardGenerateCmd.Flags().BoolVar(&cardFormatFlag, "format", false, "group digits for display")
	cardGenerateCmd.Flags().BoolVar(&cardCVCFlag, "cvc", false, "also print a CVC and expiry")

	cardCmd.AddCommand(cardGenerateCmd)
	cardCmd.AddCommand(cardValidateCmd)
}
