package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testkit-dev/testkit/packages/random"
)

var randomCountFlag int

var randomCmd = &cobra.Command{
	Use:   "random <generator> [args...]",
	Short: "Generate random test data",
	Long: `Generate random test data by generator name. Arguments after the
name are passed to the generator. Run without arguments to list
generators.

Examples:
  testkit random uuid
  testkit random email --count 10
  testkit random password 24
  testkit random phoneNumber "+1 (###) ###-####"
  testkit random cardNumber amex`,
	RunE: randomCommand,
}

func randomCommand(cmd *cobra.Command, args []string) error {
	registry := random.NewRegistry()

	if len(args) == 0 {
		names := registry.Names()
		sort.Strings(names)
		fmt.Fprintln(cmd.OutOrStdout(), "available generators:")
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
		}
		return nil
	}

	// Build a name(arg, arg) expression from the CLI arguments.
	expr := args[0]
	if !strings.Contains(expr, "(") {
		expr = fmt.Sprintf("%s(%s)", args[0], strings.Join(args[1:], ", "))
	}

	for i := 0; i < randomCountFlag; i++ {
		value, ok := registry.Call(expr)
		if !ok {
			return fmt.Errorf("unknown generator %q (run 'testkit random' for a list)", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func init() {
	randomCmd.Flags().IntVarP(&randomCountFlag, "count", "n", 1, "how many values to generate")
}
