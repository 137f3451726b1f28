package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/testkit-dev/testkit/packages/csv"
	"github.com/testkit-dev/testkit/packages/db"
	"github.com/testkit-dev/testkit/packages/fileutil"
	"github.com/testkit-dev/testkit/packages/jsonutil"
)

var (
	csvDelimiterFlag string
	csvEncodingFlag  string
	csvNoHeadersFlag bool
	csvRulesFlag     string
	csvQueryFlag     string
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Validate, convert, and query CSV files",
}

var csvValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a CSV file against a rules file",
	Long: `Validate a CSV file. Without --rules only well-formedness and row
count are reported. A rules file is YAML:

  columns: [id, name, email]
  minRows: 1
  requiredFields: [email]

Examples:
  testkit csv validate users.csv
  testkit csv validate users.csv --rules users.rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: csvValidateCommand,
}

var csvConvertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Rewrite a CSV file with a different delimiter or encoding",
	Args:  cobra.ExactArgs(2),
	RunE:  csvConvertCommand,
}

var csvFromJSONCmd = &cobra.Command{
	Use:   "from-json <in.json> <out.csv>",
	Short: "Convert a JSON array of objects to CSV",
	Args:  cobra.ExactArgs(2),
	RunE:  csvFromJSONCommand,
}

var csvQueryCmd = &cobra.Command{
	Use:   "query <file>",
	Short: "Load a CSV file into SQLite and run a SQL query",
	Long: `Load a CSV file into an in-memory SQLite table named "t" and run the
query given with --sql.

Example:
  testkit csv query users.csv --sql "SELECT city, COUNT(*) FROM t GROUP BY city"`,
	Args: cobra.ExactArgs(1),
	RunE: csvQueryCommand,
}

// parseOptions builds codec options from flags, falling back to config.
func parseOptions() (csv.ParseOptions, error) {
	opts := csv.DefaultParseOptions()

	delim := csvDelimiterFlag
	if delim == "" {
		delim = cfg.Delimiter
	}
	runes := []rune(delim)
	if len(runes) != 1 {
		return opts, fmt.Errorf("delimiter must be a single character, got %q", delim)
	}
	opts.Delimiter = runes[0]

	if csvEncodingFlag != "" {
		opts.Encoding = csvEncodingFlag
	} else {
		opts.Encoding = cfg.Encoding
	}
	opts.HasHeaders = !(csvNoHeadersFlag || cfg.GetNoHeaders())
	return opts, nil
}

func csvValidateCommand(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions()
	if err != nil {
		return err
	}

	var want csv.Expectations
	if csvRulesFlag != "" {
		data, err := os.ReadFile(csvRulesFlag)
		if err != nil {
			return fmt.Errorf("read rules: %w", err)
		}
		if err := yaml.Unmarshal(data, &want); err != nil {
			return fmt.Errorf("parse rules %s: %w", csvRulesFlag, err)
		}
	}

	result := fileutil.ValidateCSVFile(args[0], opts, want)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d rows, %d columns\n", args[0], result.RowCount, len(result.Columns))
	if result.Valid {
		fmt.Fprintln(out, color.GreenString("valid"))
		return nil
	}
	for _, msg := range result.Errors {
		fmt.Fprintf(out, "  %s %s\n", color.RedString("✗"), msg)
	}
	return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
}

func csvConvertCommand(cmd *cobra.Command, args []string) error {
	inOpts, err := parseOptions()
	if err != nil {
		return err
	}

	table, err := fileutil.ReadCSVFile(args[0], inOpts)
	if err != nil {
		return err
	}

	outOpts := inOpts
	if d, _ := cmd.Flags().GetString("out-delimiter"); d != "" {
		runes := []rune(d)
		if len(runes) != 1 {
			return fmt.Errorf("out-delimiter must be a single character, got %q", d)
		}
		outOpts.Delimiter = runes[0]
	}
	if e, _ := cmd.Flags().GetString("out-encoding"); e != "" {
		outOpts.Encoding = e
	}

	if err := fileutil.WriteCSVFile(args[1], table, outOpts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", table.Len(), args[1])
	return nil
}

func csvFromJSONCommand(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}

	table, err := jsonutil.TableFromJSON(data)
	if err != nil {
		return err
	}

	if err := fileutil.WriteCSVFile(args[1], table, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", table.Len(), args[1])
	return nil
}

func csvQueryCommand(cmd *cobra.Command, args []string) error {
	if csvQueryFlag == "" {
		return fmt.Errorf("--sql is required")
	}

	opts, err := parseOptions()
	if err != nil {
		return err
	}

	table, err := fileutil.ReadCSVFile(args[0], opts)
	if err != nil {
		return err
	}

	client, err := db.Open(":memory:")
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.ImportTable(ctx, "t", table); err != nil {
		return err
	}

	result, err := client.Query(ctx, csvQueryFlag)
	if err != nil {
		return err
	}

	// Results print as CSV so they can be piped onward.
	out := csv.NewTable(result.Columns...)
	for _, row := range result.Rows {
		cells := csv.Row{}
		for _, col := range result.Columns {
			cells[col] = fmt.Sprintf("%v", row[col])
		}
		out.Append(cells)
	}
	fmt.Fprintln(cmd.OutOrStdout(), csv.Stringify(out, csv.DefaultParseOptions()))
	return nil
}

func init() {
	csvCmd.PersistentFlags().StringVarP(&csvDelimiterFlag, "delimiter", "d", "", "field delimiter (single character)")
	csvCmd.PersistentFlags().StringVar(&csvEncodingFlag, "encoding", "", "text encoding (utf-8, utf-16le, iso-8859-1, windows-1252)")
	csvCmd.PersistentFlags().BoolVar(&csvNoHeadersFlag, "no-headers", false, "treat the first line as data")

	csvValidateCmd.Flags().StringVar(&csvRulesFlag, "rules", "", "YAML rules file with validation expectations")
	csvConvertCmd.Flags().String("out-delimiter", "", "delimiter for the output file")
	csvConvertCmd.Flags().String("out-encoding", "", "encoding for the output file")
	csvQueryCmd.Flags().StringVar(&csvQueryFlag, "sql", "", "SQL query to run against table t")

	csvCmd.AddCommand(csvValidateCmd)
	csvCmd.AddCommand(csvConvertCmd)
	csvCmd.AddCommand(csvFromJSONCmd)
	csvCmd.AddCommand(csvQueryCmd)
}
