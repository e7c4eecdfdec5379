package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"econhub/app"
	"econhub/domain/worldview"
	"econhub/internal/errors"

	"github.com/spf13/cobra"
)

// sampleInput is the demo selection covering every factor
var sampleInput = worldview.Input{
	"S": "Egalitarian nomadism",
	"E": "Oceanic archipelago",
	"T": "AI-augmented biotech",
	"G": "Algorithmic direct democracy",
	"C": "Oral epic preservation",
	"I": "Clan-based loyalty",
	"P": "Overcrowded arcologies",
	"K": "Simulated learning loops",
	"R": "Solar superstorms",
	"D": "Communal labor rites",
}

func (c *cli) newWorldviewCmd() *cobra.Command {
	var jsonInput string
	var inputPath string
	var format string
	var freeform bool

	cmd := &cobra.Command{
		Use:   "worldview [FACTOR=VALUE...]",
		Short: "Generate a worldview from factor choices",
		Long: `Generate a complete worldview. Factors without a valid choice take the
first option of their factor.

Choices come from --json, --input (a file, or - for stdin) and FACTOR=VALUE
arguments; arguments win over JSON keys.

Example: econhub-cli worldview S="Caste system" T="Bronze age" --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonInput != "" && inputPath != "" {
				return errors.InvalidInput("--json and --input are mutually exclusive")
			}

			in := worldview.Input{}
			switch {
			case jsonInput != "":
				in = worldview.InputFromJSON([]byte(jsonInput))
			case inputPath != "":
				data, err := readInput(cmd.InOrStdin(), inputPath)
				if err != nil {
					return err
				}
				in = worldview.InputFromJSON(data)
			}
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return errors.InvalidInput(fmt.Sprintf("expected FACTOR=VALUE, got %q", arg))
				}
				in[strings.TrimSpace(key)] = value
			}

			out := cmd.OutOrStdout()
			if freeform {
				if format == "markdown" {
					return errors.InvalidInput("--freeform supports json and yaml output only")
				}
				return writeFormatted(out, format, worldview.GenerateFreeform(in)) //nolint:staticcheck // SA1019
			}

			res := app.NewWorldviewService(c.logger).Resolve(cmd.Context(), in)
			for _, issue := range res.Unrecognized {
				if issue.Suggestion != "" {
					c.logger.Warn("%s=%v is not an option for %s, did you mean %q?", issue.Factor, issue.Value, issue.Factor.Name(), issue.Suggestion)
				}
			}
			if format == "markdown" {
				_, err := io.WriteString(out, res.Worldview.Markdown())
				return err
			}
			return writeFormatted(out, format, res.Worldview)
		},
	}

	cmd.Flags().StringVar(&jsonInput, "json", "", "Choices as a JSON object")
	cmd.Flags().StringVar(&inputPath, "input", "", "Read choices from a JSON file, - for stdin")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml or markdown")
	cmd.Flags().BoolVar(&freeform, "freeform", false, "Accept any value without checking the option table (deprecated)")

	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("input file %s", path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

func (c *cli) newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Generate the worldview for the built-in sample selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeFormatted(cmd.OutOrStdout(), "json", worldview.Generate(sampleInput))
		},
	}
}

func (c *cli) newOptionsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List every factor and its options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeFormatted(cmd.OutOrStdout(), format, app.NewWorldviewService(c.logger).Catalog())
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")

	return cmd
}
