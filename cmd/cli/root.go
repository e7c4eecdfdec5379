package main

import (
	"encoding/json"
	"fmt"
	"io"

	"econhub/internal"
	"econhub/internal/errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// cli carries state shared by every command
type cli struct {
	verbose bool
	logger  *internal.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: internal.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:           "econhub-cli",
		Short:         "EconHub CLI for worldviews, share links and forecasts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		c.newWorldviewCmd(),
		c.newSampleCmd(),
		c.newOptionsCmd(),
		c.newShareURLCmd(),
		c.newForecastCmd(),
	)
	return rootCmd
}

// initLogger honours LOG_LEVEL, defaulting to warnings only; --verbose
// forces debug
func (c *cli) initLogger() {
	if c.verbose {
		c.logger = internal.NewLogger(internal.LogLevelDebug)
		return
	}
	c.logger = internal.NewDefaultLogger(internal.LogLevelWarn)
}

// writeFormatted prints v as indented JSON or YAML
func writeFormatted(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}
		return enc.Close()
	default:
		return errors.InvalidInput(fmt.Sprintf("unsupported format %q", format))
	}
}
