package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zoobzio/utf7"
	"github.com/zoobzio/utf7/convert"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "conv7",
		Short: "Convert between UTF-7 and UTF-8 on standard input and output",
		Long: "Convert between UTF-7 and UTF-8 on standard input and output.\n" +
			"Supported encodings: " + strings.Join(convert.Names(), ", "),
		Args:         cobra.NoArgs,
		RunE:         newRunCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVarP(&input.addBOM, "add-bom", "b", false, "add a BOM if necessary")
	rootCmd.Flags().BoolVarP(&input.clearBOM, "clear-bom", "c", false, "clear a BOM if present")
	rootCmd.MarkFlagsMutuallyExclusive("add-bom", "clear-bom")
	rootCmd.Flags().StringVarP(&input.indirect, "indirect", "e", "", "optional direct characters to escape (UTF-7 output)")
	rootCmd.Flags().StringVarP(&input.from, "from", "f", "utf-7", "input encoding")
	rootCmd.Flags().StringVarP(&input.to, "to", "t", "utf-7", "output encoding")
	rootCmd.Flags().StringVar(&input.configFile, "config", "", "YAML file with default options")
	rootCmd.Flags().IntVar(&input.bufferSize, "buffer-size", convert.DefaultBufferSize, "size of the input and output buffers")
	rootCmd.Flags().StringVar(&input.report, "report", "", "print conversion statistics to stderr (json or yaml)")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}
		if input.configFile != "" {
			if err := input.applyConfigFile(cmd.Flags()); err != nil {
				return err
			}
		}
		cfg, err := input.convertConfig()
		if err != nil {
			return err
		}

		ctx := convert.WithLogger(ctx, log.WithField("cmd", cmd.Name()))
		stats, err := convert.Convert(ctx, cmd.OutOrStdout(), cmd.InOrStdin(), cfg)
		if err != nil {
			var derr *utf7.DecodeError
			if errors.As(err, &derr) {
				return fmt.Errorf("stdin:%d: %w", derr.Line, derr.Err)
			}
			return err
		}
		if input.report != "" {
			return writeReport(cmd.ErrOrStderr(), input.report, stats)
		}
		return nil
	}
}
