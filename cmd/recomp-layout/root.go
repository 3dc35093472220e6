package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wnxd/mipsrecomp/internal/layout"
)

type options struct {
	format  string
	prefix  string
	output  string
	verbose bool
}

func optionFlagSet(opts *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.StringVarP(&opts.format, "format", "f", string(layout.FormatC), "output format: c or go")
	flags.StringVarP(&opts.prefix, "prefix", "p", "recomp_context", "symbol prefix (package name for go)")
	flags.StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return flags
}

func getRootCommand(fs afero.Fs, stdout io.Writer, logger *logrus.Logger) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "recomp-layout",
		Short: "Emit the recompiler context field offsets",
		Long: `Emit the byte offsets of every register in the recompiler context.

Generated code addresses the context by fixed offset; this writes those
offsets as a C header or a Go constant block.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
			log := logger.WithFields(logrus.Fields{
				"format": opts.format,
				"output": opts.output,
			})

			if opts.output == "-" {
				return render(stdout, opts, log)
			}
			f, err := fs.Create(opts.output)
			if err != nil {
				return err
			}
			err = render(f, opts, log)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return err
		},
	}
	rootCmd.Flags().AddFlagSet(optionFlagSet(opts))
	return rootCmd
}

func render(w io.Writer, opts *options, log logrus.FieldLogger) error {
	if err := layout.Render(w, layout.Format(opts.format), opts.prefix); err != nil {
		return err
	}
	log.Debug("layout written")
	return nil
}
