package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kinetic/internal/logger"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	gallery := &galleryOptions{}

	cmd := &cobra.Command{
		Use:           "kinetic",
		Short:         "Kinetic renders terminal buttons and radios with variant styling and ripple feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the gallery
			if len(args) == 0 {
				return runGallery(cmd, flags, gallery)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatConsole, "Log output format (console or json)")
	gallery.bind(cmd)

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Logs go to the error stream so they
// never mix with rendered output.
func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	var human bool
	switch flags.logFormat {
	case logFormatConsole, "":
		human = true
	case logFormatJSON:
	default:
		return nil, newCommandError("configure logging", "parsing --log-format",
			fmt.Errorf("unknown log format %q", flags.logFormat),
			"Use --log-format console or --log-format json.")
	}

	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: human, Writer: cmd.ErrOrStderr()})
}
