package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipp01105/stamplog/logger"
	"github.com/philipp01105/stamplog/timestamp"
)

const defaultMicros int64 = 123456

type options struct {
	level   string
	micros  int64
	showAll bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "stampdemo",
		Short:         "Print the current timestamp and log a line",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(opts.level)
			if err != nil {
				return err
			}
			return run(out, logger.Instance(), level, opts)
		},
	}

	cmd.Flags().StringVar(&opts.level, "level", "info", "Minimum log level (info, error, fatal, debug)")
	cmd.Flags().Int64Var(&opts.micros, "micros", defaultMicros, "Microseconds since the epoch for the explicit timestamp")
	cmd.Flags().BoolVar(&opts.showAll, "show-all", false, "Also print the unset and explicit timestamps")

	return cmd
}

func run(out io.Writer, log *logger.Logger, level logger.Level, opts options) error {
	log.SetLogLevel(level)

	unset := timestamp.New()
	explicit := timestamp.FromMicroseconds(opts.micros)
	now := timestamp.Now()

	if opts.showAll {
		if _, err := fmt.Fprintf(out, "unset:    %s\nexplicit: %s\n", unset, explicit); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, now); err != nil {
		return err
	}

	log.Infof("captured timestamp %d", now.MicrosecondsSinceEpoch())
	return nil
}
