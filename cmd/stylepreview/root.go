package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylepreview/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
	parallel  int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylepreview",
		Short:         "stylepreview renders part background previews from visual style documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log output format (console or json)")
	cmd.PersistentFlags().IntVarP(&flags.parallel, "parallel", "p", 0, "Maximum number of parts rendered concurrently")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPartsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(flags *rootFlags, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	var human bool
	switch flags.logFormat {
	case "", "console":
		human = true
	case "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q (expected console or json)", flags.logFormat)
	}

	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: human,
		Writer:        w,
		Layer:         "cli",
		Component:     "stylepreview",
	})
}
