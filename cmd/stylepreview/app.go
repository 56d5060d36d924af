package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
	configinfra "github.com/alexisbeaulieu97/stylepreview/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/stylepreview/internal/infrastructure/decode"
	"github.com/alexisbeaulieu97/stylepreview/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/stylepreview/internal/infrastructure/resources"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
)

// appContext holds the wiring shared by every command invocation.
type appContext struct {
	ctx     context.Context
	logger  ports.Logger
	service *preview.Service
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	log, err := newLogger(flags, cmd.ErrOrStderr())
	if err != nil {
		return nil, newCommandError("start", "configuring logger", err, "Use --log-format console or --log-format json.")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	publisher := events.NewLoggingPublisher(log.With("component", "events"))
	service := preview.NewService(preview.Options{
		Loader:   configinfra.NewYAMLLoader(log.With("component", "loader")),
		Decoder:  decode.New(log),
		Logger:   log,
		Events:   publisher,
		NewCache: func() ports.ImageCache { return resources.NewImageCache() },
		Parallel: flags.parallel,
	})

	return &appContext{ctx: ctx, logger: log, service: service}, nil
}
