package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/internal/config"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Register the service wallet as a story writer",
		Long:  "Initializes the story program (an existing one is kept) and creates the writer metadata of the service wallet.",
		RunE:  initHandler,
	}
}

func initHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()
	ctx := cmd.Context()

	injector := newInjector(ctx, conf)
	defer func() {
		if err := injector.Shutdown(); err != nil {
			logger.ErrorContext(ctx, "Failed to shutdown", err)
		}
	}()

	module, err := invokeDracula(injector)
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := module.Usecase().Initialize(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Created writer metadata", slogx.String("signature", result.Signature))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "can't encode result")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
