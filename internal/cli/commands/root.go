package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pirakansa/wpproject/internal/cli/configure"
	"github.com/pirakansa/wpproject/internal/cli/shared"
	"github.com/pirakansa/wpproject/internal/cli/survey"
	"github.com/pirakansa/wpproject/internal/config"
	"github.com/pirakansa/wpproject/internal/logging"
	"github.com/spf13/cobra"
)

type appContext struct {
	profilePath string
	logLevel    string
	settings    config.Settings
	logger      *slog.Logger
}

func NewRootCmd(version string) *cobra.Command {
	settings, settingsErr := config.Load()
	ctx := &appContext{settings: settings}
	cmd := &cobra.Command{
		Use:   "wpproject",
		Short: "Select image tags and services for a WordPress docker skeleton",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if settingsErr != nil {
				return newExitCodeError(shared.ExitConfigError, settingsErr)
			}
			ctx.logger = logging.NewLogger(cmd.ErrOrStderr(), logging.ParseLevel(ctx.logLevel))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&ctx.profilePath, "profile", settings.Profile, "path or URL of a profile (default: ./"+profileFileName+" or built-in)")
	cmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", settings.LogLevel, "log level: debug|info|warn|error")

	cmd.AddCommand(newConfigureCmd(ctx))
	cmd.AddCommand(newPlanCmd(ctx))
	cmd.AddCommand(newStatusCmd(ctx))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd(version))

	return cmd
}

func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return mapExitCode(err)
	}
	return shared.ExitOK
}

func mapExitCode(err error) int {
	var codeErr *exitCodeError
	switch {
	case errors.As(err, &codeErr):
		return codeErr.code
	case errors.Is(err, configure.ErrMissingFile):
		return shared.ExitMissingFile
	case errors.Is(err, configure.ErrWriteFailure):
		return shared.ExitWriteFailed
	case errors.Is(err, survey.ErrAborted):
		return shared.ExitPromptAborted
	case errors.Is(err, survey.ErrInvalidPreset):
		return shared.ExitConfigError
	}
	return shared.ExitGeneric
}

func (c *appContext) log() *slog.Logger {
	if c.logger == nil {
		c.logger = logging.NewLogger(os.Stderr, logging.ParseLevel(c.logLevel))
	}
	return c.logger
}

type exitCodeError struct {
	code int
	err  error
}

func newExitCodeError(code int, err error) *exitCodeError {
	return &exitCodeError{code: code, err: err}
}

func (e *exitCodeError) Error() string {
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}
