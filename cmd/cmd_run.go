package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/internal/config"
	"github.com/soldracula/dracula/pkg/automaxprocs"
	"github.com/soldracula/dracula/pkg/errorhandler"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"github.com/soldracula/dracula/pkg/middleware/requestcontext"
	"github.com/soldracula/dracula/pkg/middleware/requestlogger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func NewRunCommand() *cobra.Command {
	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start dracula service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := automaxprocs.Init(cmd.Context()); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			defer automaxprocs.Undo()
			return runHandler(cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.Int("port", 8080, "HTTP server port")
	flags.String("ledger-endpoint", "", "Ledger JSON-RPC endpoint, overrides the network default")
	flags.String("story-url", "", "Base URL of the story write API")

	// Bind flags to configuration
	config.BindPFlag("http_server.port", flags.Lookup("port"))
	config.BindPFlag("ledger.endpoint", flags.Lookup("ledger-endpoint"))
	config.BindPFlag("story.base_url", flags.Lookup("story-url"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Validate inputs and configurations
	{
		if !conf.Network.IsSupported() {
			return errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network.String())
		}
	}

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx, slogx.Stringer("network", conf.Network))

	injector := newInjector(ctx, conf)

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		app := fiber.New(fiber.Config{
			AppName:      "Dracula",
			ErrorHandler: errorhandler.NewHTTPErrorHandler(),
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New()).
			Use(requestcontext.New(
				requestcontext.WithRequestId(),
				requestcontext.WithClientIP(conf.HTTPServer.RequestIP),
			)).
			Use(requestlogger.New(conf.HTTPServer.Logger)).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					buf := make([]byte, 1024) // bufLen = 1024
					buf = buf[:runtime.Stack(buf, false)]
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Newf("panic: %v", e), slog.String("stacktrace", string(buf)))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			}))

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})

		return app, nil
	})

	// Mount modules
	httpServer := do.MustInvoke[*fiber.App](injector)
	module, err := invokeDracula(injector)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := module.Mount(httpServer); err != nil {
		return errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Mounted dracula HTTP handler")

	// Run API server until the process is interrupted
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			return errors.Wrap(err, "error during running HTTP server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "Stopping HTTP server...")
		if err := httpServer.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return errors.Wrap(err, "failed to shutdown HTTP server")
		}
		return nil
	})

	logger.InfoContext(ctx, "Dracula started")
	serveErr := g.Wait()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return errors.WithStack(serveErr)
}
