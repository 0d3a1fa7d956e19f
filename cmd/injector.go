package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/samber/do/v2"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/internal/config"
	"github.com/soldracula/dracula/modules/dracula"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
	"github.com/soldracula/dracula/pkg/storyclient"
)

// Register Modules
var Modules = do.Package(
	do.LazyNamed("dracula", dracula.New),
)

// newInjector registers the configuration, the service wallet and the ledger and
// story clients shared by every command.
func newInjector(ctx context.Context, conf config.Config) do.Injector {
	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Load service wallet
	do.Provide(injector, func(i do.Injector) (*solana.Keypair, error) {
		conf := do.MustInvoke[config.Config](i)

		path := conf.Wallet.Path
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, errors.Wrap(errs.InvalidArgument, "wallet.path is required")
			}
			path = filepath.Join(home, ".config", "solana", "id.json")
		}
		wallet, err := solana.LoadKeypair(path)
		if err != nil {
			return nil, errors.Wrapf(err, "can't load wallet %q", path)
		}
		logger.InfoContext(ctx, "Loaded service wallet", slogx.Stringer("address", wallet.PublicKey()))
		return wallet, nil
	})

	// Initialize ledger JSON-RPC client
	do.Provide(injector, func(i do.Injector) (*solanarpc.Client, error) {
		conf := do.MustInvoke[config.Config](i)

		endpoint := utils.Default(conf.Ledger.Endpoint, conf.Network.RPCEndpoint())
		client, err := solanarpc.New(solanarpc.Config{
			Endpoint:       endpoint,
			ConfirmTimeout: conf.Ledger.ConfirmTimeout,
			PollInterval:   conf.Ledger.PollInterval,
			Debug:          conf.Ledger.Debug,
		})
		if err != nil {
			return nil, errors.Wrap(err, "invalid ledger configuration")
		}

		// Check ledger connection
		{
			start := time.Now()
			logger.InfoContext(ctx, "Connecting to ledger RPC...", slogx.String("endpoint", endpoint))
			if err := client.Ping(ctx); err != nil {
				logger.WarnContext(ctx, "Ledger RPC is not healthy yet", slogx.String("endpoint", endpoint), slogx.Error(err))
			} else {
				logger.InfoContext(ctx, "Connected to ledger RPC", slog.Duration("latency", time.Since(start)))
			}
		}

		return client, nil
	})

	// Initialize story write API client
	do.Provide(injector, func(i do.Injector) (*storyclient.Client, error) {
		conf := do.MustInvoke[config.Config](i)
		wallet := do.MustInvoke[*solana.Keypair](i)

		client, err := storyclient.New(conf.Story, wallet)
		if err != nil {
			return nil, errors.Wrap(err, "invalid story api configuration")
		}
		return client, nil
	})

	return injector
}

func invokeDracula(injector do.Injector) (*dracula.Module, error) {
	module, err := do.InvokeNamed[*dracula.Module](injector, "dracula")
	if err != nil {
		return nil, errors.Wrap(err, "can't init dracula module")
	}
	return module, nil
}
