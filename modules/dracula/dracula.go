package dracula

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/shopspring/decimal"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/internal/config"
	"github.com/soldracula/dracula/internal/postgres"
	"github.com/soldracula/dracula/modules/dracula/api/httphandler"
	draculaconfig "github.com/soldracula/dracula/modules/dracula/config"
	"github.com/soldracula/dracula/modules/dracula/datagateway"
	"github.com/soldracula/dracula/modules/dracula/internal/coordinator"
	"github.com/soldracula/dracula/modules/dracula/internal/verifier"
	"github.com/soldracula/dracula/modules/dracula/repository/datastore"
	pgrepository "github.com/soldracula/dracula/modules/dracula/repository/postgres"
	"github.com/soldracula/dracula/modules/dracula/usecase"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
	"github.com/soldracula/dracula/pkg/storyclient"
)

type Module struct {
	usecase    *usecase.Usecase
	progressDg datagateway.ProgressDataGateway
}

// New builds the module from the clients registered in injector.
func New(injector do.Injector) (*Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	wallet := do.MustInvoke[*solana.Keypair](injector)
	ledger := do.MustInvoke[*solanarpc.Client](injector)
	story := do.MustInvoke[*storyclient.Client](injector)
	moduleConf := conf.Modules.Dracula

	minFee := decimal.Zero
	if moduleConf.Verifier.MinFeeSOL != "" {
		fee, err := decimal.NewFromString(moduleConf.Verifier.MinFeeSOL)
		if err != nil {
			return nil, errors.Wrapf(errs.InvalidArgument, "invalid verifier minimum fee %q", moduleConf.Verifier.MinFeeSOL)
		}
		minFee = fee
	}
	txVerifier, err := verifier.New(ledger, verifier.Config{
		Wallet:     wallet.PublicKey(),
		Commitment: solanarpc.Commitment(conf.Ledger.Commitment),
		MinFee:     minFee,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create transaction verifier")
	}

	progressDg, err := newProgressDataGateway(ctx, moduleConf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	appendCoordinator, err := coordinator.New(story, progressDg, coordinator.Config{
		Script:            Script(),
		DedupTTL:          moduleConf.Coordinator.DedupTTL,
		ResumePartial:     moduleConf.Coordinator.ResumePartial,
		SerializePerAsset: moduleConf.Coordinator.SerializePerAsset,
	})
	if err != nil {
		_ = progressDg.Close()
		return nil, errors.Wrap(err, "can't create append coordinator")
	}

	logger.InfoContext(ctx, "Dracula module started",
		slogx.Stringer("wallet", wallet.PublicKey()),
		slogx.String("database", moduleConf.Database),
		slogx.Bool("resume_partial", moduleConf.Coordinator.ResumePartial),
		slogx.Bool("serialize_per_asset", moduleConf.Coordinator.SerializePerAsset),
	)
	return &Module{
		usecase:    usecase.New(txVerifier, appendCoordinator, story, progressDg, writerMetadata(moduleConf.Writer)),
		progressDg: progressDg,
	}, nil
}

func (m *Module) Usecase() *usecase.Usecase {
	return m.usecase
}

// Mount registers the HTTP routes of the module.
func (m *Module) Mount(router fiber.Router) error {
	if err := httphandler.New(m.usecase).Mount(router); err != nil {
		return errors.Wrap(err, "can't mount dracula API")
	}
	return nil
}

// Shutdown is called by the injector on application shutdown.
func (m *Module) Shutdown(context.Context) error {
	return errors.Wrap(m.progressDg.Close(), "failed to close progress store")
}

func newProgressDataGateway(ctx context.Context, conf draculaconfig.Config) (datagateway.ProgressDataGateway, error) {
	switch conf.Database {
	case "", "memory":
		return datastore.NewMemory(), nil
	case "leveldb":
		if conf.LevelDB.Path == "" {
			return nil, errors.Wrap(errs.InvalidArgument, "leveldb path is required")
		}
		repo, err := datastore.NewLevelDB(conf.LevelDB.Path)
		if err != nil {
			return nil, errors.Wrap(err, "can't open leveldb progress store")
		}
		return repo, nil
	case "postgres":
		pg, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "can't create postgres connection pool")
		}
		return pgrepository.NewRepository(pg), nil
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database is not supported", conf.Database)
	}
}

func writerMetadata(conf draculaconfig.WriterConfig) storyclient.WriterMetadata {
	return storyclient.WriterMetadata{
		CDN:                 conf.CDN,
		Label:               conf.Label,
		Description:         conf.Description,
		URL:                 conf.URL,
		Logo:                conf.Logo,
		BaseURL:             conf.BaseURL,
		Metadata:            conf.Metadata,
		HasExtendedMetadata: conf.HasExtendedMetadata,
		SystemValidated:     conf.SystemValidated,
		APIVersion:          conf.APIVersion,
		Visible:             conf.Visible,
	}
}
