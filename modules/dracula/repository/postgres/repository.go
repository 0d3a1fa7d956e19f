package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/internal/postgres"
	"github.com/soldracula/dracula/modules/dracula/datagateway"
	"github.com/soldracula/dracula/modules/dracula/internal/entity"
	"github.com/soldracula/dracula/modules/dracula/repository/postgres/gen"
)

var _ datagateway.ProgressDataGateway = (*Repository)(nil)

type Repository struct {
	db      postgres.Queryable
	queries *gen.Queries
}

func NewRepository(db postgres.Queryable) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}

func (repo *Repository) GetProgress(ctx context.Context, txid string) (*entity.AppendProgress, error) {
	model, err := repo.queries.GetAppendProgress(ctx, txid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(errs.NotFound, "no progress for %s", txid)
		}
		return nil, errors.Wrap(err, "failed to get append progress")
	}
	progress := mapProgressModelToType(model)
	return &progress, nil
}

func (repo *Repository) SaveProgress(ctx context.Context, progress entity.AppendProgress) error {
	if progress.TxID == "" {
		return errors.Wrap(errs.InvalidArgument, "txid is required")
	}
	if err := repo.queries.UpsertAppendProgress(ctx, mapProgressTypeToParams(progress)); err != nil {
		return errors.Wrap(err, "failed to upsert append progress")
	}
	return nil
}

// Close closes the underlying pool when the repository owns one.
func (repo *Repository) Close() error {
	if closer, ok := repo.db.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}
