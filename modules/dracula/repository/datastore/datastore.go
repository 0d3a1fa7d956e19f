package datastore

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	ds "github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	dssync "github.com/ipfs/go-datastore/sync"
	leveldb "github.com/ipfs/go-ds-leveldb"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/modules/dracula/datagateway"
	"github.com/soldracula/dracula/modules/dracula/internal/entity"
)

const progressPrefix = "/dracula/progress"

var _ datagateway.ProgressDataGateway = (*Repository)(nil)

// Repository stores append progress in a key-value datastore, one key per transaction.
type Repository struct {
	ds ds.Datastore
}

func New(store ds.Datastore) *Repository {
	return &Repository{
		ds: namespace.Wrap(store, ds.NewKey(progressPrefix)),
	}
}

// NewMemory returns a repository that lives as long as the process.
func NewMemory() *Repository {
	return New(dssync.MutexWrap(ds.NewMapDatastore()))
}

// NewLevelDB opens (or creates) a leveldb database at path.
func NewLevelDB(path string) (*Repository, error) {
	store, err := leveldb.NewDatastore(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open leveldb at %s", path)
	}
	return New(store), nil
}

func (r *Repository) GetProgress(ctx context.Context, txid string) (*entity.AppendProgress, error) {
	value, err := r.ds.Get(ctx, ds.NewKey(txid))
	if err != nil {
		if errors.Is(err, ds.ErrNotFound) {
			return nil, errors.Wrapf(errs.NotFound, "no progress for %s", txid)
		}
		return nil, errors.Wrap(err, "failed to get progress")
	}

	var progress entity.AppendProgress
	if err := json.Unmarshal(value, &progress); err != nil {
		return nil, errors.Wrap(err, "failed to decode progress")
	}
	return &progress, nil
}

func (r *Repository) SaveProgress(ctx context.Context, progress entity.AppendProgress) error {
	if progress.TxID == "" {
		return errors.Wrap(errs.InvalidArgument, "txid is required")
	}
	value, err := json.Marshal(progress)
	if err != nil {
		return errors.Wrap(err, "failed to encode progress")
	}
	if err := r.ds.Put(ctx, ds.NewKey(progress.TxID), value); err != nil {
		return errors.Wrap(err, "failed to put progress")
	}
	return nil
}

func (r *Repository) Close() error {
	return errors.WithStack(r.ds.Close())
}
