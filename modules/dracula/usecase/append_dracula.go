package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/pkg/storyclient"
)

// AppendDracula verifies txid and appends the story script to the asset it pays for.
// A transaction handled within the dedup window fails with errs.AlreadyProcessed
// without touching the ledger.
func (u *Usecase) AppendDracula(ctx context.Context, txid string) (*storyclient.Confirmation, error) {
	if err := u.coordinator.CheckProcessed(txid); err != nil {
		return nil, errors.WithStack(err)
	}

	asset, err := u.verifier.Verify(ctx, txid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify transaction")
	}

	confirmation, err := u.coordinator.Process(ctx, txid, asset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to append story")
	}
	return confirmation, nil
}
