package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/modules/dracula/internal/entity"
)

func (u *Usecase) GetAppendProgress(ctx context.Context, txid string) (*entity.AppendProgress, error) {
	progress, err := u.progressDg.GetProgress(ctx, txid)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return progress, nil
}
