package datagateway

import (
	"context"

	"github.com/soldracula/dracula/modules/dracula/internal/entity"
)

// ProgressDataGateway persists the append progress of each transaction.
type ProgressDataGateway interface {
	// GetProgress returns errs.NotFound when the transaction has no recorded progress.
	GetProgress(ctx context.Context, txid string) (*entity.AppendProgress, error)
	SaveProgress(ctx context.Context, progress entity.AppendProgress) error
	Close() error
}
