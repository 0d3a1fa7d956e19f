package datagateway

import (
	"context"

	"github.com/soldracula/dracula/pkg/solanarpc"
)

// LedgerReader is the read-only view of the shared ledger used to verify transactions.
type LedgerReader interface {
	ConfirmTransaction(ctx context.Context, signature string, commitment solanarpc.Commitment) (*solanarpc.SignatureStatus, error)
	GetParsedTransaction(ctx context.Context, signature string, commitment solanarpc.Commitment) (*solanarpc.ParsedTransaction, error)
	GetTokenLargestAccounts(ctx context.Context, mint string, commitment solanarpc.Commitment) ([]solanarpc.TokenAccountBalance, error)
	GetParsedAccountInfo(ctx context.Context, address string, commitment solanarpc.Commitment) (*solanarpc.AccountInfo, error)
}

var _ LedgerReader = (*solanarpc.Client)(nil)
