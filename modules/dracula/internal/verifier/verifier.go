package verifier

import (
	"context"
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/modules/dracula/datagateway"
	"github.com/soldracula/dracula/modules/dracula/internal/entity"
	"github.com/soldracula/dracula/pkg/decimals"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
)

const (
	SystemProgram = "system"
	MemoProgram   = "spl-memo"
	TransferKind  = "transfer"
	MinMemoLength = 32
	MaxMemoLength = 44

	signatureSize = 64
)

type Config struct {
	// Wallet is the service wallet every payment must be sent to.
	Wallet solana.PublicKey

	// Commitment used for every ledger read, defaults to confirmed.
	Commitment solanarpc.Commitment

	// MinFee is the minimum accepted payment in SOL. Zero disables the check.
	MinFee decimal.Decimal
}

// Verifier checks that a transaction is a payment to the service wallet, carries an asset
// address in its memo, and was sent by the current holder of that asset.
// It only reads from the ledger.
type Verifier struct {
	ledger         datagateway.LedgerReader
	wallet         solana.PublicKey
	commitment     solanarpc.Commitment
	minFeeLamports uint64
}

func New(ledger datagateway.LedgerReader, config Config) (*Verifier, error) {
	if config.Wallet.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "service wallet is required")
	}
	if config.Commitment == "" {
		config.Commitment = solanarpc.CommitmentConfirmed
	}
	if !config.Commitment.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid commitment %q", config.Commitment)
	}
	minFee, err := decimals.SOLToLamports(config.MinFee)
	if err != nil {
		return nil, errors.Wrap(err, "invalid minimum fee")
	}
	return &Verifier{
		ledger:         ledger,
		wallet:         config.Wallet,
		commitment:     config.Commitment,
		minFeeLamports: minFee,
	}, nil
}

// Verify runs every check against txid and returns the asset named in the memo.
// The first failing check aborts, its kind is one of errs.NotFound, errs.InvalidShape
// or errs.OwnershipMismatch. Ledger transport failures are returned unmarked.
func (v *Verifier) Verify(ctx context.Context, txid string) (solana.PublicKey, error) {
	ctx = logger.WithContext(ctx, slogx.String("txid", txid))

	tx, err := v.fetchTransaction(ctx, txid)
	if err != nil {
		return solana.PublicKey{}, errors.WithStack(err)
	}

	instructions := tx.Instructions()
	transfer, err := v.transferClaim(instructions)
	if err != nil {
		return solana.PublicKey{}, errors.WithStack(err)
	}
	memo, err := memoClaim(instructions)
	if err != nil {
		return solana.PublicKey{}, errors.WithStack(err)
	}
	asset, err := solana.ParsePublicKey(memo.Payload)
	if err != nil {
		return solana.PublicKey{}, errors.WithSecondaryError(errors.Wrap(errs.InvalidShape, REASON_ASSET_ADDRESS), err)
	}

	proof, err := v.ownership(ctx, asset)
	if err != nil {
		return solana.PublicKey{}, errors.WithStack(err)
	}
	if proof.Owner != transfer.Source {
		logger.InfoContext(ctx, "Rejected transaction, sender does not own asset",
			slogx.Stringer("asset", asset),
			slogx.String("owner", proof.Owner),
			slogx.String("sender", transfer.Source),
		)
		return solana.PublicKey{}, errors.Wrap(errs.OwnershipMismatch, REASON_OWNER_MISMATCH)
	}

	logger.DebugContext(ctx, "Verified transaction",
		slogx.Stringer("asset", asset),
		slogx.String("owner", proof.Owner),
		slogx.Stringer("fee_sol", decimals.LamportsToSOL(transfer.Lamports)),
	)
	return asset, nil
}

func (v *Verifier) fetchTransaction(ctx context.Context, txid string) (*solanarpc.ParsedTransaction, error) {
	if len(base58.Decode(txid)) != signatureSize {
		return nil, errors.Wrap(errs.NotFound, REASON_MALFORMED_SIGNATURE)
	}

	status, err := v.ledger.ConfirmTransaction(ctx, txid, v.commitment)
	if err != nil {
		if errors.Is(err, solanarpc.ErrNotConfirmed) {
			return nil, errors.WithSecondaryError(errors.Wrap(errs.NotFound, REASON_NOT_CONFIRMED), err)
		}
		return nil, errors.Wrap(err, "failed to confirm transaction")
	}
	if status != nil && status.Failed() {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TX_FAILED)
	}

	tx, err := v.ledger.GetParsedTransaction(ctx, txid, v.commitment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	if tx == nil {
		return nil, errors.Wrap(errs.NotFound, REASON_TX_MISSING)
	}
	if tx.Meta != nil && len(tx.Meta.Err) > 0 && string(tx.Meta.Err) != "null" {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TX_FAILED)
	}
	return tx, nil
}

type transferInfo struct {
	Type string `json:"type"`
	Info struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
		Lamports    uint64 `json:"lamports"`
	} `json:"info"`
}

func (v *Verifier) transferClaim(instructions []solanarpc.ParsedInstruction) (*entity.TransferClaim, error) {
	if len(instructions) < 1 {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TRANSFER_MISSING)
	}
	ix := instructions[0]
	if ix.Program != SystemProgram {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TRANSFER_PROGRAM)
	}
	if !ix.IsParsed() {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TRANSFER_UNPARSED)
	}
	var parsed transferInfo
	if err := json.Unmarshal(ix.Parsed, &parsed); err != nil {
		return nil, errors.WithSecondaryError(errors.Wrap(errs.InvalidShape, REASON_TRANSFER_UNPARSED), err)
	}
	if parsed.Type != TransferKind {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TRANSFER_KIND)
	}
	if parsed.Info.Destination != v.wallet.String() {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TRANSFER_DESTINATION)
	}
	if parsed.Info.Source == "" {
		return nil, errors.Wrap(errs.InvalidShape, REASON_TRANSFER_SOURCE)
	}
	if parsed.Info.Lamports < v.minFeeLamports {
		return nil, errors.Wrapf(errs.InvalidShape, "%s: %d < %d lamports", REASON_TRANSFER_TOO_SMALL, parsed.Info.Lamports, v.minFeeLamports)
	}
	return &entity.TransferClaim{
		Program:     ix.Program,
		Kind:        parsed.Type,
		Source:      parsed.Info.Source,
		Destination: parsed.Info.Destination,
		Lamports:    parsed.Info.Lamports,
	}, nil
}

func memoClaim(instructions []solanarpc.ParsedInstruction) (*entity.MemoClaim, error) {
	if len(instructions) < 2 {
		return nil, errors.Wrap(errs.InvalidShape, REASON_MEMO_MISSING)
	}
	ix := instructions[1]
	if ix.Program != MemoProgram {
		return nil, errors.Wrap(errs.InvalidShape, REASON_MEMO_PROGRAM)
	}
	var payload string
	if err := json.Unmarshal(ix.Parsed, &payload); err != nil {
		return nil, errors.WithSecondaryError(errors.Wrap(errs.InvalidShape, REASON_MEMO_PAYLOAD), err)
	}
	if len(payload) < MinMemoLength || len(payload) > MaxMemoLength {
		return nil, errors.Wrapf(errs.InvalidShape, "%s: %d", REASON_MEMO_LENGTH, len(payload))
	}
	return &entity.MemoClaim{Program: ix.Program, Payload: payload}, nil
}

type tokenAccountInfo struct {
	Owner string `json:"owner"`
}

func (v *Verifier) ownership(ctx context.Context, asset solana.PublicKey) (*entity.OwnershipProof, error) {
	accounts, err := v.ledger.GetTokenLargestAccounts(ctx, asset.String(), v.commitment)
	if err != nil {
		return nil, errors.WithStack(rejected(err, "failed to get largest token accounts"))
	}
	if len(accounts) == 0 {
		return nil, errors.Wrap(errs.InvalidShape, REASON_ASSET_NO_ACCOUNTS)
	}
	holder := accounts[0].Address

	account, err := v.ledger.GetParsedAccountInfo(ctx, holder, v.commitment)
	if err != nil {
		return nil, errors.WithStack(rejected(err, "failed to get token account"))
	}
	if account == nil {
		return nil, errors.Wrap(errs.InvalidShape, REASON_HOLDER_MISSING)
	}
	data, ok := account.ParsedData()
	if !ok {
		return nil, errors.Wrap(errs.InvalidShape, REASON_HOLDER_UNPARSED)
	}
	var info tokenAccountInfo
	if err := json.Unmarshal(data.Parsed.Info, &info); err != nil || info.Owner == "" {
		return nil, errors.Wrap(errs.InvalidShape, REASON_HOLDER_UNPARSED)
	}
	return &entity.OwnershipProof{Asset: asset, TokenAccount: holder, Owner: info.Owner}, nil
}

// rejected marks ledger-level rejections (e.g. the address is not a mint) as an invalid
// transaction, leaving transport failures untouched.
func rejected(err error, msg string) error {
	var rpcErr *solanarpc.RPCError
	if errors.As(err, &rpcErr) {
		return errors.WithSecondaryError(errors.Wrap(errs.InvalidShape, REASON_ASSET_REJECTED), err)
	}
	return errors.Wrap(err, msg)
}
