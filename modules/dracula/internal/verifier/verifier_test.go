package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/modules/dracula/datagateway/mocks"
	"github.com/soldracula/dracula/modules/dracula/internal/ledgertest"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerifier(t *testing.T, ledger *mocks.LedgerReader, wallet solana.PublicKey) *Verifier {
	t.Helper()
	v, err := New(ledger, Config{Wallet: wallet})
	require.NoError(t, err)
	return v
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	f := ledgertest.NewParties(t)
	ledger := mocks.NewLedgerReader(t)

	ledgertest.ExpectTransaction(ledger, f.TxID, ledgertest.Transaction(t,
		ledgertest.Transfer(f.Sender.String(), f.Wallet.String(), 1000),
		ledgertest.Memo(MemoProgram, f.Asset),
	))
	ledgertest.ExpectOwner(ledger, f.Asset, f.Sender.String())

	asset, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
	require.NoError(t, err)
	assert.Equal(t, f.Asset, asset.String())
}

func TestVerifyMemoLengthBoundaries(t *testing.T) {
	ctx := context.Background()
	for _, asset := range []string{
		"11111111111111111111111111111112",             // 32 chars
		"JEKNVnkbo3jma5nREBBJCDoXFVeKkD56V3xKrvRmWxFG", // 44 chars
	} {
		t.Run(fmt.Sprint(len(asset)), func(t *testing.T) {
			f := ledgertest.NewParties(t)
			ledger := mocks.NewLedgerReader(t)
			ledgertest.ExpectTransaction(ledger, f.TxID, ledgertest.Transaction(t,
				ledgertest.Transfer(f.Sender.String(), f.Wallet.String(), 1000),
				ledgertest.Memo(MemoProgram, asset),
			))
			ledgertest.ExpectOwner(ledger, asset, f.Sender.String())

			got, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
			require.NoError(t, err)
			assert.Equal(t, asset, got.String())
		})
	}
}

func TestVerifyNotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed signature", func(t *testing.T) {
		f := ledgertest.NewParties(t)
		ledger := mocks.NewLedgerReader(t)

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, "not-a-signature")
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("confirmation timeout", func(t *testing.T) {
		f := ledgertest.NewParties(t)
		ledger := mocks.NewLedgerReader(t)
		ledger.EXPECT().ConfirmTransaction(mock.Anything, f.TxID, solanarpc.CommitmentConfirmed).
			Return(nil, errors.Wrap(solanarpc.ErrNotConfirmed, "deadline"))

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		assert.ErrorIs(t, err, errs.NotFound)
		assert.NotErrorIs(t, err, errs.InvalidShape)
		assert.Contains(t, fmt.Sprintf("%+v", err), solanarpc.ErrNotConfirmed.Error())
	})

	t.Run("null transaction", func(t *testing.T) {
		f := ledgertest.NewParties(t)
		ledger := mocks.NewLedgerReader(t)
		ledgertest.ExpectTransaction(ledger, f.TxID, nil)

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		assert.ErrorIs(t, err, errs.NotFound)
	})
}

func TestVerifyInvalidShape(t *testing.T) {
	ctx := context.Background()
	f := ledgertest.NewParties(t)
	sender, wallet := f.Sender.String(), f.Wallet.String()
	transfer := ledgertest.Transfer(sender, wallet, 1000)
	memo := ledgertest.Memo(MemoProgram, f.Asset)

	testCases := []struct {
		name         string
		instructions []string
	}{
		{name: "no instructions"},
		{name: "transfer only", instructions: []string{transfer}},
		{name: "memo first", instructions: []string{memo, transfer}},
		{name: "unparsed transfer", instructions: []string{fmt.Sprintf(`{"program":"system","programId":%q,"parsed":null}`, solana.SystemProgramID), memo}},
		{name: "not a transfer", instructions: []string{
			fmt.Sprintf(`{"program":"system","programId":%q,"parsed":{"type":"createAccount","info":{"source":%q,"newAccount":%q,"lamports":1000}}}`, solana.SystemProgramID, sender, wallet),
			memo,
		}},
		{name: "wrong destination", instructions: []string{ledgertest.Transfer(sender, sender, 1000), memo}},
		{name: "memo from another program", instructions: []string{transfer, ledgertest.Memo("spl-token", f.Asset)}},
		{name: "memo 31 chars", instructions: []string{transfer, ledgertest.Memo(MemoProgram, strings.Repeat("1", 31))}},
		{name: "memo 45 chars", instructions: []string{transfer, ledgertest.Memo(MemoProgram, strings.Repeat("1", 45))}},
		{name: "memo not an address", instructions: []string{transfer, ledgertest.Memo(MemoProgram, strings.Repeat("0", 40))}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := mocks.NewLedgerReader(t)
			ledgertest.ExpectTransaction(ledger, f.TxID, ledgertest.Transaction(t, tc.instructions...))

			_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
			assert.ErrorIs(t, err, errs.InvalidShape)
			assert.NotErrorIs(t, err, errs.OwnershipMismatch)
		})
	}
}

func TestVerifyFailedTransaction(t *testing.T) {
	ctx := context.Background()
	f := ledgertest.NewParties(t)
	ledger := mocks.NewLedgerReader(t)
	ledger.EXPECT().ConfirmTransaction(mock.Anything, f.TxID, solanarpc.CommitmentConfirmed).
		Return(&solanarpc.SignatureStatus{Slot: 42, Err: json.RawMessage(`{"InstructionError":[0,{"Custom":1}]}`), ConfirmationStatus: solanarpc.CommitmentFinalized}, nil)

	_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
	assert.ErrorIs(t, err, errs.InvalidShape)
}

func TestVerifyOwnership(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (ledgertest.Parties, *mocks.LedgerReader) {
		f := ledgertest.NewParties(t)
		ledger := mocks.NewLedgerReader(t)
		ledgertest.ExpectTransaction(ledger, f.TxID, ledgertest.Transaction(t,
			ledgertest.Transfer(f.Sender.String(), f.Wallet.String(), 1000),
			ledgertest.Memo(MemoProgram, f.Asset),
		))
		return f, ledger
	}

	t.Run("mismatch", func(t *testing.T) {
		f, ledger := setup(t)
		other, err := solana.NewKeypair()
		require.NoError(t, err)
		ledgertest.ExpectOwner(ledger, f.Asset, other.PublicKey().String())

		_, err = newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		assert.ErrorIs(t, err, errs.OwnershipMismatch)
		kind, ok := errs.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, errs.OwnershipMismatch, kind)
	})

	t.Run("no token accounts", func(t *testing.T) {
		f, ledger := setup(t)
		ledger.EXPECT().GetTokenLargestAccounts(mock.Anything, f.Asset, solanarpc.CommitmentConfirmed).
			Return([]solanarpc.TokenAccountBalance{}, nil)

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		assert.ErrorIs(t, err, errs.InvalidShape)
	})

	t.Run("not a mint", func(t *testing.T) {
		f, ledger := setup(t)
		ledger.EXPECT().GetTokenLargestAccounts(mock.Anything, f.Asset, solanarpc.CommitmentConfirmed).
			Return(nil, errors.WithStack(&solanarpc.RPCError{Code: -32602, Message: "Invalid param: not a Token mint"}))

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		assert.ErrorIs(t, err, errs.InvalidShape)
	})

	t.Run("transport failure", func(t *testing.T) {
		f, ledger := setup(t)
		ledger.EXPECT().GetTokenLargestAccounts(mock.Anything, f.Asset, solanarpc.CommitmentConfirmed).
			Return(nil, errors.New("connection refused"))

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		require.Error(t, err)
		_, ok := errs.KindOf(err)
		assert.False(t, ok)
	})

	t.Run("holder missing", func(t *testing.T) {
		f, ledger := setup(t)
		ledger.EXPECT().GetTokenLargestAccounts(mock.Anything, f.Asset, solanarpc.CommitmentConfirmed).
			Return([]solanarpc.TokenAccountBalance{{Address: ledgertest.TokenAccount}}, nil)
		ledger.EXPECT().GetParsedAccountInfo(mock.Anything, ledgertest.TokenAccount, solanarpc.CommitmentConfirmed).
			Return(nil, nil)

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		assert.ErrorIs(t, err, errs.InvalidShape)
	})

	t.Run("raw account data", func(t *testing.T) {
		f, ledger := setup(t)
		ledger.EXPECT().GetTokenLargestAccounts(mock.Anything, f.Asset, solanarpc.CommitmentConfirmed).
			Return([]solanarpc.TokenAccountBalance{{Address: ledgertest.TokenAccount}}, nil)
		ledger.EXPECT().GetParsedAccountInfo(mock.Anything, ledgertest.TokenAccount, solanarpc.CommitmentConfirmed).
			Return(&solanarpc.AccountInfo{Data: json.RawMessage(`["AAAA","base64"]`)}, nil)

		_, err := newVerifier(t, ledger, f.Wallet).Verify(ctx, f.TxID)
		assert.ErrorIs(t, err, errs.InvalidShape)
	})
}

func TestVerifyMinFee(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		lamports uint64
		ok       bool
	}{
		{lamports: 999_999},
		{lamports: 1_000_000, ok: true},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.lamports), func(t *testing.T) {
			f := ledgertest.NewParties(t)
			ledger := mocks.NewLedgerReader(t)
			ledgertest.ExpectTransaction(ledger, f.TxID, ledgertest.Transaction(t,
				ledgertest.Transfer(f.Sender.String(), f.Wallet.String(), tc.lamports),
				ledgertest.Memo(MemoProgram, f.Asset),
			))
			if tc.ok {
				ledgertest.ExpectOwner(ledger, f.Asset, f.Sender.String())
			}

			v, err := New(ledger, Config{Wallet: f.Wallet, MinFee: decimal.RequireFromString("0.001")})
			require.NoError(t, err)
			_, err = v.Verify(ctx, f.TxID)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.InvalidShape)
			}
		})
	}
}

func TestNew(t *testing.T) {
	ledger := mocks.NewLedgerReader(t)

	_, err := New(ledger, Config{})
	assert.ErrorIs(t, err, errs.InvalidArgument)

	wallet, err := solana.NewKeypair()
	require.NoError(t, err)
	_, err = New(ledger, Config{Wallet: wallet.PublicKey(), Commitment: "safe"})
	assert.ErrorIs(t, err, errs.InvalidArgument)

	_, err = New(ledger, Config{Wallet: wallet.PublicKey(), MinFee: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}
