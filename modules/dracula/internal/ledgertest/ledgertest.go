// Package ledgertest builds jsonParsed ledger fixtures for tests.
package ledgertest

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/soldracula/dracula/modules/dracula/datagateway/mocks"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const TokenAccount = "8hK2ZtkX4Y1wWvbDcq1Xs9u9SrAiwbNQ3Gx3yGiT2Zq7"

// Parties is a payment scenario: sender pays wallet and names asset in the memo.
type Parties struct {
	Wallet solana.PublicKey
	Sender solana.PublicKey
	Asset  string
	TxID   string
}

func NewParties(t *testing.T) Parties {
	t.Helper()
	wallet, err := solana.NewKeypair()
	require.NoError(t, err)
	sender, err := solana.NewKeypair()
	require.NoError(t, err)
	asset, err := solana.NewKeypair()
	require.NoError(t, err)
	return Parties{
		Wallet: wallet.PublicKey(),
		Sender: sender.PublicKey(),
		Asset:  asset.PublicKey().String(),
		TxID:   sender.SignBase58([]byte(t.Name())),
	}
}

func Transfer(source, destination string, lamports uint64) string {
	return fmt.Sprintf(`{"program":"system","programId":%q,"parsed":{"type":"transfer","info":{"source":%q,"destination":%q,"lamports":%d}},"stackHeight":null}`,
		solana.SystemProgramID, source, destination, lamports)
}

func Memo(program, payload string) string {
	return fmt.Sprintf(`{"program":%q,"programId":%q,"parsed":%q,"stackHeight":null}`, program, solana.MemoProgramID, payload)
}

// Transaction assembles instructions, given as JSON objects, into a parsed transaction.
func Transaction(t *testing.T, instructions ...string) *solanarpc.ParsedTransaction {
	t.Helper()
	raw := fmt.Sprintf(`{"slot":42,"blockTime":1700000000,"meta":{"err":null,"fee":5000},"transaction":{"signatures":["sig"],"message":{"instructions":[%s]}}}`,
		strings.Join(instructions, ","))
	var tx solanarpc.ParsedTransaction
	require.NoError(t, json.Unmarshal([]byte(raw), &tx))
	return &tx
}

// Payment is the well formed transaction of p.
func (p Parties) Payment(t *testing.T) *solanarpc.ParsedTransaction {
	return Transaction(t, Transfer(p.Sender.String(), p.Wallet.String(), 1000), Memo("spl-memo", p.Asset))
}

func HolderAccount(owner string) *solanarpc.AccountInfo {
	return &solanarpc.AccountInfo{
		Lamports: 2039280,
		Owner:    "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		Data: json.RawMessage(fmt.Sprintf(`{"program":"spl-token","space":165,"parsed":{"type":"account","info":{"isNative":false,"owner":%q,"state":"initialized","tokenAmount":{"amount":"1","decimals":0}}}}`,
			owner)),
	}
}

// ExpectTransaction makes ledger confirm txid and return tx.
func ExpectTransaction(ledger *mocks.LedgerReader, txid string, tx *solanarpc.ParsedTransaction) {
	ledger.EXPECT().ConfirmTransaction(mock.Anything, txid, solanarpc.CommitmentConfirmed).
		Return(&solanarpc.SignatureStatus{Slot: 42, ConfirmationStatus: solanarpc.CommitmentConfirmed}, nil)
	ledger.EXPECT().GetParsedTransaction(mock.Anything, txid, solanarpc.CommitmentConfirmed).Return(tx, nil)
}

// ExpectOwner makes owner the holder of asset's only token account.
func ExpectOwner(ledger *mocks.LedgerReader, asset, owner string) {
	ledger.EXPECT().GetTokenLargestAccounts(mock.Anything, asset, solanarpc.CommitmentConfirmed).
		Return([]solanarpc.TokenAccountBalance{{Address: TokenAccount, Amount: "1", UIAmountString: "1"}}, nil)
	ledger.EXPECT().GetParsedAccountInfo(mock.Anything, TokenAccount, solanarpc.CommitmentConfirmed).
		Return(HolderAccount(owner), nil)
}
