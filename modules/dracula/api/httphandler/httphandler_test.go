package httphandler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/soldracula/dracula/modules/dracula/datagateway/mocks"
	"github.com/soldracula/dracula/modules/dracula/internal/coordinator"
	"github.com/soldracula/dracula/modules/dracula/internal/ledgertest"
	"github.com/soldracula/dracula/modules/dracula/internal/verifier"
	"github.com/soldracula/dracula/modules/dracula/repository/datastore"
	"github.com/soldracula/dracula/modules/dracula/usecase"
	"github.com/soldracula/dracula/pkg/errorhandler"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
	"github.com/soldracula/dracula/pkg/storyclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var writer = storyclient.WriterMetadata{Label: "Dracula!", Description: "Best meme of all time.", URL: "http://soldracula.is", Metadata: "{}", APIVersion: 1, Visible: true}

func newTestApp(t *testing.T, wallet solana.PublicKey, ledger *mocks.LedgerReader, story *mocks.StoryWriter) *fiber.App {
	t.Helper()
	progress := datastore.NewMemory()
	t.Cleanup(func() { _ = progress.Close() })

	script := make([]storyclient.Item, 6)
	for i := range script {
		script[i] = storyclient.Item{Type: storyclient.ItemTypeItem, Display: storyclient.Display{Label: fmt.Sprint(i)}, Data: map[string]any{}}
	}
	v, err := verifier.New(ledger, verifier.Config{Wallet: wallet})
	require.NoError(t, err)
	c, err := coordinator.New(story, progress, coordinator.Config{Script: script})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	require.NoError(t, New(usecase.New(v, c, story, progress, writer)).Mount(app))
	return app
}

func doRequest(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func expectAppends(story *mocks.StoryWriter) {
	var n int
	story.EXPECT().AppendItemCreate(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ solana.PublicKey, _ storyclient.Item, opts storyclient.AppendOptions) (*storyclient.Confirmation, error) {
			n++
			return &storyclient.Confirmation{Signature: fmt.Sprintf("story-sig-%d", n), Commitment: opts.Commitment}, nil
		})
}

func TestAppendDracula(t *testing.T) {
	p := ledgertest.NewParties(t)
	ledger := mocks.NewLedgerReader(t)
	story := mocks.NewStoryWriter(t)
	ledgertest.ExpectTransaction(ledger, p.TxID, p.Payment(t))
	ledgertest.ExpectOwner(ledger, p.Asset, p.Sender.String())
	expectAppends(story)
	app := newTestApp(t, p.Wallet, ledger, story)

	status, body := doRequest(t, app, "/dracula/"+p.TxID)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"signature": "story-sig-6", "commitment": string(solanarpc.CommitmentFinalized)}, body)

	status, body = doRequest(t, app, "/dracula/"+p.TxID)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]any{"error": "Transaction already processed.", "code": "ALREADY_PROCESSED"}, body)

	status, body = doRequest(t, app, "/dracula/"+p.TxID+"/progress")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["completed"])
	assert.EqualValues(t, 5, body["lastCompletedStep"])
	assert.Equal(t, "story-sig-6", body["lastSignature"])
}

func TestAppendDraculaErrors(t *testing.T) {
	t.Run("invalid transaction", func(t *testing.T) {
		p := ledgertest.NewParties(t)
		ledger := mocks.NewLedgerReader(t)
		ledgertest.ExpectTransaction(ledger, p.TxID, ledgertest.Transaction(t,
			ledgertest.Memo("spl-memo", p.Asset),
			ledgertest.Transfer(p.Sender.String(), p.Wallet.String(), 1000),
		))
		app := newTestApp(t, p.Wallet, ledger, mocks.NewStoryWriter(t))

		status, body := doRequest(t, app, "/dracula/"+p.TxID)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]any{"error": "Invalid transaction", "code": "INVALID_SHAPE"}, body)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		p := ledgertest.NewParties(t)
		ledger := mocks.NewLedgerReader(t)
		ledgertest.ExpectTransaction(ledger, p.TxID, nil)
		app := newTestApp(t, p.Wallet, ledger, mocks.NewStoryWriter(t))

		status, body := doRequest(t, app, "/dracula/"+p.TxID)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, map[string]any{"error": "Transaction not found", "code": "NOT_FOUND"}, body)
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		p := ledgertest.NewParties(t)
		ledger := mocks.NewLedgerReader(t)
		ledger.EXPECT().ConfirmTransaction(mock.Anything, p.TxID, solanarpc.CommitmentConfirmed).
			Return(nil, errors.New("connection refused"))
		app := newTestApp(t, p.Wallet, ledger, mocks.NewStoryWriter(t))

		status, body := doRequest(t, app, "/dracula/"+p.TxID)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, body["error"], "connection refused")
		assert.NotContains(t, body, "code")
	})

	t.Run("txid too long", func(t *testing.T) {
		p := ledgertest.NewParties(t)
		app := newTestApp(t, p.Wallet, mocks.NewLedgerReader(t), mocks.NewStoryWriter(t))

		status, body := doRequest(t, app, "/dracula/"+p.TxID+p.TxID)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "txid is too long", body["error"])
	})
}

func TestInitialize(t *testing.T) {
	p := ledgertest.NewParties(t)
	story := mocks.NewStoryWriter(t)
	story.EXPECT().Initialize(mock.Anything).Return(storyclient.ErrAlreadyInitialized)
	story.EXPECT().CreateWriterMetadata(mock.Anything, writer).
		Return(&storyclient.WriterMetadataResult{Signature: "meta-sig", Metadata: writer}, nil)
	app := newTestApp(t, p.Wallet, mocks.NewLedgerReader(t), story)

	status, body := doRequest(t, app, "/init")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "meta-sig", body["signature"])
	metadata, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dracula!", metadata["label"])
	assert.Equal(t, "http://soldracula.is", metadata["url"])
}

func TestGetAppendProgressNotFound(t *testing.T) {
	p := ledgertest.NewParties(t)
	app := newTestApp(t, p.Wallet, mocks.NewLedgerReader(t), mocks.NewStoryWriter(t))

	status, body := doRequest(t, app, "/dracula/"+p.TxID+"/progress")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "progress not found", body["error"])
}
