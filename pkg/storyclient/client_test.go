package storyclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testItem = Item{
	Type: ItemTypeItem,
	Display: Display{
		Label:       "Richter:",
		Description: "Die monster. You don’t belong in this world!",
		HelpText:    "Castlevania: Symphony of the Night",
		Img:         "http://soldracula.is/static/richter.jpg",
	},
	Data: map[string]any{},
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body []byte)) (*Client, *solana.Keypair) {
	t.Helper()
	wallet, err := solana.NewKeypair()
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// every request must be signed by the wallet
		writer, err := solana.ParsePublicKey(r.Header.Get(HeaderWriterKey))
		require.NoError(t, err)
		assert.Equal(t, wallet.PublicKey(), writer)
		assert.True(t, solana.VerifyBase58(writer, body, r.Header.Get(HeaderSignature)))

		w.Header().Set("Content-Type", "application/json")
		handler(w, r, body)
	}))
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL}, wallet)
	require.NoError(t, err)
	return client, wallet
}

func TestItemHashDeterministic(t *testing.T) {
	a, err := ItemHash(testItem)
	require.NoError(t, err)
	b, err := ItemHash(testItem)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, uint64(0x55), a.Prefix().Codec) // raw

	other := testItem
	other.Display.Label = "Dracula:"
	c, err := ItemHash(other)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestInitialize(t *testing.T) {
	calls := 0
	var authorities []string
	client, wallet := newTestClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, "/v1/initialize", r.URL.Path)
		var req initializeRequest
		require.NoError(t, json.Unmarshal(body, &req))
		authorities = append(authorities, req.Authority)

		calls++
		if calls > 1 {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"account already in use"}`))
			return
		}
		_, _ = w.Write([]byte(`{"signature":"init-sig"}`))
	})

	require.NoError(t, client.Initialize(context.Background()))

	err := client.Initialize(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Contains(t, err.Error(), "account already in use")

	authority := wallet.PublicKey().String()
	assert.Equal(t, []string{authority, authority}, authorities)
}

func TestInitializeFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"program missing"}`))
	})

	err := client.Initialize(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyInitialized)
}

func TestCreateWriterMetadata(t *testing.T) {
	client, wallet := newTestClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, "/v1/writers", r.URL.Path)
		var md WriterMetadata
		require.NoError(t, json.Unmarshal(body, &md))
		require.NoError(t, json.NewEncoder(w).Encode(WriterMetadataResult{Signature: "writer-sig", Metadata: md}))
	})

	result, err := client.CreateWriterMetadata(context.Background(), WriterMetadata{Label: "Dracula!", APIVersion: 1, Visible: true})
	require.NoError(t, err)
	assert.Equal(t, "writer-sig", result.Signature)
	assert.Equal(t, wallet.PublicKey().String(), result.Metadata.WriterKey)
	assert.Equal(t, "Dracula!", result.Metadata.Label)
}

func TestAppendItemCreate(t *testing.T) {
	asset, err := solana.NewKeypair()
	require.NoError(t, err)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, "/v1/assets/"+asset.PublicKey().String()+"/items", r.URL.Path)
		var req appendItemRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, solanarpc.CommitmentFinalized, req.Commitment)

		hash, err := ItemHash(req.Item)
		require.NoError(t, err)
		assert.Equal(t, hash.String(), req.ItemHash)

		require.NoError(t, json.NewEncoder(w).Encode(Confirmation{Signature: "append-sig", Commitment: req.Commitment}))
	})

	confirmation, err := client.AppendItemCreate(context.Background(), asset.PublicKey(), testItem, AppendOptions{})
	require.NoError(t, err)
	assert.Equal(t, "append-sig", confirmation.Signature)
	assert.Equal(t, solanarpc.CommitmentFinalized, confirmation.Commitment)
}

func TestAppendItemCreateRejected(t *testing.T) {
	asset, err := solana.NewKeypair()
	require.NoError(t, err)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte(`{"error":"confirmation timeout"}`))
	})

	_, err = client.AppendItemCreate(context.Background(), asset.PublicKey(), testItem, AppendOptions{Commitment: solanarpc.CommitmentFinalized})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusGatewayTimeout, apiErr.Status)
	assert.Equal(t, "confirmation timeout", apiErr.Message)
}

func TestAppendItemCreateEmptySignature(t *testing.T) {
	asset, err := solana.NewKeypair()
	require.NoError(t, err)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		_, _ = w.Write([]byte(`{"signature":"","commitment":"finalized"}`))
	})

	_, err = client.AppendItemCreate(context.Background(), asset.PublicKey(), testItem, AppendOptions{})
	assert.ErrorContains(t, err, "empty signature")
}

func TestNewRequiresWallet(t *testing.T) {
	_, err := New(Config{BaseURL: "http://localhost:3000"}, nil)
	assert.Error(t, err)
}
