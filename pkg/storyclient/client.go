package storyclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/pkg/httpclient"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
)

const (
	HeaderWriterKey = "X-Writer-Key"
	HeaderSignature = "X-Signature"
)

// ErrAlreadyInitialized is returned by Initialize when the on-chain record exists.
var ErrAlreadyInitialized = errors.New("story program already initialized")

type Config struct {
	BaseURL string `mapstructure:"base_url"`
	Debug   bool   `mapstructure:"debug"`
}

// Client talks to the story write API. Every request body is signed with the wallet key.
type Client struct {
	httpClient *httpclient.Client
	wallet     *solana.Keypair
}

func New(config Config, wallet *solana.Keypair) (*Client, error) {
	if wallet == nil {
		return nil, errors.New("wallet is required")
	}
	httpClient, err := httpclient.New(config.BaseURL, httpclient.Config{
		Debug: config.Debug,
		Headers: map[string]string{
			HeaderWriterKey: wallet.PublicKey().String(),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{
		httpClient: httpClient,
		wallet:     wallet,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "can't marshal payload")
	}
	resp, err := c.httpClient.Post(ctx, path, httpclient.RequestOptions{
		Body: body,
		Header: map[string]string{
			HeaderSignature: c.wallet.SignBase58(body),
		},
	})
	if err != nil {
		return errors.Wrap(err, "can't send request")
	}
	if status := resp.StatusCode(); status < 200 || status >= 300 {
		var errResp errorResponse
		if err := resp.UnmarshalBody(&errResp); err != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(status)
		}
		return errors.WithStack(&APIError{Status: status, Message: errResp.Error})
	}
	if out == nil {
		return nil
	}
	return errors.WithStack(resp.UnmarshalBody(out))
}

// Initialize creates the one-time on-chain setup record with the wallet as authority.
func (c *Client) Initialize(ctx context.Context) error {
	err := c.post(ctx, "/v1/initialize", initializeRequest{
		Authority: c.wallet.PublicKey().String(),
	}, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
		return errors.Wrap(ErrAlreadyInitialized, apiErr.Message)
	}
	return errors.WithStack(err)
}

// CreateWriterMetadata registers or re-registers the writer metadata of the wallet.
func (c *Client) CreateWriterMetadata(ctx context.Context, metadata WriterMetadata) (*WriterMetadataResult, error) {
	metadata.WriterKey = c.wallet.PublicKey().String()
	var result WriterMetadataResult
	if err := c.post(ctx, "/v1/writers", metadata, &result); err != nil {
		return nil, errors.Wrap(err, "can't create writer metadata")
	}
	return &result, nil
}

// AppendItemCreate appends one item to the asset's story and waits for opts.Commitment.
func (c *Client) AppendItemCreate(ctx context.Context, asset solana.PublicKey, item Item, opts AppendOptions) (*Confirmation, error) {
	if !opts.Commitment.IsValid() {
		opts.Commitment = solanarpc.CommitmentFinalized
	}
	hash, err := ItemHash(item)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var confirmation Confirmation
	if err := c.post(ctx, "/v1/assets/"+asset.String()+"/items", appendItemRequest{
		WriterKey:  c.wallet.PublicKey().String(),
		Item:       item,
		ItemHash:   hash.String(),
		Commitment: opts.Commitment,
	}, &confirmation); err != nil {
		return nil, errors.Wrap(err, "can't append item")
	}
	if confirmation.Signature == "" {
		return nil, errors.New("story api returned an empty signature")
	}
	logger.DebugContext(ctx, "story item appended",
		slog.String("asset", asset.String()),
		slog.String("itemHash", hash.String()),
		slog.String("signature", confirmation.Signature),
	)
	return &confirmation, nil
}
