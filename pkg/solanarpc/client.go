package solanarpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/pkg/httpclient"
	"github.com/soldracula/dracula/pkg/logger"
)

const (
	DefaultConfirmTimeout = 60 * time.Second
	DefaultPollInterval   = 500 * time.Millisecond
)

// ErrNotConfirmed is returned when a transaction does not reach the requested commitment in time.
var ErrNotConfirmed = errors.New("transaction was not confirmed in time")

type Config struct {
	Endpoint       string
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
	Debug          bool
}

// Client reads ledger state through the JSON-RPC API.
type Client struct {
	httpClient     *httpclient.Client
	confirmTimeout time.Duration
	pollInterval   time.Duration
	nextID         atomic.Uint64
}

func New(config Config) (*Client, error) {
	httpClient, err := httpclient.New(config.Endpoint, httpclient.Config{Debug: config.Debug})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{
		httpClient:     httpClient,
		confirmTimeout: utils.Default(config.ConfirmTimeout, DefaultConfirmTimeout),
		pollInterval:   utils.Default(config.PollInterval, DefaultPollInterval),
	}, nil
}

func (c *Client) call(ctx context.Context, method string, out any, params ...any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.Wrap(err, "can't marshal rpc request")
	}
	resp, err := c.httpClient.Post(ctx, "", httpclient.RequestOptions{Body: body})
	if err != nil {
		return errors.Wrapf(err, "can't send %s request", method)
	}
	var rpcResp rpcResponse
	if err := resp.UnmarshalBody(&rpcResp); err != nil {
		return errors.Wrapf(err, "invalid %s response, status %d", method, resp.StatusCode())
	}
	if rpcResp.Error != nil {
		return errors.WithStack(rpcResp.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return errors.Wrapf(err, "can't decode %s result", method)
	}
	return nil
}

// Ping checks that the node reports itself healthy.
func (c *Client) Ping(ctx context.Context) error {
	var health string
	if err := c.call(ctx, "getHealth", &health); err != nil {
		return errors.WithStack(err)
	}
	if health != "ok" {
		return errors.Newf("node is unhealthy: %s", health)
	}
	return nil
}

// GetSignatureStatus returns the status of a transaction, or nil when the ledger does not know it.
func (c *Client) GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error) {
	var result contextValue[[]*SignatureStatus]
	if err := c.call(ctx, "getSignatureStatuses", &result,
		[]string{signature},
		map[string]any{"searchTransactionHistory": true},
	); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(result.Value) == 0 {
		return nil, nil
	}
	return result.Value[0], nil
}

// ConfirmTransaction waits until the transaction reaches commitment.
// Returns ErrNotConfirmed when the confirm timeout elapses first, including when
// the last status request is cut short by that timeout.
func (c *Client) ConfirmTransaction(ctx context.Context, signature string, commitment Commitment) (*SignatureStatus, error) {
	deadline := time.Now().Add(c.confirmTimeout)
	confirmCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	notConfirmed := func() error {
		return errors.Wrapf(ErrNotConfirmed, "signature %s, commitment %s, waited %s", signature, commitment, c.confirmTimeout)
	}

	for {
		status, err := c.GetSignatureStatus(confirmCtx, signature)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.WithStack(ctx.Err())
			}
			// a request still in flight at the deadline fails with the transport timeout,
			// possibly before confirmCtx reports it.
			if time.Until(deadline) <= c.pollInterval {
				return nil, notConfirmed()
			}
			return nil, errors.Wrap(err, "can't get signature status")
		}
		if status != nil && status.ConfirmationStatus.AtLeast(commitment) {
			logger.DebugContext(ctx, "transaction confirmed",
				slog.String("signature", signature),
				slog.String("commitment", string(status.ConfirmationStatus)),
				slog.Uint64("slot", status.Slot),
			)
			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-confirmCtx.Done():
			return nil, notConfirmed()
		case <-ticker.C:
		}
	}
}

// GetParsedTransaction returns the jsonParsed transaction, or nil when it is not found.
func (c *Client) GetParsedTransaction(ctx context.Context, signature string, commitment Commitment) (*ParsedTransaction, error) {
	var tx *ParsedTransaction
	if err := c.call(ctx, "getTransaction", &tx,
		signature,
		map[string]any{
			"encoding":                       "jsonParsed",
			"commitment":                     commitment,
			"maxSupportedTransactionVersion": 0,
		},
	); err != nil {
		return nil, errors.WithStack(err)
	}
	return tx, nil
}

// GetTokenLargestAccounts returns the largest holders of a token mint, largest first.
func (c *Client) GetTokenLargestAccounts(ctx context.Context, mint string, commitment Commitment) ([]TokenAccountBalance, error) {
	var result contextValue[[]TokenAccountBalance]
	if err := c.call(ctx, "getTokenLargestAccounts", &result,
		mint,
		map[string]any{"commitment": commitment},
	); err != nil {
		return nil, errors.WithStack(err)
	}
	return result.Value, nil
}

// GetParsedAccountInfo returns the jsonParsed account, or nil when the account does not exist.
func (c *Client) GetParsedAccountInfo(ctx context.Context, address string, commitment Commitment) (*AccountInfo, error) {
	var result contextValue[*AccountInfo]
	if err := c.call(ctx, "getAccountInfo", &result,
		address,
		map[string]any{
			"encoding":   "jsonParsed",
			"commitment": commitment,
		},
	); err != nil {
		return nil, errors.WithStack(err)
	}
	return result.Value, nil
}
