package datagateway

import (
	"context"

	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/storyclient"
)

// StoryWriter is the external story write API.
type StoryWriter interface {
	Initialize(ctx context.Context) error
	CreateWriterMetadata(ctx context.Context, metadata storyclient.WriterMetadata) (*storyclient.WriterMetadataResult, error)
	AppendItemCreate(ctx context.Context, asset solana.PublicKey, item storyclient.Item, opts storyclient.AppendOptions) (*storyclient.Confirmation, error)
}

var _ StoryWriter = (*storyclient.Client)(nil)
