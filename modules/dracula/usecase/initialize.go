package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/storyclient"
)

// Initialize registers the service wallet as a story writer. It is safe to call more
// than once, an already initialized story program is not an error.
func (u *Usecase) Initialize(ctx context.Context) (*storyclient.WriterMetadataResult, error) {
	if err := u.storyWriter.Initialize(ctx); err != nil {
		if !errors.Is(err, storyclient.ErrAlreadyInitialized) {
			return nil, errors.Wrap(err, "failed to initialize story program")
		}
		logger.InfoContext(ctx, "Story program already initialized")
	}

	result, err := u.storyWriter.CreateWriterMetadata(ctx, u.writer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create writer metadata")
	}
	return result, nil
}
