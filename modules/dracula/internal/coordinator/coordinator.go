package coordinator

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/modules/dracula/datagateway"
	"github.com/soldracula/dracula/modules/dracula/internal/dedup"
	"github.com/soldracula/dracula/modules/dracula/internal/entity"
	"github.com/soldracula/dracula/pkg/logger"
	"github.com/soldracula/dracula/pkg/logger/slogx"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/soldracula/dracula/pkg/solanarpc"
	"github.com/soldracula/dracula/pkg/storyclient"
)

type Config struct {
	// Script is appended in order for every processed transaction.
	Script []storyclient.Item

	DedupTTL time.Duration

	// ResumePartial continues a retried run after its last completed step.
	// When false a retry appends the whole script again.
	ResumePartial bool

	// SerializePerAsset allows at most one run per asset at a time.
	SerializePerAsset bool
}

// Coordinator appends the story script for verified transactions at most once per
// dedup window.
type Coordinator struct {
	story    datagateway.StoryWriter
	progress datagateway.ProgressDataGateway
	cache    *dedup.Cache
	script   []storyclient.Item
	resume   bool
	locks    *keyLock
	now      func() time.Time
}

func New(story datagateway.StoryWriter, progress datagateway.ProgressDataGateway, config Config) (*Coordinator, error) {
	if len(config.Script) == 0 {
		return nil, errors.Wrap(errs.InvalidArgument, "script must not be empty")
	}
	c := &Coordinator{
		story:    story,
		progress: progress,
		cache:    dedup.New(config.DedupTTL),
		script:   config.Script,
		resume:   config.ResumePartial,
		now:      time.Now,
	}
	if config.SerializePerAsset {
		c.locks = newKeyLock()
	}
	logger.Info("Story coordinator ready",
		slogx.Duration("dedup_ttl", c.cache.TTL()),
		slogx.Int("script_items", len(c.script)),
		slogx.Bool("resume_partial", c.resume),
		slogx.Bool("serialize_per_asset", c.locks != nil),
	)
	return c, nil
}

// CheckProcessed returns errs.AlreadyProcessed when txid completed within the dedup window.
func (c *Coordinator) CheckProcessed(txid string) error {
	if c.cache.IsProcessed(txid) {
		return errors.WithStack(errs.AlreadyProcessed)
	}
	return nil
}

// Process appends the script to asset's story and marks txid processed once every
// item landed. It returns the confirmation of the last append.
//
// A failed append aborts the run with errs.AppendFailure. Items appended before the
// failure stay on the story and txid is not marked, so a retry runs again.
func (c *Coordinator) Process(ctx context.Context, txid string, asset solana.PublicKey) (*storyclient.Confirmation, error) {
	if err := c.CheckProcessed(txid); err != nil {
		return nil, errors.WithStack(err)
	}

	if c.locks != nil {
		unlock := c.locks.Lock(asset.String())
		defer unlock()

		// an earlier holder of the lock may have finished the same transaction
		if err := c.CheckProcessed(txid); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	ctx = logger.WithContext(ctx,
		slogx.String("txid", txid),
		slogx.Stringer("asset", asset),
		slogx.String("attempt", uuid.NewString()),
	)

	progress := c.startProgress(ctx, txid, asset)
	start := progress.NextStep()
	if start > 0 {
		logger.InfoContext(ctx, "Resuming story append", slogx.Int("step", start), slogx.Int("total", len(c.script)))
	}
	c.saveProgress(ctx, progress)

	var last *storyclient.Confirmation
	if start >= len(c.script) && progress.LastSignature != "" {
		last = &storyclient.Confirmation{Signature: progress.LastSignature, Commitment: solanarpc.CommitmentFinalized}
	}

	for step := start; step < len(c.script); step++ {
		startTime := c.now()
		confirmation, err := c.story.AppendItemCreate(ctx, asset, c.script[step], storyclient.AppendOptions{
			Commitment: solanarpc.CommitmentFinalized,
		})
		if err != nil {
			logger.ErrorContext(ctx, "Failed to append story item", err,
				slogx.Int("step", step),
				slogx.Int("completed", step),
				slogx.Int("total", len(c.script)),
			)
			return nil, errors.WithSecondaryError(errors.Wrapf(errs.AppendFailure, "append step %d/%d", step+1, len(c.script)), err)
		}
		last = confirmation

		progress.LastCompletedStep = step
		progress.LastSignature = confirmation.Signature
		c.saveProgress(ctx, progress)

		logger.DebugContext(ctx, "Appended story item",
			slogx.Int("step", step),
			slogx.String("signature", confirmation.Signature),
			slogx.Duration("duration", time.Since(startTime)),
		)
	}
	if last == nil {
		return nil, errors.Wrap(errs.AppendFailure, "no confirmation recorded")
	}

	progress.Completed = true
	c.saveProgress(ctx, progress)
	c.cache.MarkProcessed(txid)

	logger.InfoContext(ctx, "Appended story",
		slogx.Int("items", len(c.script)),
		slogx.String("signature", last.Signature),
		slogx.Int("processed_cached", c.cache.Len()),
	)
	return last, nil
}

// startProgress loads the previous run of txid when resuming, or starts over.
func (c *Coordinator) startProgress(ctx context.Context, txid string, asset solana.PublicKey) entity.AppendProgress {
	fresh := entity.AppendProgress{
		TxID:              txid,
		Asset:             asset.String(),
		LastCompletedStep: -1,
		TotalSteps:        len(c.script),
	}

	previous, err := c.progress.GetProgress(ctx, txid)
	switch {
	case errors.Is(err, errs.NotFound):
	case err != nil:
		logger.WarnContext(ctx, "Failed to load append progress, starting over", slogx.Error(err))
	default:
		fresh.Attempts = previous.Attempts
		if c.resume && previous.Asset == fresh.Asset && !previous.Completed {
			fresh.LastCompletedStep = previous.LastCompletedStep
			fresh.LastSignature = previous.LastSignature
		}
	}
	fresh.Attempts++
	return fresh
}

// saveProgress logs store failures instead of aborting the run.
func (c *Coordinator) saveProgress(ctx context.Context, progress entity.AppendProgress) {
	progress.UpdatedAt = c.now()
	if err := c.progress.SaveProgress(ctx, progress); err != nil {
		logger.WarnContext(ctx, "Failed to save append progress", slogx.Error(err), slogx.Int("step", progress.LastCompletedStep))
	}
}
