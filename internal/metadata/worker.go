package metadata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/autograph-quarterly/autograph-indexer/internal/adapter"
	"github.com/autograph-quarterly/autograph-indexer/internal/config"
	"github.com/autograph-quarterly/autograph-indexer/internal/logger"
	"github.com/autograph-quarterly/autograph-indexer/internal/store"
	"github.com/autograph-quarterly/autograph-indexer/internal/store/schema"
	"github.com/autograph-quarterly/autograph-indexer/internal/uri"
)

// Worker drains pending metadata jobs in the background. Jobs are
// content-addressed: a hash either yields a document once or keeps
// failing on fetch, so completed jobs are never revisited.
type Worker struct {
	store      store.Store
	resolver   uri.Resolver
	httpClient adapter.HTTPClient
	parser     *Parser
	jcs        adapter.JCS
	clock      adapter.Clock
	config     config.MetadataConfig
}

func NewWorker(
	store store.Store,
	resolver uri.Resolver,
	httpClient adapter.HTTPClient,
	parser *Parser,
	jcs adapter.JCS,
	clock adapter.Clock,
	cfg config.MetadataConfig,
) *Worker {
	return &Worker{
		store:      store,
		resolver:   resolver,
		httpClient: httpClient,
		parser:     parser,
		jcs:        jcs,
		clock:      clock,
		config:     cfg,
	}
}

// Run polls for pending jobs until the context is canceled. Each batch is
// fanned out over the worker pool and fully drained before the next poll.
func (w *Worker) Run(ctx context.Context) error {
	pool := pond.NewPool(
		w.config.Worker.WorkerPoolSize,
		pond.WithQueueSize(w.config.Worker.WorkerQueueSize),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	logger.InfoCtx(ctx, "Metadata worker started",
		zap.Int("pool_size", w.config.Worker.WorkerPoolSize),
		zap.Duration("poll_interval", w.config.PollInterval))

	for {
		w.drainOnce(ctx, pool)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.clock.After(w.config.PollInterval):
		}
	}
}

func (w *Worker) drainOnce(ctx context.Context, pool pond.Pool) {
	jobs, err := w.store.ListPendingMetadataJobs(ctx, w.config.BatchSize)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("stage", "list_pending_jobs"))
		return
	}
	if len(jobs) == 0 {
		return
	}

	group := pool.NewGroup()
	for _, job := range jobs {
		group.Submit(func() {
			w.processJob(ctx, job)
		})
	}
	_ = group.Wait()
}

// processJob fetches, parses and persists the metadata for one content hash.
// Fetch failures leave the job pending for the next poll. A successfully
// fetched document always completes the job, even when it produces no
// record: the content behind a hash will not change on retry.
func (w *Worker) processJob(ctx context.Context, job schema.MetadataJob) {
	url, err := w.resolver.Resolve(ctx, job.Hash)
	if err != nil {
		logger.WarnCtx(ctx, "failed to resolve metadata hash",
			zap.Error(err), zap.String("hash", job.Hash))
		w.touch(ctx, job.Hash)
		return
	}

	raw, err := w.httpClient.GetRaw(ctx, url)
	if err != nil {
		logger.WarnCtx(ctx, "failed to fetch metadata",
			zap.Error(err), zap.String("url", url))
		w.touch(ctx, job.Hash)
		return
	}

	canonical, err := w.jcs.Transform(raw)
	if err != nil {
		// Not JSON at all. No record, but the job is done.
		logger.WarnCtx(ctx, "metadata is not valid JSON",
			zap.Error(err), zap.String("hash", job.Hash))
		w.complete(ctx, job.Hash, "")
		return
	}

	digestBytes := sha256.Sum256(canonical)
	digest := hex.EncodeToString(digestBytes[:])

	record, err := w.parser.Parse(job.Hash, raw)
	if err != nil {
		logger.WarnCtx(ctx, "failed to parse metadata",
			zap.Error(err), zap.String("hash", job.Hash))
		w.complete(ctx, job.Hash, digest)
		return
	}
	if record == nil {
		// Valid JSON but not an object. Silently dropped.
		w.complete(ctx, job.Hash, digest)
		return
	}

	if err := w.store.SaveCollectionMetadata(ctx, record); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("hash", job.Hash))
		w.touch(ctx, job.Hash)
		return
	}

	w.complete(ctx, job.Hash, digest)
	logger.InfoCtx(ctx, "Metadata ingested",
		zap.String("hash", job.Hash), zap.String("digest", digest))
}

func (w *Worker) touch(ctx context.Context, hash string) {
	if err := w.store.TouchMetadataJob(ctx, hash); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("hash", hash))
	}
}

func (w *Worker) complete(ctx context.Context, hash string, digest string) {
	if err := w.store.CompleteMetadataJob(ctx, hash, digest); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("hash", hash))
	}
}
