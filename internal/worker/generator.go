package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redshift-games/tyrian-world/internal/logger"
	"github.com/redshift-games/tyrian-world/internal/services"
	"github.com/redshift-games/tyrian-world/pkg/options"
	queuePkg "github.com/redshift-games/tyrian-world/pkg/queue"
	"github.com/redshift-games/tyrian-world/pkg/session"
	"github.com/redshift-games/tyrian-world/pkg/world"
)

// Generator handles queued world generation requests. It owns the
// record lifecycle: queued -> working -> complete or failed.
type Generator struct {
	storage services.Storage
	archive services.Archive
	logger  *slog.Logger
}

// NewGenerator creates a generator. archive may be nil to skip
// long-term archiving.
func NewGenerator(storage services.Storage, archive services.Archive, logger *slog.Logger) *Generator {
	return &Generator{
		storage: storage,
		archive: archive,
		logger:  logger,
	}
}

// Process generates the world a request asks for and stores the result.
// Requests enqueued out of band have no record yet; one is created so
// their result is readable through the API.
func (g *Generator) Process(ctx context.Context, req *queuePkg.Request) error {
	rec, err := g.storage.LoadRecord(ctx, req.WorldID)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}
	if rec == nil {
		rec = session.NewRecord(req.Options, req.Seed)
		rec.ID = req.WorldID
	}

	rec.Status = session.StatusWorking
	if err := g.storage.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	opts := req.Options
	if opts == nil {
		opts = rec.Options
	}
	if opts == nil {
		opts = &options.Raw{}
	}

	set, err := opts.Resolve()
	if err != nil {
		return g.fail(ctx, rec, fmt.Errorf("resolve options: %w", err))
	}

	seed := req.Seed
	if seed == "" {
		seed = rec.Seed
	}
	if seed == "" {
		seed = world.RandomSeed()
	}
	rec.Seed = seed

	gw, err := world.Generate(ctx, set, seed)
	if err != nil {
		return g.fail(ctx, rec, fmt.Errorf("generate world: %w", err))
	}

	if err := rec.Complete(gw); err != nil {
		return g.fail(ctx, rec, fmt.Errorf("assemble outputs: %w", err))
	}

	if err := g.storage.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("failed to save completed record: %w", err)
	}

	if g.archive != nil {
		if err := g.archive.SaveRecord(ctx, rec); err != nil {
			g.logger.Error("Failed to archive record", "error", err, "world_id", rec.ID.String())
		}
	}

	g.logger.Info("World generated",
		"world_id", rec.ID.String(),
		"seed", rec.Seed,
		"locations", rec.LocationCount,
		"pool", rec.PoolSize,
	)
	return nil
}

// fail marks the record failed and surfaces the cause to the caller.
func (g *Generator) fail(ctx context.Context, rec *session.Record, cause error) error {
	rec.MarkFailed(cause)
	logger.WithError(g.logger, cause).Error("Generation failed", "world_id", rec.ID.String())
	if err := g.storage.SaveRecord(ctx, rec); err != nil {
		g.logger.Error("Failed to save failed record", "error", err, "world_id", rec.ID.String())
	}
	return cause
}
