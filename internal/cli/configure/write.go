package configure

import (
	"context"
	"fmt"

	"github.com/pirakansa/wpproject/internal/cli/shared"
	"golang.org/x/sync/errgroup"
)

const (
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
)

// writeResults writes the env and compose files concurrently. A failure in
// one does not undo the other.
func writeResults(ctx context.Context, res *Result, opts Options) error {
	g, _ := errgroup.WithContext(ctx)
	for _, fr := range []*FileResult{&res.Env, &res.Compose} {
		g.Go(func() error {
			outcome, err := writeResult(fr, opts)
			if err != nil {
				return err
			}
			fr.Outcome = outcome
			opts.Logger.Info("configured file", "path", fr.Path, "outcome", outcome, "dry_run", opts.DryRun)
			return nil
		})
	}
	return g.Wait()
}

func writeResult(fr *FileResult, opts Options) (string, error) {
	snapshot := fr.source
	if shared.MatchesDigest(snapshot.Digest, fr.Content) {
		return OutcomeUnchanged, nil
	}
	if opts.DryRun {
		return OutcomeUpdated, nil
	}
	if err := shared.BackupFile(fr.Path, snapshot.Content, opts.Backup, opts.Now()); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteFailure, fr.Path, err)
	}
	if err := opts.WriteFile(fr.Path, fr.Content, snapshot.Mode); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteFailure, fr.Path, err)
	}
	return OutcomeUpdated, nil
}
