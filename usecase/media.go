package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/harmonia-app/harmonia/domain"
)

// releaseMedia removes hosted blobs after their records are gone. Failures
// here are a tolerated inconsistency: log and keep going, never fail the
// user-visible delete.
func releaseMedia(ctx context.Context, storage domain.MediaStorage, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := storage.Remove(ctx, url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("failed to release hosted media")
		}
	}
}
