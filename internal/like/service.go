// Copyright (c) 2026 Padrocha. All rights reserved.
// Author: contact@padrocha.dev

package like

import (
	"context"
	"log/slog"
)

// Service implements the reaction use cases with a cache-aside counter.
type Service struct {
	repository Repository
	cache      CountCache
	logger     *slog.Logger
}

// NewService constructs a new [Service]. The cache may be nil, in which case
// every count goes to the repository.
func NewService(repository Repository, cache CountCache, logger *slog.Logger) *Service {
	return &Service{repository: repository, cache: cache, logger: logger}
}

// Toggle flips the caller's reaction to a post and returns the new state.
//
// The cached counter is invalidated rather than updated in place: the next
// Count recomputes from the repository, so the cache can never drift from a
// missed write.
func (service *Service) Toggle(ctx context.Context, postID, userID string) (*Like, error) {
	reaction, err := service.repository.Toggle(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.Invalidate(ctx, postID); err != nil {
			// Stale for at most the cache TTL; not worth failing the toggle.
			service.logger.WarnContext(ctx, "like_count_invalidate_failed",
				slog.String("post_id", postID),
				slog.String("error", err.Error()),
			)
		}
	}

	return reaction, nil
}

// Get returns the caller's reaction state for a post.
func (service *Service) Get(ctx context.Context, postID, userID string) (*Like, error) {
	return service.repository.Find(ctx, postID, userID)
}

// Count returns the number of active likes for a post, cache-aside.
func (service *Service) Count(ctx context.Context, postID string) (int64, error) {
	if service.cache != nil {
		count, ok, err := service.cache.Get(ctx, postID)
		if err != nil {
			service.logger.WarnContext(ctx, "like_count_cache_read_failed",
				slog.String("post_id", postID),
				slog.String("error", err.Error()),
			)
		} else if ok {
			return count, nil
		}
	}

	count, err := service.repository.Count(ctx, postID)
	if err != nil {
		return 0, err
	}

	if service.cache != nil {
		if err := service.cache.Set(ctx, postID, count); err != nil {
			service.logger.WarnContext(ctx, "like_count_cache_write_failed",
				slog.String("post_id", postID),
				slog.String("error", err.Error()),
			)
		}
	}

	return count, nil
}
