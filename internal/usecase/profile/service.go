package profile

import (
	"context"
	"errors"
	"log"
	"time"

	"synerh/internal/domain/profile"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const (
	snapshotKeyPrefix = "profile:"
	pushTimeout       = 10 * time.Second
)

// SnapshotCache holds the session's optimistic copy of the record.
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Service owns profile reads and partial updates. Updates are optimistic:
// the snapshot cache is updated immediately and the durable push runs in
// the background; a failed push is logged and never rolled back, so cache
// and store can diverge on persistent store failure.
type Service struct {
	profiles profile.Repository
	cache    SnapshotCache
	logger   *log.Logger

	runAsync func(fn func())
}

func NewService(profiles profile.Repository, cache SnapshotCache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		profiles: profiles,
		cache:    cache,
		logger:   logger,
		runAsync: func(fn func()) { go fn() },
	}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if s.cache != nil {
		var cached profile.Profile
		hit, err := s.cache.GetJSON(ctx, snapshotKey(userID), &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	prof, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, ErrInternal
	}

	s.cacheSnapshot(ctx, prof)
	return prof, nil
}

// Update merges the partial into the current record, refreshes the
// snapshot immediately and pushes the merged record to the durable store
// asynchronously.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, upd profile.Update) (profile.Profile, error) {
	if upd.IsEmpty() {
		return profile.Profile{}, ErrInvalidInput
	}

	cur, err := s.Get(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	merged := upd.Apply(cur)
	s.cacheSnapshot(ctx, merged)

	s.runAsync(func() {
		pushCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := s.profiles.Save(pushCtx, merged); err != nil {
			s.logger.Printf("[Profile] durable push failed user_id=%s: %v", userID, err)
		}
	})

	return merged, nil
}

// EndSession drops the cached snapshot. Fire-and-forget: sign-out never
// fails on the caller's side.
func (s *Service) EndSession(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, snapshotKey(userID)); err != nil {
		s.logger.Printf("[Profile] snapshot delete failed user_id=%s: %v", userID, err)
	}
}

func (s *Service) cacheSnapshot(ctx context.Context, prof profile.Profile) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, snapshotKey(prof.ID), prof, 0); err != nil {
		s.logger.Printf("[Profile] snapshot cache write failed user_id=%s: %v", prof.ID, err)
	}
}

func snapshotKey(userID uuid.UUID) string {
	return snapshotKeyPrefix + userID.String()
}
