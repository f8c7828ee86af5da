package profile

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"

	"synerh/internal/domain/profile"
)

type memRepo struct {
	byID map[uuid.UUID]profile.Profile

	saveErr error
	saves   int
}

func newMemRepo(profs ...profile.Profile) *memRepo {
	r := &memRepo{byID: make(map[uuid.UUID]profile.Profile)}
	for _, p := range profs {
		r.byID[p.ID] = p
	}
	return r
}

func (r *memRepo) Create(_ context.Context, p profile.Profile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *memRepo) Save(_ context.Context, p profile.Profile) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.byID[p.ID] = p
	return nil
}

type memCache struct {
	entries map[string]profile.Profile
	deletes []string
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]profile.Profile)}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	p, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	*(out.(*profile.Profile)) = p
	return true, nil
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	switch v := value.(type) {
	case profile.Profile:
		c.entries[key] = v
	case *profile.Profile:
		c.entries[key] = *v
	}
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deletes = append(c.deletes, key)
	return nil
}

func newTestService(repo *memRepo, cache SnapshotCache) *Service {
	svc := NewService(repo, cache, log.New(io.Discard, "", 0))
	svc.runAsync = func(fn func()) { fn() }
	return svc
}

func strPtr(s string) *string { return &s }

func TestGet_FallsBackToStoreAndCaches(t *testing.T) {
	prof := profile.Default(uuid.New(), "ana@example.com", "Ana")
	cache := newMemCache()
	svc := newTestService(newMemRepo(prof), cache)

	got, err := svc.Get(context.Background(), prof.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Name != "Ana" {
		t.Fatalf("name = %q", got.Name)
	}
	if _, ok := cache.entries[snapshotKey(prof.ID)]; !ok {
		t.Fatalf("store read did not warm the snapshot cache")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(newMemRepo(), newMemCache())

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_MergesFieldByField(t *testing.T) {
	prof := profile.Default(uuid.New(), "ana@example.com", "Ana")
	prof.Bio = "bio antiga"
	prof.Reputation = 350
	repo := newMemRepo(prof)
	svc := newTestService(repo, newMemCache())

	merged, err := svc.Update(context.Background(), prof.ID, profile.Update{
		Name:   strPtr("Ana Souza"),
		Skills: []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if merged.Name != "Ana Souza" {
		t.Fatalf("name = %q", merged.Name)
	}
	if len(merged.Skills) != 2 {
		t.Fatalf("skills = %v", merged.Skills)
	}
	if merged.Bio != "bio antiga" {
		t.Fatalf("untouched field changed: bio = %q", merged.Bio)
	}
	if merged.Reputation != 350 {
		t.Fatalf("reputation changed: %d", merged.Reputation)
	}

	stored, _ := repo.GetByID(context.Background(), prof.ID)
	if stored.Name != "Ana Souza" {
		t.Fatalf("durable push did not land: %+v", stored)
	}
}

func TestUpdate_EmptyUpdateRejected(t *testing.T) {
	prof := profile.Default(uuid.New(), "ana@example.com", "Ana")
	svc := newTestService(newMemRepo(prof), newMemCache())

	_, err := svc.Update(context.Background(), prof.ID, profile.Update{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_FailedPushKeepsOptimisticSnapshot(t *testing.T) {
	prof := profile.Default(uuid.New(), "ana@example.com", "Ana")
	repo := newMemRepo(prof)
	repo.saveErr = errors.New("store down")
	cache := newMemCache()
	svc := newTestService(repo, cache)

	merged, err := svc.Update(context.Background(), prof.ID, profile.Update{Name: strPtr("Nova")})
	if err != nil {
		t.Fatalf("push failure must not surface: %v", err)
	}
	if merged.Name != "Nova" {
		t.Fatalf("merged name = %q", merged.Name)
	}
	if repo.saves != 1 {
		t.Fatalf("expected one push attempt, got %d", repo.saves)
	}

	// No rollback: the snapshot keeps the merged value even though the
	// durable store still holds the old one.
	cached, ok := cache.entries[snapshotKey(prof.ID)]
	if !ok || cached.Name != "Nova" {
		t.Fatalf("snapshot rolled back: %+v", cached)
	}
	stored, _ := repo.GetByID(context.Background(), prof.ID)
	if stored.Name != "Ana" {
		t.Fatalf("durable store unexpectedly updated: %+v", stored)
	}
}

func TestEndSession_DropsSnapshot(t *testing.T) {
	prof := profile.Default(uuid.New(), "ana@example.com", "Ana")
	cache := newMemCache()
	svc := newTestService(newMemRepo(prof), cache)
	ctx := context.Background()

	if _, err := svc.Get(ctx, prof.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	svc.EndSession(ctx, prof.ID)

	if _, ok := cache.entries[snapshotKey(prof.ID)]; ok {
		t.Fatalf("snapshot survived sign-out")
	}
}
