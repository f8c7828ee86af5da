package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"synerh/internal/domain/quest"
)

func TestQuestStore_ListPreservesSeedOrder(t *testing.T) {
	store := NewQuestStore(SeedQuests(time.Now().UTC()))

	quests, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(quests) != 3 {
		t.Fatalf("expected 3 seeded quests, got %d", len(quests))
	}
	for i, q := range quests {
		if want := SeedQuests(time.Now())[i].ID; q.ID != want {
			t.Fatalf("quest %d: id %q, want %q", i, q.ID, want)
		}
	}
}

func TestQuestStore_GetByID_NotFound(t *testing.T) {
	store := NewQuestStore(nil)

	_, err := store.GetByID(context.Background(), "missing")
	if !errors.Is(err, quest.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuestStore_Replace(t *testing.T) {
	store := NewQuestStore(SeedQuests(time.Now().UTC()))

	q, _ := store.GetByID(context.Background(), "1")
	q.IsAccepted = true
	if err := store.Replace(context.Background(), q); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, _ := store.GetByID(context.Background(), "1")
	if !got.IsAccepted {
		t.Fatalf("replace did not persist the mutation")
	}

	if err := store.Replace(context.Background(), quest.Quest{ID: "missing"}); !errors.Is(err, quest.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}
