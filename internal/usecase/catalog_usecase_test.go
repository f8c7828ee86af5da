package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"synerh/internal/domain/course"
	"synerh/internal/domain/quest"
	"synerh/internal/repository/memory"
)

func newTestCatalog(quests []quest.Quest, courses []course.Course) *Catalog {
	return NewCatalog(memory.NewQuestStore(quests), memory.NewCourseStore(courses), nil, nil)
}

func seededCatalog() *Catalog {
	return newTestCatalog(memory.SeedQuests(time.Now().UTC()), memory.SeedCourses())
}

func TestAcceptQuest_IdempotentAndPreservesFields(t *testing.T) {
	uc := seededCatalog()
	ctx := context.Background()

	before, err := uc.GetQuest(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := uc.AcceptQuest(ctx, "1")
		if err != nil {
			t.Fatalf("accept %d: unexpected err: %v", i, err)
		}
		if !got.IsAccepted {
			t.Fatalf("accept %d: IsAccepted = false", i)
		}
	}

	after, _ := uc.GetQuest(ctx, "1")
	before.IsAccepted = true
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("accept changed fields other than the flag:\nbefore=%+v\nafter=%+v", before, after)
	}
}

func TestAcceptQuest_UnknownID(t *testing.T) {
	uc := seededCatalog()

	_, err := uc.AcceptQuest(context.Background(), "999")
	if !errors.Is(err, quest.ErrNotFound) {
		t.Fatalf("expected quest.ErrNotFound, got %v", err)
	}
}

func TestEnrollCourse_Idempotent(t *testing.T) {
	uc := seededCatalog()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := uc.EnrollCourse(ctx, "2")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.IsEnrolled {
			t.Fatalf("IsEnrolled = false")
		}
	}
}

func TestUpdateCourseProgress_SetsExactValue(t *testing.T) {
	uc := seededCatalog()

	got, err := uc.UpdateCourseProgress(context.Background(), "1", 42)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Progress != 42 {
		t.Fatalf("progress = %d, want 42", got.Progress)
	}
}

func TestUpdateCourseProgress_Clamps(t *testing.T) {
	uc := seededCatalog()
	ctx := context.Background()

	got, _ := uc.UpdateCourseProgress(ctx, "1", 150)
	if got.Progress != 100 {
		t.Fatalf("progress = %d, want clamp to 100", got.Progress)
	}

	got, _ = uc.UpdateCourseProgress(ctx, "1", -5)
	if got.Progress != 0 {
		t.Fatalf("progress = %d, want clamp to 0", got.Progress)
	}
}

func TestUpdateCourseProgress_UnknownID(t *testing.T) {
	uc := seededCatalog()

	_, err := uc.UpdateCourseProgress(context.Background(), "999", 10)
	if !errors.Is(err, course.ErrNotFound) {
		t.Fatalf("expected course.ErrNotFound, got %v", err)
	}
}

func TestRecommendedQuests_ExcludesAcceptedAndCapsAtThree(t *testing.T) {
	quests := make([]quest.Quest, 0, 5)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		quests = append(quests, quest.Quest{ID: id, Title: "q-" + id})
	}
	uc := newTestCatalog(quests, nil)
	ctx := context.Background()

	if _, err := uc.AcceptQuest(ctx, "a"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	rec, err := uc.RecommendedQuests(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(rec))
	}
	for _, q := range rec {
		if q.IsAccepted {
			t.Fatalf("recommended quest %q is accepted", q.ID)
		}
	}
	if rec[0].ID != "b" || rec[1].ID != "c" || rec[2].ID != "d" {
		t.Fatalf("recommendations out of seed order: %v", rec)
	}
}

func TestRecommendedCourses_ExcludesEnrolled(t *testing.T) {
	uc := seededCatalog()
	ctx := context.Background()

	if _, err := uc.EnrollCourse(ctx, "1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	rec, err := uc.RecommendedCourses(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(rec))
	}
	for _, c := range rec {
		if c.ID == "1" {
			t.Fatalf("enrolled course leaked into recommendations")
		}
	}
}
