package usecase

import (
	"context"
	"errors"
	"log"

	"synerh/internal/domain/course"
	"synerh/internal/domain/quest"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// recommendedLimit caps the derived "recommended" views. There is no
// scoring: not-yet-accepted/enrolled entities in seed order, first N.
const recommendedLimit = 3

// CatalogNotifier receives catalog mutation events for delivery-layer
// fan-out. The stores themselves emit nothing.
type CatalogNotifier interface {
	QuestAccepted(q quest.Quest)
	CourseEnrolled(c course.Course)
	CourseProgressUpdated(c course.Course)
}

type Catalog struct {
	quests   quest.Repository
	courses  course.Repository
	notifier CatalogNotifier
	logger   *log.Logger
}

func NewCatalog(quests quest.Repository, courses course.Repository, notifier CatalogNotifier, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{quests: quests, courses: courses, notifier: notifier, logger: logger}
}

func (uc *Catalog) ListQuests(ctx context.Context) ([]quest.Quest, error) {
	return uc.quests.List(ctx)
}

func (uc *Catalog) GetQuest(ctx context.Context, id string) (quest.Quest, error) {
	return uc.quests.GetByID(ctx, id)
}

// AcceptQuest flips the acceptance flag, one-way. Accepting an already
// accepted quest is a no-op and leaves every other field untouched.
func (uc *Catalog) AcceptQuest(ctx context.Context, id string) (quest.Quest, error) {
	q, err := uc.quests.GetByID(ctx, id)
	if err != nil {
		return quest.Quest{}, err
	}
	if q.IsAccepted {
		return q, nil
	}

	q.IsAccepted = true
	if err := uc.quests.Replace(ctx, q); err != nil {
		return quest.Quest{}, err
	}

	if uc.notifier != nil {
		uc.notifier.QuestAccepted(q)
	}
	return q, nil
}

func (uc *Catalog) ListCourses(ctx context.Context) ([]course.Course, error) {
	return uc.courses.List(ctx)
}

func (uc *Catalog) GetCourse(ctx context.Context, id string) (course.Course, error) {
	return uc.courses.GetByID(ctx, id)
}

func (uc *Catalog) EnrollCourse(ctx context.Context, id string) (course.Course, error) {
	c, err := uc.courses.GetByID(ctx, id)
	if err != nil {
		return course.Course{}, err
	}
	if c.IsEnrolled {
		return c, nil
	}

	c.IsEnrolled = true
	if err := uc.courses.Replace(ctx, c); err != nil {
		return course.Course{}, err
	}

	if uc.notifier != nil {
		uc.notifier.CourseEnrolled(c)
	}
	return c, nil
}

// UpdateCourseProgress sets the absolute progress value, clamped to
// [0, 100].
func (uc *Catalog) UpdateCourseProgress(ctx context.Context, id string, progress int) (course.Course, error) {
	c, err := uc.courses.GetByID(ctx, id)
	if err != nil {
		return course.Course{}, err
	}

	c.Progress = clampProgress(progress)
	if err := uc.courses.Replace(ctx, c); err != nil {
		return course.Course{}, err
	}

	if uc.notifier != nil {
		uc.notifier.CourseProgressUpdated(c)
	}
	return c, nil
}

// RecommendedQuests returns up to 3 not-yet-accepted quests in seed order.
func (uc *Catalog) RecommendedQuests(ctx context.Context) ([]quest.Quest, error) {
	all, err := uc.quests.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]quest.Quest, 0, recommendedLimit)
	for _, q := range all {
		if q.IsAccepted {
			continue
		}
		out = append(out, q)
		if len(out) == recommendedLimit {
			break
		}
	}
	return out, nil
}

// RecommendedCourses returns up to 3 not-yet-enrolled courses in seed
// order.
func (uc *Catalog) RecommendedCourses(ctx context.Context) ([]course.Course, error) {
	all, err := uc.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]course.Course, 0, recommendedLimit)
	for _, c := range all {
		if c.IsEnrolled {
			continue
		}
		out = append(out, c)
		if len(out) == recommendedLimit {
			break
		}
	}
	return out, nil
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
