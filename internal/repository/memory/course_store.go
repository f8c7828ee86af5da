package memory

import (
	"context"
	"sync"

	"synerh/internal/domain/course"
)

// CourseStore keeps the learning catalog in process memory, seeded once at
// startup.
type CourseStore struct {
	mu      sync.RWMutex
	order   []string
	courses map[string]course.Course
}

func NewCourseStore(seed []course.Course) *CourseStore {
	s := &CourseStore{
		order:   make([]string, 0, len(seed)),
		courses: make(map[string]course.Course, len(seed)),
	}
	for _, c := range seed {
		if _, ok := s.courses[c.ID]; ok {
			continue
		}
		s.order = append(s.order, c.ID)
		s.courses[c.ID] = c
	}
	return s
}

func (s *CourseStore) List(ctx context.Context) ([]course.Course, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]course.Course, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.courses[id])
	}
	return out, nil
}

func (s *CourseStore) GetByID(ctx context.Context, id string) (course.Course, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	return c, nil
}

func (s *CourseStore) Replace(ctx context.Context, c course.Course) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[c.ID]; !ok {
		return course.ErrNotFound
	}
	s.courses[c.ID] = c
	return nil
}
