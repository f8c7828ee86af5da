package memory

import (
	"context"
	"sync"

	"synerh/internal/domain/quest"
)

// QuestStore keeps the quest marketplace in process memory, seeded once at
// startup. Mutations replace the stored entity; seed order is preserved.
type QuestStore struct {
	mu     sync.RWMutex
	order  []string
	quests map[string]quest.Quest
}

func NewQuestStore(seed []quest.Quest) *QuestStore {
	s := &QuestStore{
		order:  make([]string, 0, len(seed)),
		quests: make(map[string]quest.Quest, len(seed)),
	}
	for _, q := range seed {
		if _, ok := s.quests[q.ID]; ok {
			continue
		}
		s.order = append(s.order, q.ID)
		s.quests[q.ID] = q
	}
	return s
}

func (s *QuestStore) List(ctx context.Context) ([]quest.Quest, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]quest.Quest, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.quests[id])
	}
	return out, nil
}

func (s *QuestStore) GetByID(ctx context.Context, id string) (quest.Quest, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quests[id]
	if !ok {
		return quest.Quest{}, quest.ErrNotFound
	}
	return q, nil
}

func (s *QuestStore) Replace(ctx context.Context, q quest.Quest) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quests[q.ID]; !ok {
		return quest.ErrNotFound
	}
	s.quests[q.ID] = q
	return nil
}
