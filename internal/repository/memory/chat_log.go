package memory

import (
	"context"
	"sync"

	"synerh/internal/domain/chat"

	"github.com/google/uuid"
)

// ChatLog holds per-user assistant conversations for the lifetime of the
// process. Nothing is persisted.
type ChatLog struct {
	mu       sync.RWMutex
	messages map[uuid.UUID][]chat.Message
}

func NewChatLog() *ChatLog {
	return &ChatLog{messages: make(map[uuid.UUID][]chat.Message)}
}

func (l *ChatLog) Append(ctx context.Context, userID uuid.UUID, msgs ...chat.Message) error {
	_ = ctx
	if len(msgs) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages[userID] = append(l.messages[userID], msgs...)
	return nil
}

func (l *ChatLog) History(ctx context.Context, userID uuid.UUID) ([]chat.Message, error) {
	_ = ctx
	l.mu.RLock()
	defer l.mu.RUnlock()

	msgs := l.messages[userID]
	out := make([]chat.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
