package ws

import (
	"encoding/json"
	"time"

	"synerh/internal/domain/course"
	"synerh/internal/domain/quest"
)

const (
	EventQuestAccepted  = "quest_accepted"
	EventCourseEnrolled = "course_enrolled"
	EventCourseProgress = "course_progress"
)

type CatalogEvent struct {
	Type      string `json:"type"`
	EntityID  string `json:"entity_id"`
	Progress  *int   `json:"progress,omitempty"`
	Timestamp string `json:"timestamp"`
}

// CatalogNotifier broadcasts catalog mutations over the hub. It satisfies
// the catalog usecase's notifier contract.
type CatalogNotifier struct {
	hub *Hub
}

func NewCatalogNotifier(hub *Hub) *CatalogNotifier {
	return &CatalogNotifier{hub: hub}
}

func (n *CatalogNotifier) QuestAccepted(q quest.Quest) {
	n.emit(CatalogEvent{Type: EventQuestAccepted, EntityID: q.ID})
}

func (n *CatalogNotifier) CourseEnrolled(c course.Course) {
	n.emit(CatalogEvent{Type: EventCourseEnrolled, EntityID: c.ID})
}

func (n *CatalogNotifier) CourseProgressUpdated(c course.Course) {
	progress := c.Progress
	n.emit(CatalogEvent{Type: EventCourseProgress, EntityID: c.ID, Progress: &progress})
}

func (n *CatalogNotifier) emit(evt CatalogEvent) {
	if n == nil || n.hub == nil {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
