package assistant

import (
	"strings"

	"synerh/internal/domain/chat"
)

// Keyword groups the reply text is scanned for. Each group that matches
// triggers a fixed tag list; the tags are display-only and are not derived
// from the catalog or the user profile.
var (
	questKeywords  = []string{"quest"}
	courseKeywords = []string{"trilha", "curso"}
	skillKeywords  = []string{"skill"}

	questTags  = []string{"1", "2"}
	courseTags = []string{"1", "2"}
	skillTags  = []string{"Programação", "Comunicação", "Resolução de problemas"}
)

// ExtractRecommendations tags an assistant reply by case-insensitive
// substring search. Stateless; returns an empty set when nothing matches.
func ExtractRecommendations(text string) chat.Recommendations {
	lower := strings.ToLower(text)
	rec := chat.Recommendations{}

	if containsAny(lower, questKeywords) {
		rec.Quests = append([]string(nil), questTags...)
	}
	if containsAny(lower, courseKeywords) {
		rec.Courses = append([]string(nil), courseTags...)
	}
	if containsAny(lower, skillKeywords) {
		rec.Skills = append([]string(nil), skillTags...)
	}

	return rec
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
