package memory

import (
	"time"

	"synerh/internal/domain/course"
	"synerh/internal/domain/quest"
)

// SeedQuests returns the fixed quest marketplace loaded at process start.
func SeedQuests(now time.Time) []quest.Quest {
	return []quest.Quest{
		{
			ID:          "1",
			Title:       "Desenvolvimento de Dashboard IA",
			Description: "Criar dashboard interativo com visualizações de dados usando React e D3.js",
			Category:    "Desenvolvimento",
			Difficulty:  quest.DifficultyAvancado,
			Reward:      500,
			Duration:    "2 semanas",
			Skills:      []string{"React", "D3.js", "TypeScript", "IA"},
			Company:     "TechCorp",
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Análise de Dados Sustentabilidade",
			Description: "Analisar dados de consumo energético e propor soluções sustentáveis",
			Category:    "Data Science",
			Difficulty:  quest.DifficultyIntermediario,
			Reward:      300,
			Duration:    "1 semana",
			Skills:      []string{"Python", "Pandas", "Sustentabilidade"},
			Company:     "GreenTech",
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "UX/UI Design Mobile",
			Description: "Redesign de aplicativo mobile com foco em acessibilidade",
			Category:    "Design",
			Difficulty:  quest.DifficultyIntermediario,
			Reward:      400,
			Duration:    "10 dias",
			Skills:      []string{"Figma", "UX/UI", "Mobile Design"},
			Company:     "DesignStudio",
			CreatedAt:   now,
		},
	}
}

// SeedCourses returns the fixed learning catalog loaded at process start.
func SeedCourses() []course.Course {
	return []course.Course{
		{
			ID:          "1",
			Title:       "IA Generativa para Negócios",
			Description: "Aprenda a implementar soluções de IA generativa em contextos empresariais",
			Category:    "Inteligência Artificial",
			Duration:    "40 horas",
			Level:       course.LevelIntermediario,
			Skills:      []string{"IA", "Machine Learning", "Negócios"},
			Instructor:  "Dr. Ana Silva",
		},
		{
			ID:          "2",
			Title:       "Desenvolvimento Sustentável",
			Description: "Tecnologias verdes e práticas de desenvolvimento sustentável",
			Category:    "Sustentabilidade",
			Duration:    "30 horas",
			Level:       course.LevelIniciante,
			Skills:      []string{"Sustentabilidade", "Green Tech", "ESG"},
			Instructor:  "Prof. Carlos Green",
		},
		{
			ID:          "3",
			Title:       "React Native Avançado",
			Description: "Desenvolvimento mobile multiplataforma com React Native",
			Category:    "Desenvolvimento Mobile",
			Duration:    "50 horas",
			Level:       course.LevelAvancado,
			Skills:      []string{"React Native", "Mobile", "JavaScript"},
			Instructor:  "Maria Santos",
		},
	}
}
