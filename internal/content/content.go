// Package content holds the static platform content the client renders:
// onboarding slides, category lists and the skills catalog.
package content

type OnboardingSlide struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Categories struct {
	Quests  []string `json:"quests"`
	Courses []string `json:"courses"`
}

func OnboardingSlides() []OnboardingSlide {
	return []OnboardingSlide{
		{
			Title:       "Bem-vindo ao Synerh 2030+",
			Subtitle:    "A rede profissional do futuro",
			Description: "Conecte-se, aprenda e cresça em um ecossistema descentralizado de oportunidades.",
			Icon:        "🚀",
		},
		{
			Title:       "Quests Inteligentes",
			Subtitle:    "Contratos gamificados",
			Description: "Aceite desafios, complete projetos e ganhe tokens enquanto constrói sua reputação.",
			Icon:        "⚡",
		},
		{
			Title:       "IA Coach Pessoal",
			Subtitle:    "Recomendações personalizadas",
			Description: "Nossa IA analisa seu perfil e sugere as melhores oportunidades para seu crescimento.",
			Icon:        "🤖",
		},
		{
			Title:       "Requalificação Contínua",
			Subtitle:    "Aprenda sempre",
			Description: "Acesse cursos exclusivos e mantenha-se atualizado com as tendências do mercado.",
			Icon:        "📈",
		},
		{
			Title:       "Sistema de Reputação",
			Subtitle:    "Construa sua credibilidade",
			Description: "Ganhe tokens, aumente sua reputação e desbloqueie oportunidades exclusivas.",
			Icon:        "💎",
		},
	}
}

func CategoryLists() Categories {
	return Categories{
		Quests: []string{
			"Desenvolvimento",
			"Data Science",
			"Design",
			"Marketing",
			"Consultoria",
			"IA & Machine Learning",
			"Sustentabilidade",
			"Blockchain",
		},
		Courses: []string{
			"Inteligência Artificial",
			"Desenvolvimento Web",
			"Desenvolvimento Mobile",
			"Data Science",
			"UX/UI Design",
			"Sustentabilidade",
			"Blockchain",
			"Marketing Digital",
		},
	}
}

func SkillsCatalog() []string {
	return []string{
		"React", "Vue.js", "Angular", "Node.js", "Python", "JavaScript", "TypeScript",
		"Java", "C#", "PHP", "Ruby", "Go", "Rust", "Swift", "Kotlin",
		"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas",
		"NumPy", "Scikit-learn", "SQL", "MongoDB", "PostgreSQL",
		"Figma", "Adobe XD", "Sketch", "Photoshop", "Illustrator", "UX/UI Design",
		"Design System", "Prototipagem", "User Research",
		"Marketing Digital", "SEO", "Google Analytics", "Sustentabilidade",
		"ESG", "Blockchain", "Ethereum", "Smart Contracts", "DevOps",
		"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	}
}
