package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"synerh/internal/domain/chat"
	"synerh/internal/domain/profile"
	"synerh/internal/infrastructure/gemini"

	"github.com/google/uuid"
)

const (
	msgPromptForInput = "Me manda uma dúvida ou contexto sobre sua carreira, quests ou trilhas que eu te ajudo 😉"
	msgNotConfigured  = "A IA ainda não foi configurada no ambiente. Peça para o time do projeto adicionar a chave da Gemini API."
	msgTransportFail  = "Deu uma exceção na comunicação com a Gemini. Verifica sua conexão ou configuração do projeto e tenta novamente."
	msgEmptyReply     = "Não consegui gerar uma resposta agora. Pode tentar perguntar de outro jeito?"

	promptTemplate = `Você é um AI Coach da plataforma Synerh Mobile 2030+.

Ajude o usuário com:
- carreira,
- quests profissionais,
- trilhas de requalificação,
- uso estratégico de reputação e tokens RSK.

Responda em tom amigável, direto, e conectado ao contexto da Synerh.

Perfil do usuário (JSON): %s

Pergunta do usuário: %s`
)

// Generator is the outbound text-generation contract. Satisfied by
// *gemini.Client.
type Generator interface {
	IsConfigured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Reply is the uniform chat response: failures become canned messages, the
// call itself never errors.
type Reply struct {
	Message         string                `json:"message"`
	Recommendations *chat.Recommendations `json:"recommendations,omitempty"`
}

type Service struct {
	gen    Generator
	log    chat.Log
	logger *log.Logger
}

func NewService(gen Generator, chatLog chat.Log, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{gen: gen, log: chatLog, logger: logger}
}

// snapshot is the profile slice embedded in the prompt.
type snapshot struct {
	Name       string   `json:"name,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Reputation int      `json:"reputation"`
	Tokens     int      `json:"tokens"`
}

// GetChatResponse runs one chat turn. Blank input and missing
// configuration short-circuit without a network call; every remote failure
// is converted to a canned message.
func (s *Service) GetChatResponse(ctx context.Context, userID uuid.UUID, message string, prof profile.Profile) (Reply, error) {
	reply := s.resolve(ctx, message, prof)

	if s.log != nil && userID != uuid.Nil {
		now := time.Now().UTC()
		userMsg := chat.Message{Role: chat.RoleUser, Text: message, Timestamp: now}
		assistantMsg := chat.Message{
			Role:            chat.RoleAssistant,
			Text:            reply.Message,
			Timestamp:       now,
			Recommendations: reply.Recommendations,
		}
		if err := s.log.Append(ctx, userID, userMsg, assistantMsg); err != nil {
			s.logger.Printf("[Assistant] chat log append failed: %v", err)
		}
	}

	return reply, nil
}

func (s *Service) resolve(ctx context.Context, message string, prof profile.Profile) Reply {
	if strings.TrimSpace(message) == "" {
		return Reply{Message: msgPromptForInput}
	}

	if s.gen == nil || !s.gen.IsConfigured() {
		s.logger.Printf("[Assistant] GEMINI_API_KEY not configured")
		return Reply{Message: msgNotConfigured}
	}

	text, err := s.gen.GenerateContent(ctx, s.buildPrompt(message, prof))
	if err != nil {
		var statusErr *gemini.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Printf("[Assistant] Gemini call failed: status=%d", statusErr.StatusCode)
			return Reply{Message: fmt.Sprintf(
				"Tive um problema técnico ao falar com a IA da Gemini (erro %d). Tenta de novo em alguns instantes ou verifica a configuração da chave/modelo.",
				statusErr.StatusCode,
			)}
		}
		s.logger.Printf("[Assistant] Gemini call failed: %v", err)
		return Reply{Message: msgTransportFail}
	}

	if text == "" {
		text = msgEmptyReply
	}

	rec := ExtractRecommendations(text)
	reply := Reply{Message: text}
	if !rec.IsEmpty() {
		reply.Recommendations = &rec
	}
	return reply
}

func (s *Service) buildPrompt(message string, prof profile.Profile) string {
	snap, err := json.Marshal(snapshot{
		Name:       prof.Name,
		Skills:     prof.Skills,
		Experience: prof.Experience,
		Reputation: prof.Reputation,
		Tokens:     prof.Tokens,
	})
	if err != nil {
		snap = []byte("{}")
	}
	return fmt.Sprintf(promptTemplate, snap, message)
}

// History returns the append-only conversation for a user.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]chat.Message, error) {
	if s.log == nil {
		return nil, nil
	}
	return s.log.History(ctx, userID)
}
