package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"nexusbot/internal/ai"
	"nexusbot/internal/cache"
	"nexusbot/internal/config"
	"nexusbot/internal/model"
	"nexusbot/internal/store"
)

var (
	ErrMissingAPIKey = errors.New("missing api key")
	ErrMissingQuery  = errors.New("missing query")
)

type ChatService struct {
	store         *store.DocumentStore
	conversations *cache.Conversations
	llmClient     *ai.Client
	llm           config.LLMConfig
	modes         map[string]config.Mode
	defaultMode   string
	historyLimit  int
}

func NewChatService(docStore *store.DocumentStore, conversations *cache.Conversations, cfg *config.Config) *ChatService {
	historyLimit := cfg.LLM.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = 10
	}
	defaultMode := cfg.DefaultMode
	if _, ok := cfg.Modes[defaultMode]; !ok {
		defaultMode = "general"
	}
	return &ChatService{
		store:         docStore,
		conversations: conversations,
		llmClient:     ai.NewClient(time.Duration(cfg.LLM.TimeoutSeconds) * time.Second),
		llm:           cfg.LLM,
		modes:         cfg.Modes,
		defaultMode:   defaultMode,
		historyLimit:  historyLimit,
	}
}

type SendInput struct {
	APIKey string
	Query  string
	Mode   string
}

type SendResult struct {
	Reply         string
	Mode          string
	HistoryLength int
}

// Send appends the query to the session history, asks the model for a reply,
// and persists the extended history. A failed completion leaves the stored
// history untouched, so the user can simply retry.
func (s *ChatService) Send(ctx context.Context, sessionID string, input SendInput) (*SendResult, error) {
	apiKey := strings.TrimSpace(input.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(s.llm.APIKey)
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, ErrMissingQuery
	}

	mode := strings.TrimSpace(input.Mode)
	if _, ok := s.modes[mode]; !ok {
		mode = s.defaultMode
	}

	history := s.conversations.History(sessionID)
	history = append(history, model.Message{Role: "user", Content: query, CreatedAt: time.Now()})

	cfg := ai.ChatConfig{
		BaseURL:     s.llm.BaseURL,
		APIKey:      apiKey,
		Model:       s.llm.Model,
		MaxTokens:   s.llm.MaxTokens,
		Temperature: s.llm.Temperature,
		SiteURL:     s.llm.SiteURL,
		SiteName:    s.llm.SiteName,
	}
	reply, err := s.llmClient.Complete(ctx, cfg, s.buildPromptMessages(history, mode))
	if err != nil {
		return nil, err
	}

	history = append(history, model.Message{Role: "assistant", Content: reply, CreatedAt: time.Now()})
	s.conversations.Set(sessionID, history)

	return &SendResult{
		Reply:         reply,
		Mode:          mode,
		HistoryLength: len(history),
	}, nil
}

// History returns the stored conversation for the session.
func (s *ChatService) History(sessionID string) []model.Message {
	return s.conversations.History(sessionID)
}

// Clear forgets the conversation for the session. Documents are unaffected.
func (s *ChatService) Clear(sessionID string) {
	s.conversations.Clear(sessionID)
}

// Modes returns the configured analysis modes.
func (s *ChatService) Modes() map[string]config.Mode {
	return s.modes
}

func (s *ChatService) DefaultMode() string {
	return s.defaultMode
}

// buildPromptMessages turns the history tail into the completion request:
// the assembled system prompt followed by the last historyLimit exchanges.
func (s *ChatService) buildPromptMessages(history []model.Message, mode string) []ai.ChatMessage {
	window := history
	if max := s.historyLimit * 2; len(window) > max {
		window = window[len(window)-max:]
	}

	system := BuildSystemPrompt(s.modes[mode].Instruction, s.store.KnowledgeBase())
	messages := make([]ai.ChatMessage, 0, len(window)+1)
	messages = append(messages, ai.ChatMessage{Role: "system", Content: system})
	for _, item := range window {
		messages = append(messages, ai.ChatMessage{Role: item.Role, Content: item.Content})
	}
	return messages
}
