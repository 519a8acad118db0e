package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"esgchat/ai"
	"esgchat/internal"
	"esgchat/models"
	"esgchat/ports"
)

// ChatService runs the query pipeline for one user question: schema
// summary → synthesis → guard → execute → summarize. Each stage converts
// its own failure into a structured outcome; Process never returns an
// error.
type ChatService struct {
	store  ports.Store
	synth  *ai.Synthesizer
	logger *internal.Logger
	log    *internal.Logger
}

// NewChatService creates a chat service.
func NewChatService(store ports.Store, synth *ai.Synthesizer, logger *internal.Logger) *ChatService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ChatService{
		store:  store,
		synth:  synth,
		logger: logger,
		log:    logger.Named("chat"),
	}
}

// Process answers one natural-language question. The returned response
// always carries the original message; Timestamp is left for the
// transport layer to stamp.
func (s *ChatService) Process(ctx context.Context, message string) *models.ChatResponse {
	requestID := uuid.New().String()[:8]
	s.log.Info("[%s] processing question: %s", requestID, message)

	schema := ai.SummarizeSchema(ctx, s.store, s.logger)

	query, ok := s.synth.Synthesize(ctx, message, schema)
	if !ok {
		s.log.Warn("[%s] no query produced", requestID)
		return &models.ChatResponse{
			Success: false,
			Message: message,
			Error:   "Could not generate SQL query from your message",
		}
	}
	s.log.Info("[%s] generated query: %s", requestID, query)

	if err := ai.ValidateReadOnly(query); err != nil {
		s.log.Warn("[%s] generated query rejected: %v", requestID, err)
		return &models.ChatResponse{
			Success:  false,
			Message:  message,
			SQLQuery: query,
			Error:    fmt.Sprintf("Generated query was rejected: %v", err),
		}
	}

	results, err := s.store.ExecuteQuery(ctx, query)
	if err != nil {
		s.log.Error("[%s] query execution failed: %v", requestID, err)
		return &models.ChatResponse{
			Success:  false,
			Message:  message,
			SQLQuery: query,
			Error:    fmt.Sprintf("Database query failed: %v", err),
		}
	}
	s.log.Info("[%s] query returned %d rows", requestID, len(results))

	return &models.ChatResponse{
		Success:   true,
		Message:   message,
		Response:  ai.SummarizeResults(message, query, results),
		SQLQuery:  query,
		Results:   results,
		TotalRows: len(results),
	}
}

// Suggestions returns canned starter questions.
func (s *ChatService) Suggestions() []string {
	return ai.QuerySuggestions()
}
