package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"symptom-assistant/internal/llm"
	"symptom-assistant/pkg"

	"github.com/google/uuid"
)

// ErrEmptyInput is returned when the symptoms are empty or whitespace.  The
// completion service and the record store are not touched.
var ErrEmptyInput = errors.New("empty input")

// Recorder persists exchanges.  *db.Recorder implements it.
type Recorder interface {
	Log(ctx context.Context, symptoms, diagnosis string) error
}

// ChatService runs one symptom round-trip: ask the model, post-process the
// answer and record the exchange.  Calls are independent of each other;
// there is no conversation history.
type ChatService struct {
	LLM      llm.Client
	Recorder Recorder
	Pipeline Pipeline
	Logger   *slog.Logger
}

// NewChatService constructs a ChatService with the default answer budget.
func NewChatService(client llm.Client, recorder Recorder) *ChatService {
	return &ChatService{
		LLM:      client,
		Recorder: recorder,
		Pipeline: NewPipeline(DefaultMaxChars),
		Logger:   slog.Default(),
	}
}

// Result is the outcome of Diagnose.
type Result struct {
	Exchange pkg.Exchange
	// Display is the text to show after the assistant prefix.
	Display string
	// Failed reports that the model call failed and Display is the
	// localized error message.
	Failed bool
}

// Diagnose sends symptoms to the model in the language of loc and returns
// the text to display.  A failed model call is not an error: the result
// carries the localized error message plus disclaimer, and the log row gets
// pkg.ErrorMarker instead of the message.  A failure to write the log row is
// returned alongside the otherwise valid result.
func (s *ChatService) Diagnose(ctx context.Context, loc Locale, symptoms string) (Result, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return Result{}, ErrEmptyInput
	}
	id := uuid.New()
	logger := s.logger().With("exchange_id", id.String(), "locale", loc.ID)

	display, logged, failed := s.ask(ctx, loc, symptoms, logger)

	res := Result{
		Exchange: pkg.Exchange{
			ID:            id,
			Locale:        loc.ID,
			UserText:      symptoms,
			AssistantText: display,
			CreatedAt:     time.Now(),
		},
		Display: display,
		Failed:  failed,
	}
	if err := s.Recorder.Log(ctx, symptoms, logged); err != nil {
		logger.Error("failed to record exchange", "error", err)
		return res, err
	}
	logger.Info("exchange recorded", "failed", failed)
	return res, nil
}

// ask returns the display text, the text to persist, and whether the model
// call failed.
func (s *ChatService) ask(ctx context.Context, loc Locale, symptoms string, logger *slog.Logger) (string, string, bool) {
	reply, err := s.LLM.Complete(ctx, llm.Request{
		SystemPrompt: loc.SystemPrompt,
		UserMessage:  loc.SymptomsPrefix + ": " + symptoms,
	})
	var text string
	if err == nil {
		text, err = llm.Resolve(reply)
	}
	if err != nil {
		logger.Warn("completion failed", "error", err)
		return loc.ErrorMessage + " " + loc.Disclaimer, pkg.ErrorMarker, true
	}
	display := s.Pipeline.Process(text, loc.Disclaimer)
	return display, display, false
}

func (s *ChatService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
