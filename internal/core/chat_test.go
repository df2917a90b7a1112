package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"symptom-assistant/internal/llm"
	"symptom-assistant/pkg"

	openai "github.com/sashabaranov/go-openai"
)

type fakeLLM struct {
	reply llm.Reply
	err   error
	calls int
	last  llm.Request
}

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (llm.Reply, error) {
	f.calls++
	f.last = req
	return f.reply, f.err
}

type memRecorder struct {
	rows [][2]string
	err  error
}

func (m *memRecorder) Log(_ context.Context, symptoms, diagnosis string) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, [2]string{symptoms, diagnosis})
	return nil
}

func completion(content string) llm.Reply {
	return llm.StructuredReply{Response: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Role: "assistant", Content: content}}},
	}}
}

func newTestService(client llm.Client, rec Recorder) *ChatService {
	svc := NewChatService(client, rec)
	svc.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc
}

func mustLocale(t *testing.T, id string) Locale {
	t.Helper()
	loc, err := LookupLocale(id)
	if err != nil {
		t.Fatal(err)
	}
	return loc
}

func TestDiagnoseStructuredReply(t *testing.T) {
	ru := mustLocale(t, "ru")
	client := &fakeLLM{reply: completion("**Грипп** вероятно :mask:")}
	rec := &memRecorder{}
	svc := newTestService(client, rec)

	res, err := svc.Diagnose(context.Background(), ru, "  кашель, температура 38  ")
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	want := "Грипп вероятно. " + ru.Disclaimer
	if res.Display != want {
		t.Errorf("Display = %q, want %q", res.Display, want)
	}
	if res.Failed {
		t.Error("Failed = true for a good reply")
	}
	if client.last.SystemPrompt != ru.SystemPrompt {
		t.Error("system prompt does not come from the locale")
	}
	if client.last.UserMessage != "Симптомы: кашель, температура 38" {
		t.Errorf("UserMessage = %q", client.last.UserMessage)
	}
	if len(rec.rows) != 1 || rec.rows[0] != [2]string{"кашель, температура 38", want} {
		t.Errorf("recorded rows = %q", rec.rows)
	}
	if res.Exchange.UserText != "кашель, температура 38" || res.Exchange.Locale != "ru" {
		t.Errorf("Exchange = %+v", res.Exchange)
	}
}

func TestDiagnoseOpaqueReply(t *testing.T) {
	kk := mustLocale(t, "kk")
	client := &fakeLLM{reply: llm.OpaqueReply{Body: "Тұмау болуы мүмкін."}}
	rec := &memRecorder{}
	svc := newTestService(client, rec)

	res, err := svc.Diagnose(context.Background(), kk, "жөтел")
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if want := "Тұмау болуы мүмкін. " + kk.Disclaimer; res.Display != want {
		t.Errorf("Display = %q, want %q", res.Display, want)
	}
	if client.last.UserMessage != "Белгілер: жөтел" {
		t.Errorf("UserMessage = %q", client.last.UserMessage)
	}
}

func TestDiagnoseLongReplyIsBounded(t *testing.T) {
	ru := mustLocale(t, "ru")
	svc := newTestService(&fakeLLM{reply: completion(strings.Repeat("слово ", 200))}, &memRecorder{})
	svc.Pipeline = NewPipeline(50)

	res, err := svc.Diagnose(context.Background(), ru, "боль")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(res.Display, ru.Disclaimer) {
		t.Errorf("Display = %q lacks disclaimer", res.Display)
	}
	body := strings.TrimSuffix(res.Display, ". "+ru.Disclaimer)
	if n := len([]rune(body)); n > 50 {
		t.Errorf("answer body is %d runes, budget 50", n)
	}
}

func TestDiagnoseUpstreamFailure(t *testing.T) {
	ru := mustLocale(t, "ru")
	tests := []struct {
		name   string
		client *fakeLLM
	}{
		{"error", &fakeLLM{err: errors.New("connection refused")}},
		{"no choices", &fakeLLM{reply: llm.StructuredReply{}}},
		{"nil reply", &fakeLLM{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &memRecorder{}
			res, err := newTestService(tc.client, rec).Diagnose(context.Background(), ru, "кашель")
			if err != nil {
				t.Fatalf("Diagnose: %v", err)
			}
			if want := ru.ErrorMessage + " " + ru.Disclaimer; res.Display != want {
				t.Errorf("Display = %q, want %q", res.Display, want)
			}
			if strings.Contains(res.Display, "connection refused") {
				t.Error("raw error leaked to display")
			}
			if !res.Failed {
				t.Error("Failed = false")
			}
			if len(rec.rows) != 1 || rec.rows[0][1] != pkg.ErrorMarker {
				t.Errorf("recorded rows = %q, want diagnosis %q", rec.rows, pkg.ErrorMarker)
			}
		})
	}
}

func TestDiagnoseEmptyInput(t *testing.T) {
	client := &fakeLLM{reply: completion("x")}
	rec := &memRecorder{}
	_, err := newTestService(client, rec).Diagnose(context.Background(), mustLocale(t, "ru"), " \t\n")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if client.calls != 0 || len(rec.rows) != 0 {
		t.Errorf("pipeline ran on empty input: calls=%d rows=%d", client.calls, len(rec.rows))
	}
}

func TestDiagnoseStoreFailureIsReturned(t *testing.T) {
	errDisk := errors.New("disk full")
	ru := mustLocale(t, "ru")
	rec := &memRecorder{err: fmt.Errorf("log exchange: %w", errDisk)}
	res, err := newTestService(&fakeLLM{reply: completion("Грипп")}, rec).Diagnose(context.Background(), ru, "кашель")
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected store error, got %v", err)
	}
	if want := "Грипп. " + ru.Disclaimer; res.Display != want {
		t.Errorf("Display = %q, want %q", res.Display, want)
	}
}
