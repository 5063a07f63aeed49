package notes

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/notes-assistant/internal/infra/llm"
	apperrors "github.com/yanqian/notes-assistant/pkg/errors"
	"github.com/yanqian/notes-assistant/pkg/metrics"
)

// Flow names, used as metric labels and log fields.
const (
	FlowSummarize     = "summarize"
	FlowGenerateNotes = "generate_notes"
)

// Service exposes the meeting summary and study notes flows.
type Service interface {
	Summarize(ctx context.Context, req Request) (SummaryResponse, error)
	GenerateNotes(ctx context.Context, req Request) (StudyNotesResponse, error)
}

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, req llm.Request) (llm.Completion, error)
}

type service struct {
	cfg       Config
	generator Generator
	recorder  *metrics.Recorder
	logger    *slog.Logger
}

// NewService is a wire provider for the notes domain.
func NewService(cfg Config, generator Generator, recorder *metrics.Recorder, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		generator: generator,
		recorder:  recorder,
		logger:    logger.With("component", "notes.service"),
	}
}

// flow is one request pipeline: validate the required field, render the
// prompt, call the model, shape the completion.
type flow[T any] struct {
	name    string
	field   string
	missing string
	prompt  func(text string, req Request) string
	shape   func(completion string) T
}

var summaryFlow = flow[SummaryResponse]{
	name:    FlowSummarize,
	field:   FieldMeetingNotes,
	missing: "No meeting notes provided",
	prompt: func(text string, _ Request) string {
		return SummaryPrompt(text)
	},
	shape: func(completion string) SummaryResponse {
		return SummaryResponse{Success: true, Summary: completion}
	},
}

var studyNotesFlow = flow[StudyNotesResponse]{
	name:    FlowGenerateNotes,
	field:   FieldLectureNotes,
	missing: "No lecture notes provided",
	prompt: func(text string, req Request) string {
		return StudyNotesPrompt(req.subject(), text)
	},
	shape: func(completion string) StudyNotesResponse {
		notes, quiz := SplitQuiz(completion)
		return StudyNotesResponse{Success: true, Notes: notes, Quiz: quiz}
	},
}

func (s *service) Summarize(ctx context.Context, req Request) (SummaryResponse, error) {
	return run(ctx, s, summaryFlow, req)
}

func (s *service) GenerateNotes(ctx context.Context, req Request) (StudyNotesResponse, error) {
	return run(ctx, s, studyNotesFlow, req)
}

func run[T any](ctx context.Context, s *service, f flow[T], req Request) (T, error) {
	var zero T
	text, ok := req.text(f.field)
	if !ok {
		return zero, apperrors.Wrap(apperrors.CodeInvalidInput, f.missing, nil)
	}

	completion, err := s.complete(ctx, f.name, f.prompt(text, req))
	if err != nil {
		return zero, err
	}
	return f.shape(completion), nil
}

func (s *service) complete(ctx context.Context, flowName, prompt string) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	completion, err := s.generator.Generate(ctx, llm.Request{
		Model:       s.cfg.Model,
		Prompt:      prompt,
		Temperature: s.cfg.Temperature,
	})
	elapsed := time.Since(start)
	s.recorder.ObserveModelCall(flowName, elapsed, err)

	if err != nil {
		s.logger.Error("model call failed", "flow", flowName, "latency_ms", elapsed.Milliseconds(), "error", err)
		if errors.Is(err, llm.ErrNoText) {
			return "", apperrors.Wrap(apperrors.CodeEmptyCompletion, llm.ErrNoText.Error(), nil)
		}
		return "", apperrors.Wrap(apperrors.CodeLLM, "model request failed", err)
	}

	s.recorder.ObserveTokens(flowName, completion.Usage)
	s.logger.Debug("model completion received",
		"flow", flowName,
		"latency_ms", elapsed.Milliseconds(),
		"total_tokens", completion.Usage.TotalTokens,
		"content", completion.Text,
	)

	if strings.TrimSpace(completion.Text) == "" {
		return "", apperrors.Wrap(apperrors.CodeEmptyCompletion, "model returned an empty completion", nil)
	}
	return completion.Text, nil
}
