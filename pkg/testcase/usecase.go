package testcase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artem13815/qagen/pkg/knowledge"
	"github.com/artem13815/qagen/pkg/llm"
)

var (
	ErrNoUserStory          = errors.New("no user story provided")
	ErrKnowledgeNotUploaded = errors.New("domain knowledge is not uploaded yet")
)

// Result carries the raw model output plus bookkeeping for logs.
type Result struct {
	TestCases   string
	PromptChars int
	Duration    time.Duration
}

// GenerationService turns a user story into test cases grounded in the
// currently uploaded domain knowledge.
type GenerationService interface {
	Generate(ctx context.Context, userStory string) (Result, error)
}

type generationService struct {
	store knowledge.Store
	llm   llm.Generator
	now   func() time.Time
}

func NewGenerationService(store knowledge.Store, model llm.Generator) GenerationService {
	return &generationService{store: store, llm: model, now: time.Now}
}

// Generate validates the inputs, builds the prompt and makes exactly one
// model call. Results are never cached.
func (s *generationService) Generate(ctx context.Context, userStory string) (Result, error) {
	prompt, err := BuildPrompt(s.store.Current(), userStory)
	if err != nil {
		return Result{}, err
	}
	start := s.now()
	out, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("generate test cases: %w", err)
	}
	return Result{
		TestCases:   out,
		PromptChars: len(prompt),
		Duration:    s.now().Sub(start),
	}, nil
}
