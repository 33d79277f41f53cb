package testcase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/qagen/pkg/knowledge"
	"github.com/artem13815/qagen/pkg/llm"
)

// fakeLLM records prompts and returns a fixed reply or error.
type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func uploaded(t *testing.T, text string) *knowledge.MemoryStore {
	t.Helper()
	s := knowledge.NewMemoryStore()
	require.NoError(t, s.Replace(text))
	return s
}

func TestGenerate_BeforeUpload(t *testing.T) {
	model := &fakeLLM{response: "unused"}
	svc := NewGenerationService(knowledge.NewMemoryStore(), model)

	for _, story := range []string{sampleStory, "x", "  "} {
		_, err := svc.Generate(context.Background(), story)
		assert.ErrorIs(t, err, ErrKnowledgeNotUploaded)
	}
	assert.Empty(t, model.prompts, "llm must not be called")
}

func TestGenerate_EmptyStory(t *testing.T) {
	model := &fakeLLM{response: "unused"}
	svc := NewGenerationService(uploaded(t, sampleKnowledge), model)

	_, err := svc.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoUserStory)
	assert.Empty(t, model.prompts)
}

func TestGenerate_PassThrough(t *testing.T) {
	reply := "Test Case ID: TC1\n..."
	model := &fakeLLM{response: reply}
	svc := NewGenerationService(uploaded(t, sampleKnowledge), model)

	res, err := svc.Generate(context.Background(), sampleStory)
	require.NoError(t, err)
	assert.Equal(t, reply, res.TestCases)
	require.Len(t, model.prompts, 1)
	assert.Equal(t, len(model.prompts[0]), res.PromptChars)
	assert.Contains(t, model.prompts[0], sampleKnowledge)
	assert.Contains(t, model.prompts[0], sampleStory)
}

func TestGenerate_NoCaching(t *testing.T) {
	model := &fakeLLM{response: "Test Case ID: TC1"}
	svc := NewGenerationService(uploaded(t, sampleKnowledge), model)

	for i := 0; i < 3; i++ {
		_, err := svc.Generate(context.Background(), sampleStory)
		require.NoError(t, err)
	}
	require.Len(t, model.prompts, 3)
	assert.Equal(t, model.prompts[0], model.prompts[1])
	assert.Equal(t, model.prompts[1], model.prompts[2])
}

func TestGenerate_UsesLatestKnowledge(t *testing.T) {
	store := uploaded(t, "old rules")
	model := &fakeLLM{response: "ok"}
	svc := NewGenerationService(store, model)

	require.NoError(t, store.Replace("new rules"))
	_, err := svc.Generate(context.Background(), sampleStory)
	require.NoError(t, err)
	assert.Contains(t, model.prompts[0], "new rules")
	assert.NotContains(t, model.prompts[0], "old rules")
}

func TestGenerate_WrapsLLMErrors(t *testing.T) {
	upstream := &llm.UpstreamError{StatusCode: 503, Body: "busy"}
	svc := NewGenerationService(uploaded(t, sampleKnowledge), &fakeLLM{err: upstream})

	_, err := svc.Generate(context.Background(), sampleStory)
	var ue *llm.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 503, ue.StatusCode)
	assert.NotErrorIs(t, err, ErrNoUserStory)
	assert.NotErrorIs(t, err, ErrKnowledgeNotUploaded)
}
