package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type fakeGenerator struct {
	calls int
	errs  []error
	text  string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.calls++
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(f.text)}}},
		},
	}, nil
}

func newTestClient(gen *fakeGenerator) (*genAIClient, *[]time.Duration) {
	var sleeps []time.Duration
	client := &genAIClient{
		model: gen,
		sleep: func(d time.Duration) { sleeps = append(sleeps, d) },
	}
	return client, &sleeps
}

func TestGenerateTextSuccessFirstAttempt(t *testing.T) {
	gen := &fakeGenerator{text: "hello"}
	client, sleeps := newTestClient(gen)

	result, err := client.GenerateText(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", result)
	assert.Equal(t, 1, gen.calls)
	assert.Empty(t, *sleeps)
}

func TestGenerateTextRetriesExhaustedOnOverload(t *testing.T) {
	overloaded := errors.New("the model is overloaded, please try again later")
	gen := &fakeGenerator{errs: []error{overloaded, overloaded, overloaded}}
	client, sleeps := newTestClient(gen)

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverloaded)
	assert.Contains(t, err.Error(), "overloaded")
	assert.Equal(t, 3, gen.calls)

	// Backoff grows linearly with the attempt number and is only applied
	// before a retry, never after the final attempt.
	require.Len(t, *sleeps, 2)
	assert.Equal(t, 2*time.Second, (*sleeps)[0])
	assert.Equal(t, 4*time.Second, (*sleeps)[1])
}

func TestGenerateTextRecoversAfterOverload(t *testing.T) {
	overloaded := errors.New("the model is overloaded")
	gen := &fakeGenerator{errs: []error{overloaded}, text: "recovered"}
	client, sleeps := newTestClient(gen)

	result, err := client.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 2, gen.calls)
	require.Len(t, *sleeps, 1)
	assert.Equal(t, 2*time.Second, (*sleeps)[0])
}

func TestGenerateTextNoRetryOnTerminalError(t *testing.T) {
	terminal := errors.New("API key not valid")
	gen := &fakeGenerator{errs: []error{terminal}}
	client, sleeps := newTestClient(gen)

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOverloaded)
	assert.Equal(t, 1, gen.calls)
	assert.Empty(t, *sleeps)
}

func TestGenerateTextServiceUnavailableIsRetryable(t *testing.T) {
	unavailable := &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "backend unavailable"}
	gen := &fakeGenerator{errs: []error{unavailable, unavailable, unavailable}}
	client, _ := newTestClient(gen)

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverloaded)
	assert.Equal(t, 3, gen.calls)
}

func TestIsOverloadError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"503 status", &googleapi.Error{Code: http.StatusServiceUnavailable}, true},
		{"overloaded substring", errors.New("model overloaded right now"), true},
		{"case sensitive", errors.New("model OVERLOADED right now"), false},
		{"other status", &googleapi.Error{Code: http.StatusTooManyRequests}, false},
		{"plain error", errors.New("context deadline exceeded"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isOverloadError(tc.err))
		})
	}
}

func TestGenerateTextEmptyResponse(t *testing.T) {
	gen := &fakeGenerator{text: ""}
	client, _ := newTestClient(gen)

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOverloaded)
}

func TestGenerateTextWithoutClient(t *testing.T) {
	client := &genAIClient{model: nil, sleep: time.Sleep}
	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
}
