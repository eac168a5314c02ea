package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalvageQuizJSONStrictParse(t *testing.T) {
	raw := `{"questions":[{"question_no":1,"question":"What is 2+2?","options":["A) 3","B) 4","C) 5","D) 6"],"answer":"B","explanation":"Basic arithmetic."}]}`

	quiz, err := SalvageQuizJSON(raw)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, 1, quiz.Questions[0].QuestionNo)
	assert.Equal(t, "B", quiz.Questions[0].Answer)
	assert.Len(t, quiz.Questions[0].Options, 4)
}

func TestSalvageQuizJSONProseWrapped(t *testing.T) {
	raw := `Here is your quiz: {"questions":[]} Thanks!`

	quiz, err := SalvageQuizJSON(raw)
	require.NoError(t, err)
	assert.Empty(t, quiz.Questions)
}

func TestSalvageQuizJSONMarkdownFenced(t *testing.T) {
	raw := "```json\n{\"questions\":[{\"question_no\":1,\"question\":\"Q\",\"answer\":\"A\"}]}\n```"

	quiz, err := SalvageQuizJSON(raw)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Q", quiz.Questions[0].Question)
}

func TestSalvageQuizJSONNoJSON(t *testing.T) {
	_, err := SalvageQuizJSON("no json here")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoQuizJSON)
}

func TestSalvageQuizJSONUnparseableSpan(t *testing.T) {
	// The salvage span is greedily first '{' to last '}'. Braces in the
	// surrounding prose poison the span; that behavior is intentional.
	raw := `note {not json} here {"questions":[]}`

	_, err := SalvageQuizJSON(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoQuizJSON)
}

func TestSalvageQuizJSONEmptyInput(t *testing.T) {
	_, err := SalvageQuizJSON("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoQuizJSON)
}
