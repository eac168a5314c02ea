package service

import (
	"fmt"
	"strings"

	"github.com/lshigami/StudyForge/internal/dto"
)

// Prompt builders are pure: feature parameters in, prompt string out.
// Everything that talks to the model goes through GenAIClient.

func SyllabusPrompt(req dto.SyllabusRequest) string {
	var sb strings.Builder
	sb.WriteString("You are an experienced curriculum designer.\n")
	sb.WriteString(fmt.Sprintf("Create a detailed syllabus for the subject \"%s\" at %s level, spread over %s.\n", req.Subject, req.Level, req.Duration))
	sb.WriteString("Break it into weekly units with topics, learning objectives, and suggested resources.\n")
	sb.WriteString("Keep the structure easy to follow for a self-paced learner.")
	return sb.String()
}

func EssayPrompt(req dto.EssayRequest) string {
	wordCount := req.WordCount
	if wordCount <= 0 {
		wordCount = 500
	}
	tone := req.Tone
	if tone == "" {
		tone = "neutral"
	}
	return fmt.Sprintf(
		"Write a well-structured essay of about %d words on the topic \"%s\" in a %s tone. "+
			"Include an introduction, body paragraphs with clear arguments, and a conclusion.",
		wordCount, req.Topic, tone)
}

func ExplainCodePrompt(req dto.ExplainCodeRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a patient programming tutor.\n")
	if req.Language != "" {
		sb.WriteString(fmt.Sprintf("Explain the following %s code step by step for a student:\n", req.Language))
	} else {
		sb.WriteString("Explain the following code step by step for a student. Identify the language first:\n")
	}
	sb.WriteString("---\n")
	sb.WriteString(req.Code)
	sb.WriteString("\n---\n")
	sb.WriteString("Describe what it does overall, then walk through the important parts. Point out any bugs or improvements.")
	return sb.String()
}

func StudyPlanPrompt(req dto.StudyPlanRequest) string {
	return fmt.Sprintf(
		"Create a realistic day-by-day study plan for these subjects: %s. "+
			"The student can study %d hours per day and the deadline is %s. "+
			"Balance the subjects, schedule revision sessions, and include short breaks.",
		req.Subjects, req.HoursPerDay, req.Deadline)
}

func FlashcardsPrompt(req dto.FlashcardsRequest) string {
	count := req.Count
	if count <= 0 {
		count = 10
	}
	return fmt.Sprintf(
		"Generate %d flashcards for the topic \"%s\". "+
			"Format each card as:\nQ: <question>\nA: <answer>\n"+
			"Keep questions focused on one fact or concept each.",
		count, req.Topic)
}

func AskPrompt(req dto.AskRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful study assistant. Answer the student's question clearly and accurately.\n")
	sb.WriteString("If the question is ambiguous, state your assumptions.\n\nQuestion:\n")
	sb.WriteString(req.Question)
	return sb.String()
}

func ChatPrompt(req dto.ChatRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly study assistant chatting with a student. Continue the conversation naturally.\n\n")
	for _, turn := range req.History {
		switch turn.Role {
		case "user":
			sb.WriteString("Student: ")
		default:
			sb.WriteString("Assistant: ")
		}
		sb.WriteString(turn.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("Student: ")
	sb.WriteString(req.Message)
	sb.WriteString("\nAssistant:")
	return sb.String()
}

func SolvePrompt(question string) string {
	var sb strings.Builder
	sb.WriteString("You are a tutor helping a student with a problem shown in the image above.\n")
	if question != "" {
		sb.WriteString("The student asks: ")
		sb.WriteString(question)
		sb.WriteString("\n")
	}
	sb.WriteString("Read the problem from the image, solve it step by step, and explain the reasoning so the student can follow along.")
	return sb.String()
}

// QuizPrompt instructs the model to answer with a single JSON object. The
// model does not always comply, which is why SalvageQuizJSON exists.
func QuizPrompt(req dto.GenerateQuizRequest) string {
	count := req.Count
	if count <= 0 {
		count = 5
	}
	if count > 20 {
		count = 20
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"Generate a quiz with %d %s questions about \"%s\" at %s difficulty.\n",
		count, req.QuestionType, req.Topic, req.Difficulty))
	sb.WriteString("Respond with ONLY a single JSON object, no prose, no markdown fences, in exactly this format:\n")
	sb.WriteString(`{
  "questions": [
    {
      "question_no": 1,
      "question": "<question text>",
      "options": ["A) ...", "B) ...", "C) ...", "D) ..."],
      "answer": "<the correct option letter, or the expected answer for subjective questions>",
      "explanation": "<brief explanation of the correct answer>"
    }
  ]
}`)
	sb.WriteString("\n")
	if req.QuestionType == "subjective" {
		sb.WriteString("For subjective questions omit the \"options\" field and put a short model answer in \"answer\".\n")
	} else {
		sb.WriteString("Every question must have exactly 4 options and one correct answer. Make the distractors plausible.\n")
	}
	sb.WriteString("Number questions starting from 1.")
	return sb.String()
}
