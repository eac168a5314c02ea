package quiz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/StudyForge/internal/controller"
	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/middleware"
	"github.com/lshigami/StudyForge/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GenerateQuiz godoc
// @Summary Generate a quiz on a topic
// @Description The model is asked for pure JSON; prose-wrapped output is salvaged where possible.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuizRequest true "Topic, difficulty, question type and count"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /quizzes/generate [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.GenerateQuiz(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Description Grades by exact string match, persists one immutable attempt record, and returns the annotated result.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.SubmitQuizRequest true "Quiz parameters and (submitted, correct) answer pairs"
// @Success 201 {object} dto.QuizAttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or empty answer set"
// @Failure 401 {object} dto.ErrorResponse
// @Router /quizzes/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if len(req.Answers) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Submission must contain at least one answer."})
		return
	}

	attempt, err := c.quizService.SubmitQuiz(userID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to record quiz attempt"})
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// GetHistory godoc
// @Summary List the user's recent quiz attempts
// @Description Returns at most the 10 most recent attempts, newest first.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizAttemptResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /quizzes/history [get]
func (c *QuizController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}

	attempts, err := c.quizService.GetHistory(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load quiz history"})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
