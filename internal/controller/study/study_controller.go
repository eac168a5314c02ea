package study

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/StudyForge/internal/controller"
	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/service"
)

type StudyController struct {
	studyService service.StudyService
}

func NewStudyController(studyService service.StudyService) *StudyController {
	return &StudyController{studyService: studyService}
}

// GenerateSyllabus godoc
// @Summary Generate a syllabus for a subject
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SyllabusRequest true "Subject, level and duration"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /study/syllabus [post]
func (c *StudyController) GenerateSyllabus(ctx *gin.Context) {
	var req dto.SyllabusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.studyService.GenerateSyllabus(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// WriteEssay godoc
// @Summary Write an essay on a topic
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EssayRequest true "Topic, word count and tone"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /study/essay [post]
func (c *StudyController) WriteEssay(ctx *gin.Context) {
	var req dto.EssayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.studyService.WriteEssay(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// ExplainCode godoc
// @Summary Explain a code snippet
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExplainCodeRequest true "Code and optional language"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /study/explain-code [post]
func (c *StudyController) ExplainCode(ctx *gin.Context) {
	var req dto.ExplainCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.studyService.ExplainCode(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// BuildStudyPlan godoc
// @Summary Build a day-by-day study plan
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudyPlanRequest true "Subjects, hours per day and deadline"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /study/plan [post]
func (c *StudyController) BuildStudyPlan(ctx *gin.Context) {
	var req dto.StudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.studyService.BuildStudyPlan(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// GenerateFlashcards godoc
// @Summary Generate flashcards for a topic
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FlashcardsRequest true "Topic and count"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /study/flashcards [post]
func (c *StudyController) GenerateFlashcards(ctx *gin.Context) {
	var req dto.FlashcardsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.studyService.GenerateFlashcards(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// Ask godoc
// @Summary Ask a free-form question
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AskRequest true "The question"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /study/ask [post]
func (c *StudyController) Ask(ctx *gin.Context) {
	var req dto.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.studyService.Ask(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// Chat godoc
// @Summary Send a chat message with optional history
// @Tags Study
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Message and prior turns"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /study/chat [post]
func (c *StudyController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	reply, err := c.studyService.Chat(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: reply})
}
