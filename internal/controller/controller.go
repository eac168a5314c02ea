package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondGenerationError maps a failed generation call to the response
// taxonomy: exhausted overload retries become 503, everything else a generic
// 500. Internal detail is logged, never returned.
func RespondGenerationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOverloaded):
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Generation service overloaded")
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "The AI service is overloaded. Please try again in a moment."})
	case errors.Is(err, service.ErrInvalidImage):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNoQuizJSON):
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Generated output could not be parsed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "The AI response could not be interpreted. Please try again."})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Generation request failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Something went wrong. Please try again."})
	}
}
