package solve

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/StudyForge/internal/controller"
	"github.com/lshigami/StudyForge/internal/dto"
	"github.com/lshigami/StudyForge/internal/service"
	"github.com/rs/zerolog/log"
)

// maxUploadBytes caps the in-memory image payload for one request.
const maxUploadBytes = 10 << 20

type SolveController struct {
	solveService service.SolveService
}

func NewSolveController(solveService service.SolveService) *SolveController {
	return &SolveController{solveService: solveService}
}

// SolveFromUpload godoc
// @Summary Solve a problem from an uploaded image
// @Tags Solve
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Problem image (png, jpeg, webp, gif, heic, heif)"
// @Param question formData string false "Optional question about the image"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /solve/upload [post]
func (c *SolveController) SolveFromUpload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No image file uploaded"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Image file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("SolveFromUpload: failed to open uploaded file")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read uploaded file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("SolveFromUpload: failed to read uploaded file")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read uploaded file"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	question := ctx.PostForm("question")

	result, err := c.solveService.SolveFromImage(ctx.Request.Context(), image, mimeType, question)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// SolveFromURL godoc
// @Summary Solve a problem from an image URL
// @Tags Solve
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SolveURLRequest true "Image URL and optional question"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "AI service overloaded"
// @Router /solve/url [post]
func (c *SolveController) SolveFromURL(ctx *gin.Context) {
	var req dto.SolveURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.solveService.SolveFromURL(ctx.Request.Context(), req.ImageURL, req.Question)
	if err != nil {
		controller.RespondGenerationError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}
