package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/controller"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/service"
	"github.com/rs/zerolog/log"
)

// SurveyController serves respondents: browsing surveys, completing them and
// reading summaries.
type SurveyController struct {
	surveyService     service.SurveyService
	completionService service.CompletionService
}

func NewSurveyController(ss service.SurveyService, cs service.CompletionService) *SurveyController {
	return &SurveyController{surveyService: ss, completionService: cs}
}

// GetAllSurveys godoc
// @Summary (User) List all surveys
// @Tags User - Surveys
// @Produce json
// @Success 200 {array} dto.SurveySummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys [get]
func (c *SurveyController) GetAllSurveys(ctx *gin.Context) {
	surveys, err := c.surveyService.GetAllSurveys(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve surveys", err)
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurveyDetails godoc
// @Summary (User) Get a survey with its questions
// @Tags User - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Survey ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{survey_id} [get]
func (c *SurveyController) GetSurveyDetails(ctx *gin.Context) {
	surveyID, ok := controller.ParseID(ctx, "survey_id")
	if !ok {
		return
	}
	survey, err := c.surveyService.GetSurveyDetails(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve survey", err)
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// CompleteSurvey godoc
// @Summary (User) Submit answers to a survey
// @Description Blank answers are skipped and answers to questions of other surveys are ignored. A multiple choice answer must match an option and a scale answer must be a whole number.
// @Tags User - Completions
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param completion_data body dto.CompletionCreateDTO true "User ID and answers"
// @Success 201 {object} dto.CompletionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Survey or user not found"
// @Failure 422 {object} dto.ErrorResponse "An answer cannot be scored"
// @Router /surveys/{survey_id}/completions [post]
func (c *SurveyController) CompleteSurvey(ctx *gin.Context) {
	surveyID, ok := controller.ParseID(ctx, "survey_id")
	if !ok {
		return
	}
	var req dto.CompletionCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	log.Info().Uint("surveyID", surveyID).Uint("userID", req.UserID).Int("answerCount", len(req.Answers)).Msg("Received survey completion")

	completion, err := c.completionService.CompleteSurvey(ctx.Request.Context(), surveyID, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to complete survey", err)
		return
	}
	ctx.JSON(http.StatusCreated, completion)
}

// GetSurveyCompletions godoc
// @Summary (User) List completions of a survey with their scores
// @Tags User - Completions
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {array} dto.CompletionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{survey_id}/completions [get]
func (c *SurveyController) GetSurveyCompletions(ctx *gin.Context) {
	surveyID, ok := controller.ParseID(ctx, "survey_id")
	if !ok {
		return
	}
	completions, err := c.completionService.GetSurveyCompletions(ctx.Request.Context(), surveyID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve completions", err)
		return
	}
	ctx.JSON(http.StatusOK, completions)
}

// GetCompletionDetails godoc
// @Summary (User) Get one completion with answers and score
// @Tags User - Completions
// @Produce json
// @Param completion_id path int true "Completion ID"
// @Success 200 {object} dto.CompletionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Completion not found"
// @Router /completions/{completion_id} [get]
func (c *SurveyController) GetCompletionDetails(ctx *gin.Context) {
	completionID, ok := controller.ParseID(ctx, "completion_id")
	if !ok {
		return
	}
	completion, err := c.completionService.GetCompletionDetails(ctx.Request.Context(), completionID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve completion", err)
		return
	}
	ctx.JSON(http.StatusOK, completion)
}

// GetSummaries godoc
// @Summary (User) Summarize a survey
// @Description Summarizes every question with breakdown, most_recent or user_answer. Questions the viewer has not answered are hidden unless unanswered=true.
// @Tags User - Summaries
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param summarizer path string true "Summarizer key" Enums(breakdown, most_recent, user_answer)
// @Param user_id query int false "Viewer user ID"
// @Param unanswered query bool false "Include questions the viewer has not answered"
// @Success 200 {object} dto.SummariesResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown summarizer or missing viewer"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /surveys/{survey_id}/summaries/{summarizer} [get]
func (c *SurveyController) GetSummaries(ctx *gin.Context) {
	surveyID, ok := controller.ParseID(ctx, "survey_id")
	if !ok {
		return
	}
	viewer, ok := controller.ViewerID(ctx)
	if !ok {
		return
	}
	includeUnanswered := false
	if raw := ctx.Query("unanswered"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid unanswered format in query"})
			return
		}
		includeUnanswered = v
	}

	summaries, err := c.surveyService.GetSummaries(ctx.Request.Context(), surveyID, ctx.Param("summarizer"), viewer, includeUnanswered)
	if err != nil {
		controller.RespondError(ctx, "Failed to summarize survey", err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}
