package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/controller"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/service"
	"github.com/rs/zerolog/log"
)

// SurveyAdminController serves the authoring side: surveys, questions,
// question types and invitations.
type SurveyAdminController struct {
	surveyService     service.SurveyService
	questionService   service.QuestionService
	invitationService service.InvitationService
}

func NewSurveyAdminController(ss service.SurveyService, qs service.QuestionService, is service.InvitationService) *SurveyAdminController {
	return &SurveyAdminController{surveyService: ss, questionService: qs, invitationService: is}
}

// CreateSurvey godoc
// @Summary (Admin) Create a new survey
// @Description Creates an empty survey owned by the given author.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param survey_data body dto.SurveyCreateDTO true "Survey title and author"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Author not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /surveys [post]
func (c *SurveyAdminController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	survey, err := c.surveyService.CreateSurvey(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create survey", err)
		return
	}
	ctx.JSON(http.StatusCreated, survey)
}

// AddQuestion godoc
// @Summary (Admin) Add a question to a survey
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param question_data body dto.QuestionCreateDTO true "Title, type and type-specific attributes"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown type"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /surveys/{survey_id}/questions [post]
func (c *SurveyAdminController) AddQuestion(ctx *gin.Context) {
	surveyID, ok := controller.ParseID(ctx, "survey_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.questionService.AddQuestion(ctx.Request.Context(), surveyID, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to add question", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id} [get]
func (c *SurveyAdminController) GetQuestion(ctx *gin.Context) {
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), questionID)
	if err != nil {
		controller.RespondError(ctx, "Failed to get question", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Edit a question's title
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question_data body dto.QuestionUpdateDTO true "New title"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /questions/{question_id} [put]
func (c *SurveyAdminController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), questionID, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to update question", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// AddOption godoc
// @Summary (Admin) Add an option to a multiple choice question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param option_data body dto.OptionCreateDTO true "Option text and score"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Question is not multiple choice or option is invalid"
// @Router /questions/{question_id}/options [post]
func (c *SurveyAdminController) AddOption(ctx *gin.Context) {
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.OptionCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.questionService.AddOption(ctx.Request.Context(), questionID, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to add option", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// NewQuestionType godoc
// @Summary (Admin) Preview a question as another type
// @Description Builds an unsaved submittable of the requested type. Multiple choice previews carry three blank options.
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Param submittable_type query string true "open, multiple_choice or scale"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown type"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id}/types/new [get]
func (c *SurveyAdminController) NewQuestionType(ctx *gin.Context) {
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	question, err := c.questionService.PreviewType(ctx.Request.Context(), questionID, ctx.Query("submittable_type"))
	if err != nil {
		controller.RespondError(ctx, "Failed to build question type", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// SwitchQuestionType godoc
// @Summary (Admin) Change a question's type
// @Description Replaces the question's submittable with one of another type. The question keeps its id, title and answers.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param type_data body dto.QuestionTypeSwitchDTO true "New type and its attributes"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown type"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.QuestionTypeErrorDTO "Attempted question with validation errors"
// @Router /questions/{question_id}/types [post]
func (c *SurveyAdminController) SwitchQuestionType(ctx *gin.Context) {
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionTypeSwitchDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.questionService.SwitchType(ctx.Request.Context(), questionID, req)
	var verr *model.ValidationError
	if errors.As(err, &verr) && question != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Question type switch rejected")
		ctx.JSON(http.StatusUnprocessableEntity, dto.QuestionTypeErrorDTO{
			Message:  "Failed to change question type",
			Question: *question,
			Errors:   verr.Fields,
		})
		return
	}
	if err != nil {
		controller.RespondError(ctx, "Failed to change question type", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// InviteToSurvey godoc
// @Summary (Admin) Invite people to take a survey
// @Description Recipients are separated by commas, semicolons or newlines. Registered users get an in-app message, everyone else an email unless they unsubscribed.
// @Tags Admin - Invitations
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param invitation_data body dto.InvitationCreateDTO true "Sender, recipients and message"
// @Success 201 {array} dto.InvitationResultDTO
// @Failure 404 {object} dto.ErrorResponse "Survey or sender not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid recipients or blank message"
// @Router /surveys/{survey_id}/invitations [post]
func (c *SurveyAdminController) InviteToSurvey(ctx *gin.Context) {
	surveyID, ok := controller.ParseID(ctx, "survey_id")
	if !ok {
		return
	}
	var req dto.InvitationCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	results, err := c.invitationService.Invite(ctx.Request.Context(), surveyID, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to send invitations", err)
		return
	}
	ctx.JSON(http.StatusCreated, results)
}
