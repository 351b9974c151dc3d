package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/controller"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/service"
)

// AccountController handles registration, the message inbox and email
// preferences.
type AccountController struct {
	userService         service.UserService
	notificationService service.NotificationService
}

func NewAccountController(us service.UserService, ns service.NotificationService) *AccountController {
	return &AccountController{userService: us, notificationService: ns}
}

// CreateUser godoc
// @Summary (User) Register a user
// @Tags User - Accounts
// @Accept json
// @Produce json
// @Param user_data body dto.UserCreateDTO true "Email and name"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Email already taken"
// @Router /users [post]
func (c *AccountController) CreateUser(ctx *gin.Context) {
	var req dto.UserCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	user, err := c.userService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create user", err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// GetMessages godoc
// @Summary (User) List messages received by a user
// @Tags User - Accounts
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{user_id}/messages [get]
func (c *AccountController) GetMessages(ctx *gin.Context) {
	userID, ok := controller.ParseID(ctx, "user_id")
	if !ok {
		return
	}
	messages, err := c.userService.GetMessages(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve messages", err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// Unsubscribe godoc
// @Summary (User) Stop all email to an address
// @Tags User - Accounts
// @Accept json
// @Param unsubscribe_data body dto.UnsubscribeCreateDTO true "Email address"
// @Success 204
// @Failure 422 {object} dto.ErrorResponse "Invalid email"
// @Router /unsubscribes [post]
func (c *AccountController) Unsubscribe(ctx *gin.Context) {
	var req dto.UnsubscribeCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	if err := c.notificationService.Unsubscribe(ctx.Request.Context(), req.Email); err != nil {
		controller.RespondError(ctx, "Failed to unsubscribe", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
