// Package controller holds helpers shared by the admin and user controllers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/rs/zerolog/log"
)

// ParseID reads a numeric path parameter, answering 400 when it is malformed.
func ParseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + param + " format"})
		return 0, false
	}
	return uint(id), true
}

// ViewerID reads the optional user_id query parameter identifying the caller.
func ViewerID(ctx *gin.Context) (*uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
		return nil, false
	}
	viewer := uint(id)
	return &viewer, true
}

// BindJSON binds the request body, answering 400 on failure.
func BindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	var verr *model.ValidationError
	var cerr *model.ConfigurationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &cerr):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrOptionNotFound),
		errors.Is(err, model.ErrNonNumericAnswer),
		errors.Is(err, model.ErrNotMultipleChoice):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ErrorResponse builds the body for a service error.
func ErrorResponse(message string, err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Message: message}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = verr.Fields
		return resp
	}
	resp.Details = []string{err.Error()}
	return resp
}

// RespondError logs and renders a service error.
func RespondError(ctx *gin.Context, message string, err error) {
	status := StatusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("path", ctx.FullPath()).Msg(message)
	ctx.JSON(status, ErrorResponse(message, err))
}
