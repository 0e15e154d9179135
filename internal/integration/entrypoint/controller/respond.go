// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case domainerror.IsValidation(err):
		return http.StatusBadRequest
	case domainerror.IsNotFound(err):
		return http.StatusNotFound
	case domainerror.IsConservationFailure(err):
		return http.StatusConflict
	case errors.Is(err, domainerror.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainerror.ErrInvalidCredentials),
		errors.Is(err, domainerror.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response for err. Internal errors are logged
// and answered with a generic message.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err, "method", ctx.Request.Method, "path", ctx.FullPath())
		ctx.JSON(status, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	var coded domainerror.CodedError
	if errors.As(err, &coded) {
		ctx.JSON(status, dto.ErrorResponse{
			Error: coded.ErrorMessage(),
			Code:  coded.ErrorCode(),
		})
		return
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: err.Error(),
	})
}

// currentUser returns the authenticated user, answering 401 when there is none.
func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// bindJSON decodes the body into req, answering 400 with code on failure.
func bindJSON(ctx *gin.Context, req any, code string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    code,
			Details: err.Error(),
		})
		return false
	}
	return true
}

// pathID parses the :id route parameter, answering 400 when malformed.
func pathID(ctx *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + what + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// optionalDay parses an optional YYYY-MM-DD value in loc.
func optionalDay(ctx *gin.Context, value *string, loc *time.Location, code string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	day, err := valueobject.ParseDay(*value, loc)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  code,
		})
		return nil, false
	}
	return &day, true
}
