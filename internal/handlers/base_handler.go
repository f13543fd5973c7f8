package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthive_backend/internal/logger"
	"talenthive_backend/internal/middleware"
	"talenthive_backend/internal/validator"
	"talenthive_backend/pkg/apperrors"
)

// BaseHandler carries shared binding, validation and error translation.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON decodes the body and runs struct validation. Returns
// false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		Respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return false
	}
	if err := h.validator.Validate(obj); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			c.JSON(http.StatusBadRequest, APIResponse{
				StatusCode: http.StatusBadRequest,
				Data:       verr.Errors,
				Message:    "Validation failed",
				Success:    false,
			})
			return false
		}
		Respond(c, http.StatusBadRequest, nil, "Validation failed")
		return false
	}
	return true
}

// HandleServiceError maps service errors onto the response envelope.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode >= 500 {
			logger.CtxError(c.Request.Context(), "internal error",
				"path", c.Request.URL.Path, "error", appErr.Error())
			Respond(c, appErr.HTTPCode, nil, "Internal Server Error")
			return
		}
		Respond(c, appErr.HTTPCode, appErr.Details, appErr.Message)
		return
	}

	logger.CtxError(c.Request.Context(), "unhandled error",
		"path", c.Request.URL.Path, "error", err.Error())
	Respond(c, http.StatusInternalServerError, nil, "Internal Server Error")
}

// CurrentUserID reads the authenticated user id set by the auth middleware.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		Respond(c, http.StatusUnauthorized, nil, "Authentication required")
		return "", false
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		Respond(c, http.StatusUnauthorized, nil, "Authentication required")
		return "", false
	}
	return userID, true
}

// CurrentRole reads the authenticated role set by the auth middleware.
func (h *BaseHandler) CurrentRole(c *gin.Context) string {
	return c.GetString(middleware.ContextRoleKey)
}
