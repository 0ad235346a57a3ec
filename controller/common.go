package controller

import (
	"errors"
	"net/http"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"

	"github.com/gin-gonic/gin"
)

func handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// handleError converts the shared error taxonomy into an HTTP status and the
// standard envelope. The error message reaches the user verbatim; nothing is
// retried and nothing panics the view.
func handleError(c *gin.Context, message string, err error) {
	c.JSON(statusForError(err), model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func statusForError(err error) int {
	var (
		validationErr *customerrors.ValidationError
		apiErr        *customerrors.ApiError
		transportErr  *customerrors.TransportError
		malformedErr  *customerrors.MalformedResponseError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, customerrors.ErrSubmitInFlight):
		return http.StatusConflict
	case errors.Is(err, customerrors.ErrChartNotFound),
		errors.Is(err, customerrors.ErrFriendNotFound):
		return http.StatusNotFound
	case errors.Is(err, customerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &apiErr):
		// Pass the remote status through: a 400 from the astrology service
		// is a 400 for the caller too.
		return apiErr.StatusCode
	case errors.As(err, &transportErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &malformedErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
