package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"docshelf_app_echo/internal/loader"
	"docshelf_app_echo/internal/services"
)

// CustomErrorHandler creates a custom error handler for Echo. Loader
// failures map to distinct statuses: a session that cannot be resolved is
// 401, a listing fetch that failed after the selection was already written
// is 502 (the client keeps the selection and shows the listing as failed).
// Not-found is checked before the fetch wrapper so that loading an unknown
// or foreign folder surfaces as 404, not 502.
func CustomErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	var sessionErr *loader.SessionResolutionError
	var fetchErr *loader.ListingFetchError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &sessionErr), errors.Is(err, services.ErrNoSession):
		code = http.StatusUnauthorized
		message = "Please log in to continue."
	case errors.Is(err, services.ErrNodeNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
		message = "The requested node doesn't exist."
	case errors.Is(err, services.ErrInvalidMove):
		code = http.StatusBadRequest
		message = "A folder cannot be moved into its own subtree."
	case errors.As(err, &fetchErr):
		code = http.StatusBadGateway
		message = "Folder listing is currently unavailable."
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		} else {
			switch code {
			case http.StatusNotFound:
				message = "The page you're looking for doesn't exist."
			case http.StatusForbidden:
				message = "You don't have permission to access this resource."
			case http.StatusUnauthorized:
				message = "Please log in to continue."
			case http.StatusBadRequest:
				message = "The request could not be processed."
			}
		}
	}

	// Log the error
	c.Logger().Error(err)

	if c.Response().Committed {
		return
	}

	if jsonErr := c.JSON(code, map[string]string{"error": message}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
