package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, title := StatusOf(err)
		if code != http.StatusInternalServerError {
			_ = c.JSON(code, map[string]string{"error": err.Error(), "title": title})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// StatusOf maps an error kind to an HTTP status and a short title.
func StatusOf(err error) (int, string) {
	var (
		ve *ValidationError
		ie *InputError
		nf *NotFoundError
		pe *ParseError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, "validation error"
	case errors.As(err, &ie):
		return http.StatusBadRequest, "input error"
	case errors.As(err, &nf):
		return http.StatusNotFound, "not found"
	case errors.As(err, &pe):
		return http.StatusUnprocessableEntity, "parse error"
	default:
		return http.StatusInternalServerError, ""
	}
}
