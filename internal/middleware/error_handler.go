package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"triptogether_echo/web/templates/pages"
)

// ErrorResponse is the JSON body of a failed API call
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomErrorHandler renders errors as an HTML page, or as JSON for /api routes
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		log.WithError(err).Warn("Error after response was committed")
		return
	}

	code := http.StatusInternalServerError
	errorTitle := "Internal Server Error"
	errorMessage := ""

	// Check if it's an Echo HTTPError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code

		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		switch code {
		case http.StatusNotFound:
			errorTitle = "Page Not Found"
			if errorMessage == "" || errorMessage == http.StatusText(code) {
				errorMessage = "The page you're looking for doesn't exist."
			}
		case http.StatusMethodNotAllowed:
			errorTitle = "Method Not Allowed"
			if errorMessage == "" {
				errorMessage = "This action is not available here."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		case http.StatusServiceUnavailable:
			errorTitle = "Service Unavailable"
			if errorMessage == "" {
				errorMessage = "Please try again in a moment."
			}
		default:
			if errorMessage == "" {
				errorMessage = "Something went wrong. Please try again later."
			}
		}
	} else {
		errorMessage = "Something went wrong. Please try again later."
	}

	entry := log.WithFields(log.Fields{
		"method": c.Request().Method,
		"uri":    c.Request().RequestURI,
		"status": code,
	}).WithError(err)
	if code >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Debug("Request rejected")
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		if jsonErr := c.JSON(code, ErrorResponse{Code: code, Message: errorMessage}); jsonErr != nil {
			log.WithError(jsonErr).Error("Failed to write error response")
		}
		return
	}

	props := pages.ErrorPageProps{
		Title:        errorTitle,
		Code:         code,
		ErrorTitle:   errorTitle,
		ErrorMessage: errorMessage,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)

	if c.Request().Method == http.MethodHead {
		return
	}

	if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
		// Headers are already out, so only log
		log.WithError(fmt.Errorf("failed to render error page: %w", renderErr)).Error("Error page render failed")
	}
}
