package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"triptogether_echo/internal/landing"
	"triptogether_echo/internal/services"
)

// CreateSession starts a page session for API clients
func (h *LandingHandler) CreateSession(c echo.Context) error {
	state, err := h.store.Create(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Failed to start page session")
	}
	return c.JSON(http.StatusCreated, newSessionResponse(state))
}

// GetSession returns the current state of a page session
func (h *LandingHandler) GetSession(c echo.Context) error {
	state, err := h.store.Load(c.Request().Context(), c.Param("session"))
	if errors.Is(err, services.ErrStateNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Page session not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Failed to load page session")
	}
	return c.JSON(http.StatusOK, newSessionResponse(state))
}

// DispatchIntent applies a JSON intent and returns the new state
func (h *LandingHandler) DispatchIntent(c echo.Context) error {
	var intent landing.Intent
	if err := c.Bind(&intent); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid intent payload")
	}
	if msg := intentPayloadError(intent); msg != "" {
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}

	state, err := h.dispatch(c.Request().Context(), c.Param("session"), intent)
	switch {
	case errors.Is(err, services.ErrStateNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Page session not found")
	case errors.Is(err, landing.ErrUnknownIntent):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to apply intent")
	}

	return c.JSON(http.StatusOK, newSessionResponse(state))
}

// Content returns the static site content
func (h *LandingHandler) Content(c echo.Context) error {
	return c.JSON(http.StatusOK, h.content.Get())
}

// Health reports that the server is up
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
