package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the landing page and its JSON API
func RegisterRoutes(e *echo.Echo, h *LandingHandler) {
	e.GET("/", h.Home)
	e.GET("/healthz", Health)

	// Page session routes
	s := e.Group("/s/:session")
	s.GET("", h.Show)
	s.POST("/select", h.Select)
	s.POST("/files", h.AddFiles)
	s.POST("/files/:index/delete", h.RemoveFile)
	s.POST("/contact", h.Contact)

	api := e.Group("/api")
	api.POST("/sessions", h.CreateSession)
	api.GET("/sessions/:session", h.GetSession)
	api.POST("/sessions/:session/intents", h.DispatchIntent)
	api.GET("/content", h.Content)
}
