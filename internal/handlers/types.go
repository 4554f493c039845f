package handlers

import (
	"triptogether_echo/internal/models"
	"triptogether_echo/web/templates/shared"
)

// SessionResponse is the JSON shape of a page session
type SessionResponse struct {
	State *models.PageState `json:"state"`
	Links SessionLinks      `json:"links"`
}

// SessionLinks points at the rendered page of a session
type SessionLinks struct {
	Page string `json:"page"`
}

func newSessionResponse(state *models.PageState) SessionResponse {
	return SessionResponse{
		State: state,
		Links: SessionLinks{Page: shared.SessionURL(state.SessionID, state.ActiveSection)},
	}
}
