package models

import "time"

// Notification is a short-lived toast raised by a user action
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// PageState is the transient state of one page session.
// It lives as long as the visitor keeps the page open and is never persisted
// beyond the session store TTL.
type PageState struct {
	SessionID     string         `json:"session_id"`
	ActiveSection Section        `json:"active_section"`
	Files         []string       `json:"files"`
	Notifications []Notification `json:"notifications"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewPageState returns the state of a freshly loaded page
func NewPageState(sessionID string, now time.Time) *PageState {
	return &PageState{
		SessionID:     sessionID,
		ActiveSection: SectionHome,
		Files:         []string{},
		Notifications: []Notification{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone returns a deep copy so views never share slices with the owner.
func (s *PageState) Clone() *PageState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Files = append([]string{}, s.Files...)
	cp.Notifications = append([]Notification{}, s.Notifications...)
	return &cp
}
