package landing

import (
	"time"

	"github.com/google/uuid"

	"triptogether_echo/internal/models"
)

// DefaultToastDuration is how long a toast stays on screen
const DefaultToastDuration = 5 * time.Second

// Presenter queues notifications on a page state and expires them
type Presenter struct {
	duration time.Duration
	now      func() time.Time
}

// NewPresenter creates a presenter whose toasts live for duration.
// A non-positive duration falls back to DefaultToastDuration.
func NewPresenter(duration time.Duration) *Presenter {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &Presenter{duration: duration, now: time.Now}
}

// Duration returns the display time of a toast
func (p *Presenter) Duration() time.Duration {
	return p.duration
}

// Notify appends a notification to the state's queue
func (p *Presenter) Notify(state *models.PageState, title, description string) models.Notification {
	n := models.Notification{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		CreatedAt:   p.now(),
	}
	state.Notifications = append(state.Notifications, n)
	return n
}

// Visible prunes expired notifications and returns the rest in insertion order
func (p *Presenter) Visible(state *models.PageState) []models.Notification {
	cutoff := p.now().Add(-p.duration)
	kept := state.Notifications[:0]
	for _, n := range state.Notifications {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	state.Notifications = kept
	return append([]models.Notification{}, kept...)
}

// Drain returns the visible notifications and empties the queue.
// Toasts are shown once and then fade out on the client.
func (p *Presenter) Drain(state *models.PageState) []models.Notification {
	visible := p.Visible(state)
	state.Notifications = []models.Notification{}
	return visible
}
