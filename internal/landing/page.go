package landing

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"triptogether_echo/internal/models"
)

const (
	uploadTitle        = "Files uploaded successfully"
	contactSentTitle   = "Message sent!"
	contactSentBody    = "We'll get back to you within 24 hours."
	contactFailedTitle = "Message not sent"
	contactFailedBody  = "Something went wrong. Please try again later."
)

// Page is the view model of one page session. It is not safe for
// concurrent use; build one per request around the loaded state.
type Page struct {
	state     *models.PageState
	presenter *Presenter
	submitter ContactSubmitter
	registry  *Registry
}

// NewPage wraps state. A nil presenter or submitter uses the defaults.
func NewPage(state *models.PageState, presenter *Presenter, submitter ContactSubmitter) *Page {
	if presenter == nil {
		presenter = NewPresenter(DefaultToastDuration)
	}
	if submitter == nil {
		submitter = AcceptAll
	}
	return &Page{
		state:     state,
		presenter: presenter,
		submitter: submitter,
		registry:  DefaultRegistry,
	}
}

// WithRegistry swaps the intent registry, mostly for tests
func (p *Page) WithRegistry(r *Registry) *Page {
	p.registry = r
	return p
}

// State exposes the owned state for persisting it after a dispatch
func (p *Page) State() *models.PageState {
	return p.state
}

// Snapshot returns a copy of the state that views can keep
func (p *Page) Snapshot() *models.PageState {
	return p.state.Clone()
}

// ActiveSection returns the highlighted navigation section
func (p *Page) ActiveSection() models.Section {
	return p.state.ActiveSection
}

// Files returns a copy of the uploaded file names in selection order
func (p *Page) Files() []string {
	return append([]string{}, p.state.Files...)
}

// SelectSection makes id the active section. Any identifier is accepted;
// one without an anchor simply scrolls nowhere.
func (p *Page) SelectSection(id models.Section) {
	p.state.ActiveSection = id
}

// AddFiles appends names in the given order. Duplicates are kept and no
// limit applies. Selecting nothing is a no-op without a notification.
func (p *Page) AddFiles(names []string) {
	if len(names) == 0 {
		return
	}
	p.state.Files = append(p.state.Files, names...)
	p.Notify(uploadTitle, fmt.Sprintf("%d file(s) added", len(names)))
}

// RemoveFileAt drops the entry currently at index. An index outside the
// list leaves it unchanged.
func (p *Page) RemoveFileAt(index int) {
	if index < 0 || index >= len(p.state.Files) {
		return
	}
	files := make([]string, 0, len(p.state.Files)-1)
	files = append(files, p.state.Files[:index]...)
	files = append(files, p.state.Files[index+1:]...)
	p.state.Files = files
}

// SubmitContact passes the form to the contact collaborator and raises one
// notification describing the outcome. The form values are not kept.
func (p *Page) SubmitContact(ctx context.Context, form models.ContactSubmission) error {
	if err := p.submitter.SubmitContactRequest(ctx, form); err != nil {
		p.Notify(contactFailedTitle, contactFailedBody)
		return fmt.Errorf("contact submission failed: %w", err)
	}
	p.Notify(contactSentTitle, contactSentBody)
	return nil
}

// Notify raises a toast on this page
func (p *Page) Notify(title, description string) models.Notification {
	return p.presenter.Notify(p.state, title, description)
}

// Dispatch applies one intent to the page through the registry
func (p *Page) Dispatch(ctx context.Context, intent Intent) error {
	handler, ok := p.registry.Get(intent.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownIntent, intent.Kind)
	}
	if err := handler(ctx, p, intent); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"session": p.state.SessionID,
		"intent":  intent.Kind,
	}).Debug("Intent applied")
	return nil
}
