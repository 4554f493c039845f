package landing

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"triptogether_echo/internal/models"
)

// IntentKind names a user action
type IntentKind string

const (
	IntentSelectSection IntentKind = "SELECT_SECTION"
	IntentAddFiles      IntentKind = "ADD_FILES"
	IntentRemoveFileAt  IntentKind = "REMOVE_FILE_AT"
	IntentSubmitContact IntentKind = "SUBMIT_CONTACT"
)

// ErrUnknownIntent is returned by Dispatch for kinds without a handler
var ErrUnknownIntent = errors.New("unknown intent")

// Intent is one user action with its payload. Only the fields of its kind are read.
type Intent struct {
	Kind    IntentKind                `json:"kind"`
	Section models.Section            `json:"section,omitempty"`
	Files   []string                  `json:"files,omitempty"`
	Index   *int                      `json:"index,omitempty"`
	Contact *models.ContactSubmission `json:"contact,omitempty"`
}

// Target is the section the browser should land on after the intent
func (i Intent) Target() models.Section {
	switch i.Kind {
	case IntentSelectSection:
		return i.Section
	case IntentAddFiles, IntentRemoveFileAt:
		return models.SectionDocuments
	case IntentSubmitContact:
		return models.SectionContact
	}
	return ""
}

// IntentHandler applies an intent to a page
type IntentHandler func(ctx context.Context, page *Page, intent Intent) error

// Registry maps intent kinds to handlers
type Registry struct {
	mu       sync.RWMutex
	handlers map[IntentKind]IntentHandler
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[IntentKind]IntentHandler)}
}

// Register adds or replaces the handler for kind
func (r *Registry) Register(kind IntentKind, handler IntentHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = handler
}

// Get retrieves the handler for kind
func (r *Registry) Get(kind IntentKind) (IntentHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[kind]
	return handler, ok
}

// Kinds lists the registered intent kinds
func (r *Registry) Kinds() []IntentKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]IntentKind, 0, len(r.handlers))
	for kind := range r.handlers {
		kinds = append(kinds, kind)
	}
	return kinds
}

// DefaultRegistry holds the handlers of the four page intents
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(IntentSelectSection, func(ctx context.Context, page *Page, intent Intent) error {
		page.SelectSection(intent.Section)
		return nil
	})

	r.Register(IntentAddFiles, func(ctx context.Context, page *Page, intent Intent) error {
		page.AddFiles(intent.Files)
		return nil
	})

	r.Register(IntentRemoveFileAt, func(ctx context.Context, page *Page, intent Intent) error {
		// Without a position there is nothing to remove
		if intent.Index != nil {
			page.RemoveFileAt(*intent.Index)
		}
		return nil
	})

	r.Register(IntentSubmitContact, func(ctx context.Context, page *Page, intent Intent) error {
		var form models.ContactSubmission
		if intent.Contact != nil {
			form = *intent.Contact
		}
		// The visitor already got a toast for the failure
		if err := page.SubmitContact(ctx, form); err != nil {
			log.WithError(err).WithField("session", page.State().SessionID).Warn("Contact collaborator failed")
		}
		return nil
	})

	return r
}
