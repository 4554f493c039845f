package landing

import (
	"context"

	"triptogether_echo/internal/models"
)

// ContactSubmitter hands a contact form to whoever answers it
type ContactSubmitter interface {
	SubmitContactRequest(ctx context.Context, form models.ContactSubmission) error
}

// ContactSubmitterFunc adapts a function to ContactSubmitter
type ContactSubmitterFunc func(ctx context.Context, form models.ContactSubmission) error

func (f ContactSubmitterFunc) SubmitContactRequest(ctx context.Context, form models.ContactSubmission) error {
	return f(ctx, form)
}

// AcceptAll reports success immediately and keeps nothing
var AcceptAll ContactSubmitter = ContactSubmitterFunc(func(ctx context.Context, form models.ContactSubmission) error {
	return nil
})
