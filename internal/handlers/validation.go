package handlers

import (
	"regexp"
	"strings"

	"triptogether_echo/internal/landing"
	"triptogether_echo/internal/models"
)

// emailPattern is the "valid e-mail address" rule browsers apply to type=email
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// validContact applies the constraints of the rendered contact form:
// name, email and message are required and email must look like one
func validContact(form models.ContactSubmission) bool {
	if form.Name == "" || form.Message == "" {
		return false
	}
	return emailPattern.MatchString(strings.TrimSpace(form.Email))
}

// intentPayloadError names what an API intent is missing, or returns ""
// when the payload carries what its kind needs. The rendered forms can
// never send these, so the API refuses them instead of guessing.
func intentPayloadError(intent landing.Intent) string {
	switch intent.Kind {
	case landing.IntentRemoveFileAt:
		if intent.Index == nil {
			return "Missing file index"
		}
	case landing.IntentSubmitContact:
		if intent.Contact == nil || !validContact(*intent.Contact) {
			return "Invalid contact form"
		}
	}
	return ""
}
