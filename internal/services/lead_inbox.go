package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"triptogether_echo/internal/models"
)

type sessionIDKey struct{}

// WithSessionID tags ctx with the page session a contact form came from
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// LeadInbox is a contact collaborator that records each submission as a lead
// for the sales team. Only used when CONTACT_SINK=database.
type LeadInbox struct {
	db *gorm.DB
}

func NewLeadInbox(db *gorm.DB) *LeadInbox {
	return &LeadInbox{db: db}
}

// SubmitContactRequest stores the form as a ContactLead
func (i *LeadInbox) SubmitContactRequest(ctx context.Context, form models.ContactSubmission) error {
	lead := models.ContactLead{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Message:   form.Message,
		SessionID: sessionIDFrom(ctx),
	}
	if err := i.db.WithContext(ctx).Create(&lead).Error; err != nil {
		return fmt.Errorf("failed to store contact lead: %w", err)
	}
	return nil
}

// Recent returns the newest leads first
func (i *LeadInbox) Recent(ctx context.Context, limit int) ([]models.ContactLead, error) {
	var leads []models.ContactLead
	if err := i.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact leads: %w", err)
	}
	return leads, nil
}
