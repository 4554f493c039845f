package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"triptogether_echo/internal/models"
)

func newTestLeadInbox(t *testing.T) (*LeadInbox, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewLeadInbox(db), mock
}

func TestLeadInboxStoresSubmission(t *testing.T) {
	inbox, mock := newTestLeadInbox(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "contact_leads"`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"Ada Lovelace", "ada@example.com", "+1 234 567 8900", "Summer in Canada?", "session-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	ctx := WithSessionID(context.Background(), "session-1")
	err := inbox.SubmitContactRequest(ctx, models.ContactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+1 234 567 8900",
		Message: "Summer in Canada?",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadInboxReportsFailure(t *testing.T) {
	inbox, mock := newTestLeadInbox(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "contact_leads"`)).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	err := inbox.SubmitContactRequest(context.Background(), models.ContactSubmission{
		Name: "Ada", Email: "ada@example.com", Message: "Hi",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store contact lead")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadInboxRecent(t *testing.T) {
	inbox, mock := newTestLeadInbox(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "contact_leads" WHERE "contact_leads"."deleted_at" IS NULL ORDER BY created_at desc LIMIT`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "name", "email", "session_id"}).
			AddRow(2, now, "Grace", "grace@example.com", "session-2").
			AddRow(1, now.Add(-time.Hour), "Ada", "ada@example.com", "session-1"))

	leads, err := inbox.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Grace", leads[0].Name)
	assert.Equal(t, "session-1", leads[1].SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
