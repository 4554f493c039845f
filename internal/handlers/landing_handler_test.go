package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triptogether_echo/internal/content"
	"triptogether_echo/internal/landing"
	"triptogether_echo/internal/middleware"
	"triptogether_echo/internal/models"
	"triptogether_echo/internal/services"
)

type recordingSubmitter struct {
	mu    sync.Mutex
	forms []models.ContactSubmission
	err   error
}

func (r *recordingSubmitter) SubmitContactRequest(ctx context.Context, form models.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms = append(r.forms, form)
	return r.err
}

func (r *recordingSubmitter) calls() []models.ContactSubmission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ContactSubmission{}, r.forms...)
}

type testServer struct {
	e         *echo.Echo
	store     *services.MemoryStore
	submitter *recordingSubmitter
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	site, err := content.Default()
	require.NoError(t, err)

	store := services.NewMemoryStore(time.Hour)
	submitter := &recordingSubmitter{}
	h := NewLandingHandler(store, content.NewHolder(site), landing.NewPresenter(landing.DefaultToastDuration), submitter)

	e := echo.New()
	e.HTTPErrorHandler = middleware.CustomErrorHandler
	RegisterRoutes(e, h)

	return &testServer{e: e, store: store, submitter: submitter}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) newSession(t *testing.T) string {
	t.Helper()
	state, err := s.store.Create(context.Background())
	require.NoError(t, err)
	return state.SessionID
}

func (s *testServer) page(t *testing.T, sessionID string) *goquery.Document {
	t.Helper()
	rec := s.do(httptest.NewRequest(http.MethodGet, "/s/"+sessionID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func (s *testServer) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return s.do(req)
}

func (s *testServer) upload(t *testing.T, sessionID string, names ...string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, name := range names {
		part, err := w.CreateFormFile("documents", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, "file body")
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/s/"+sessionID+"/files", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return s.do(req)
}

func toastTitles(doc *goquery.Document) []string {
	var titles []string
	doc.Find(".toast .toast-title").Each(func(_ int, s *goquery.Selection) {
		titles = append(titles, s.Text())
	})
	return titles
}

func fileNames(doc *goquery.Document) []string {
	var names []string
	doc.Find(".file-row .file-name").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	return names
}

func activeNav(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(".nav-link.active").Text())
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, location, rec.Header().Get(echo.HeaderLocation))
}

func TestHomeStartsFreshSession(t *testing.T) {
	s := newTestServer(t)

	var sessions []string
	for i := 0; i < 2; i++ {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		doc, err := goquery.NewDocumentFromReader(rec.Body)
		require.NoError(t, err)

		assert.Equal(t, "Home", activeNav(doc))
		assert.Equal(t, 1, doc.Find(`li[aria-current="true"]`).Length())
		assert.Zero(t, doc.Find(".uploaded").Length())
		assert.Empty(t, toastTitles(doc))

		action, _ := doc.Find("form.contact-form").Attr("action")
		sessions = append(sessions, action)
	}

	assert.NotEqual(t, sessions[0], sessions[1])
	assert.Equal(t, 2, s.store.Len())
}

func TestShowUnknownSessionRedirectsHome(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(httptest.NewRequest(http.MethodGet, "/s/missing", nil))
	assertRedirect(t, rec, "/")
}

func TestSelectSectionRedirectsToAnchor(t *testing.T) {
	s := newTestServer(t)
	id := s.newSession(t)

	rec := s.postForm("/s/"+id+"/select", url.Values{"section": {"contact"}})
	assertRedirect(t, rec, "/s/"+id+"#contact")

	doc := s.page(t, id)
	assert.Equal(t, "Contact", activeNav(doc))
	assert.Equal(t, 1, doc.Find(`li[aria-current="true"]`).Length())
	assert.Equal(t, 1, doc.Find("section#contact").Length())
	assert.Empty(t, toastTitles(doc))
}

func TestSelectUnknownSectionIsKept(t *testing.T) {
	s := newTestServer(t)
	id := s.newSession(t)

	rec := s.postForm("/s/"+id+"/select", url.Values{"section": {"pricing"}})
	assertRedirect(t, rec, "/s/"+id+"#pricing")

	doc := s.page(t, id)
	assert.Empty(t, activeNav(doc))
	assert.Zero(t, doc.Find("#pricing").Length())
}

func TestUploadThenRemoveScenario(t *testing.T) {
	s := newTestServer(t)
	id := s.newSession(t)

	rec := s.upload(t, id, "passport.pdf", "photo.jpg")
	assertRedirect(t, rec, "/s/"+id+"#documents")

	doc := s.page(t, id)
	assert.Equal(t, []string{"passport.pdf", "photo.jpg"}, fileNames(doc))
	assert.Equal(t, "Uploaded Files (2)", doc.Find(".uploaded label").Text())
	assert.Equal(t, []string{"Files uploaded successfully"}, toastTitles(doc))
	assert.Equal(t, "2 file(s) added", doc.Find(".toast .toast-description").Text())
	assert.Equal(t, "animation-duration: 5000ms", doc.Find(".toast").AttrOr("style", ""))

	// Toasts are shown once
	assert.Empty(t, toastTitles(s.page(t, id)))

	rec = s.postForm("/s/"+id+"/files/0/delete", nil)
	assertRedirect(t, rec, "/s/"+id+"#documents")

	doc = s.page(t, id)
	assert.Equal(t, []string{"photo.jpg"}, fileNames(doc))
	assert.Equal(t, "Uploaded Files (1)", doc.Find(".uploaded label").Text())
	assert.Empty(t, toastTitles(doc))
}

func TestUploadKeepsDuplicatesAndOrder(t *testing.T) {
	s := newTestServer(t)
	id := s.newSession(t)

	s.upload(t, id, "a.pdf")
	s.upload(t, id, "b.pdf", "a.pdf")

	doc := s.page(t, id)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "a.pdf"}, fileNames(doc))
	assert.Len(t, toastTitles(doc), 2)
}

func TestUploadNothingIsSilent(t *testing.T) {
	s := newTestServer(t)
	id := s.newSession(t)

	// An empty file input still posts one part without a file name
	rec := s.upload(t, id, "")
	assertRedirect(t, rec, "/s/"+id+"#documents")

	doc := s.page(t, id)
	assert.Zero(t, doc.Find(".uploaded").Length())
	assert.Empty(t, toastTitles(doc))
}

func TestUploadRequiresMultipart(t *testing.T) {
	s := newTestServer(t)
	id := s.newSession(t)

	rec := s.postForm("/s/"+id+"/files", url.Values{"documents": {"passport.pdf"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFile(t *testing.T) {
	tests := []struct {
		name   string
		index  string
		code   int
		remain []string
	}{
		{name: "first", index: "0", code: http.StatusSeeOther, remain: []string{"b.pdf", "c.pdf"}},
		{name: "last", index: "2", code: http.StatusSeeOther, remain: []string{"a.pdf", "b.pdf"}},
		{name: "out of range", index: "3", code: http.StatusSeeOther, remain: []string{"a.pdf", "b.pdf", "c.pdf"}},
		{name: "negative", index: "-1", code: http.StatusSeeOther, remain: []string{"a.pdf", "b.pdf", "c.pdf"}},
		{name: "not a number", index: "first", code: http.StatusBadRequest, remain: []string{"a.pdf", "b.pdf", "c.pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			id := s.newSession(t)
			s.upload(t, id, "a.pdf", "b.pdf", "c.pdf")
			s.page(t, id)

			rec := s.postForm("/s/"+id+"/files/"+tt.index+"/delete", nil)
			assert.Equal(t, tt.code, rec.Code)

			doc := s.page(t, id)
			assert.Equal(t, tt.remain, fileNames(doc))
			assert.Empty(t, toastTitles(doc))
		})
	}
}

func TestContactSubmission(t *testing.T) {
	s := newTestServer(t)
	id := s.newSession(t)

	form := url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"phone":   {"+1 234 567 8900"},
		"message": {"Summer in Canada?"},
	}
	rec := s.postForm("/s/"+id+"/contact", form)
	assertRedirect(t, rec, "/s/"+id+"#contact")

	calls := s.submitter.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.ContactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+1 234 567 8900",
		Message: "Summer in Canada?",
	}, calls[0])

	doc := s.page(t, id)
	assert.Equal(t, []string{"Message sent!"}, toastTitles(doc))
	assert.Equal(t, "We'll get back to you within 24 hours.", doc.Find(".toast .toast-description").Text())

	// Submitted values are never echoed back
	assert.Empty(t, doc.Find("#name").AttrOr("value", ""))
	assert.Empty(t, doc.Find("#message").Text())
}

func TestContactRejectedByFieldValidation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{name: "missing name", form: url.Values{"email": {"a@b.co"}, "message": {"hi"}}},
		{name: "missing email", form: url.Values{"name": {"A"}, "message": {"hi"}}},
		{name: "malformed email", form: url.Values{"name": {"A"}, "email": {"not-an-email"}, "message": {"hi"}}},
		{name: "missing message", form: url.Values{"name": {"A"}, "email": {"a@b.co"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			id := s.newSession(t)

			rec := s.postForm("/s/"+id+"/contact", tt.form)
			assertRedirect(t, rec, "/s/"+id+"#contact")

			assert.Empty(t, s.submitter.calls())
			assert.Empty(t, toastTitles(s.page(t, id)))
		})
	}
}

func TestContactCollaboratorFailure(t *testing.T) {
	s := newTestServer(t)
	s.submitter.err = errors.New("smtp down")
	id := s.newSession(t)

	rec := s.postForm("/s/"+id+"/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
	})
	assertRedirect(t, rec, "/s/"+id+"#contact")

	assert.Equal(t, []string{"Message not sent"}, toastTitles(s.page(t, id)))
}

func TestIntentOnUnknownSessionRedirectsHome(t *testing.T) {
	s := newTestServer(t)

	rec := s.postForm("/s/missing/select", url.Values{"section": {"about"}})
	assertRedirect(t, rec, "/")
}

func TestLandingRendersStaticContent(t *testing.T) {
	s := newTestServer(t)
	doc := s.page(t, s.newSession(t))

	for _, section := range models.Sections {
		assert.Equal(t, 1, doc.Find("section#"+string(section)).Length(), section)
	}
	assert.Equal(t, 3, doc.Find(".program-card").Length())
	assert.Equal(t, 3, doc.Find(".testimonial").Length())
	assert.Equal(t, 5, doc.Find(".testimonial").First().Find(`[data-icon="Star"]`).Length())
	assert.Contains(t, doc.Find(`.program-card[data-program="canada"] .price-value`).Text(), "5,300 CAD")
	assert.Equal(t, "#contact", doc.Find(".navbar a.button").AttrOr("href", ""))
	assert.Equal(t, "multipart/form-data", doc.Find("form.upload").AttrOr("enctype", ""))

	input := doc.Find("#documents-input")
	_, multiple := input.Attr("multiple")
	assert.True(t, multiple)
	assert.Equal(t, "documents", input.AttrOr("name", ""))
}
