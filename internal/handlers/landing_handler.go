package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"triptogether_echo/internal/content"
	"triptogether_echo/internal/landing"
	"triptogether_echo/internal/models"
	"triptogether_echo/internal/services"
	"triptogether_echo/web/templates/pages"
	"triptogether_echo/web/templates/shared"
)

type LandingHandler struct {
	store     services.StateStore
	content   *content.Holder
	presenter *landing.Presenter
	submitter landing.ContactSubmitter
	now       func() time.Time
}

func NewLandingHandler(store services.StateStore, holder *content.Holder, presenter *landing.Presenter, submitter landing.ContactSubmitter) *LandingHandler {
	if presenter == nil {
		presenter = landing.NewPresenter(landing.DefaultToastDuration)
	}
	if submitter == nil {
		submitter = landing.AcceptAll
	}
	return &LandingHandler{
		store:     store,
		content:   holder,
		presenter: presenter,
		submitter: submitter,
		now:       time.Now,
	}
}

// Home starts a fresh page session, so every load begins on the hero
// with no files and no toasts
func (h *LandingHandler) Home(c echo.Context) error {
	state, err := h.store.Create(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Failed to start page session")
	}
	return h.render(c, state.SessionID)
}

// Show renders an existing page session and shows its pending toasts once
func (h *LandingHandler) Show(c echo.Context) error {
	return h.render(c, c.Param("session"))
}

// Select handles a navigation click
func (h *LandingHandler) Select(c echo.Context) error {
	return h.apply(c, landing.Intent{
		Kind:    landing.IntentSelectSection,
		Section: models.Section(c.FormValue("section")),
	})
}

// AddFiles records the names of the selected documents
func (h *LandingHandler) AddFiles(c echo.Context) error {
	names, err := uploadedFileNames(c.Request(), documentsField)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid upload")
	}
	return h.apply(c, landing.Intent{Kind: landing.IntentAddFiles, Files: names})
}

// RemoveFile drops one uploaded document by position
func (h *LandingHandler) RemoveFile(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file index")
	}
	return h.apply(c, landing.Intent{Kind: landing.IntentRemoveFileAt, Index: &index})
}

// Contact submits the contact form. Values the browser would have refused
// are dropped without a notification.
func (h *LandingHandler) Contact(c echo.Context) error {
	var form models.ContactSubmission
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact form")
	}

	if !validContact(form) {
		log.WithField("session", c.Param("session")).Debug("Contact form rejected by field validation")
		return c.Redirect(http.StatusSeeOther, shared.SessionURL(c.Param("session"), models.SectionContact))
	}

	return h.apply(c, landing.Intent{Kind: landing.IntentSubmitContact, Contact: &form})
}

// page builds the view model around a loaded state
func (h *LandingHandler) page(state *models.PageState) *landing.Page {
	return landing.NewPage(state, h.presenter, h.submitter)
}

// dispatch applies intent to the session under the store's lock
func (h *LandingHandler) dispatch(ctx context.Context, sessionID string, intent landing.Intent) (*models.PageState, error) {
	ctx = services.WithSessionID(ctx, sessionID)
	return h.store.Update(ctx, sessionID, func(state *models.PageState) error {
		return h.page(state).Dispatch(ctx, intent)
	})
}

// apply dispatches a form intent and redirects back to the section it targets
func (h *LandingHandler) apply(c echo.Context, intent landing.Intent) error {
	sessionID := c.Param("session")

	_, err := h.dispatch(c.Request().Context(), sessionID, intent)
	if errors.Is(err, services.ErrStateNotFound) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err != nil {
		return fmt.Errorf("apply %s: %w", intent.Kind, err)
	}

	return c.Redirect(http.StatusSeeOther, shared.SessionURL(sessionID, intent.Target()))
}

// render shows the page and drains the toasts it displays
func (h *LandingHandler) render(c echo.Context, sessionID string) error {
	var toasts []models.Notification
	state, err := h.store.Update(c.Request().Context(), sessionID, func(state *models.PageState) error {
		toasts = h.presenter.Drain(state)
		return nil
	})
	if errors.Is(err, services.ErrStateNotFound) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err != nil {
		return fmt.Errorf("load page session: %w", err)
	}

	site := h.content.Get()
	props := pages.LandingProps{
		Title:         fmt.Sprintf("%s | Study Abroad Programs", site.Brand),
		Site:          site,
		State:         state,
		Toasts:        toasts,
		ToastDuration: h.presenter.Duration(),
		Now:           h.now(),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	c.Response().WriteHeader(http.StatusOK)
	return pages.Landing(props).Render(c.Request().Context(), c.Response())
}
