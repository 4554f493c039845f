// Package landing is the view model behind the landing page.
//
// A Page wraps the state of one page session. Every user action is an Intent
// handed to Page.Dispatch, which is the only way state changes:
//
//	SELECT_SECTION  set the active navigation section
//	ADD_FILES       append selected document names
//	REMOVE_FILE_AT  drop one document name by position
//	SUBMIT_CONTACT  pass the contact form to the contact collaborator
//
// Actions that succeed raise toast notifications through the Presenter.
// Nothing here performs I/O except the injected ContactSubmitter.
package landing
