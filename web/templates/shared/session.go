package shared

import (
	"net/url"
	"strconv"

	"triptogether_echo/internal/models"
)

// SessionURL is the address of a page session, optionally scrolled to a section
func SessionURL(sessionID string, section models.Section) string {
	u := "/s/" + url.PathEscape(sessionID)
	if section != "" {
		u += "#" + url.PathEscape(string(section))
	}
	return u
}

// SelectURL is where navigation controls post SELECT_SECTION
func SelectURL(sessionID string) string {
	return "/s/" + url.PathEscape(sessionID) + "/select"
}

// FilesURL is where the document picker posts ADD_FILES
func FilesURL(sessionID string) string {
	return "/s/" + url.PathEscape(sessionID) + "/files"
}

// RemoveFileURL is where a file row posts REMOVE_FILE_AT
func RemoveFileURL(sessionID string, index int) string {
	return FilesURL(sessionID) + "/" + strconv.Itoa(index) + "/delete"
}

// ContactURL is where the contact form posts SUBMIT_CONTACT
func ContactURL(sessionID string) string {
	return "/s/" + url.PathEscape(sessionID) + "/contact"
}
