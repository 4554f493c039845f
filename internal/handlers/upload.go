package handlers

import (
	"errors"
	"io"
	"net/http"
)

const documentsField = "documents"

// uploadedFileNames walks the multipart body and keeps the file name of
// each part sent for field. Contents are skipped, never buffered.
func uploadedFileNames(r *http.Request, field string) ([]string, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		// An empty file input still sends a part without a name
		if part.FormName() == field && part.FileName() != "" {
			names = append(names, part.FileName())
		}
		part.Close()
	}
	return names, nil
}
