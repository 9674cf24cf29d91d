package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FormPayload is a pre-encoded request body sent unmodified by the executor.
// ContentType replaces the default application/json header; leave it empty to
// send the body with no Content-Type at all.
type FormPayload struct {
	ContentType string
	Reader      io.Reader
}

// NewFileForm encodes a single file plus optional extra fields as a
// multipart/form-data payload. The returned FormPayload carries the writer's
// boundary-qualified content type.
func NewFileForm(field, filename string, file io.Reader, extra map[string]string) (*FormPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file contents: %w", err)
	}
	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &FormPayload{ContentType: w.FormDataContentType(), Reader: &buf}, nil
}
