package router

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/creatorconnect/server/internal/pkg/goerror"
)

const (
	// maxMultipartMemory bounds how much of a multipart body is held in memory
	// while parsing; larger parts spill to temporary files.
	maxMultipartMemory = 32 << 20

	// maxMultipartBody caps how much multipart body is read at all: the upload
	// size limit plus headroom for the other form fields and part headers.
	// Oversized uploads abort here instead of spooling to disk first.
	maxMultipartBody = 16 << 20
)

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// GetParam reads a path parameter from the request context (as stored by httprouter).
func (r *Request) GetParam(key string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(key)
}

// GetQuery reads a trimmed query-string value.
func (r *Request) GetQuery(key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// DecodeBody decodes the JSON body into dst.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.NewInvalidFormat()
	}

	return nil
}

// MultipartFile parses the multipart form (if not yet parsed) and returns the
// uploaded file and its metadata for the given form field.
func (r *Request) MultipartFile(name string) (multipart.File, *multipart.FileHeader, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return nil, nil, goerror.NewInvalidFormat("Invalid request content-type")
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxMultipartBody)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, goerror.NewInvalidFormat("File size cannot exceed 15MB")
		}
		return nil, nil, goerror.NewInvalidFormat()
	}

	file, header, err := r.FormFile(name)
	if err != nil {
		return nil, nil, goerror.NewInvalidFormat("File is required")
	}

	return file, header, nil
}
