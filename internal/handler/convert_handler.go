// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"pdf-to-text/internal/domain"
	apperrors "pdf-to-text/pkg/errors"
)

const (
	uploadFieldName = "file"
	successMessage  = "successfully uploaded"
)

// convertResponse is the success payload of the upload endpoint.
type convertResponse struct {
	Message  string                `json:"message"`
	Contents domain.PageCollection `json:"contents"`
}

// ConvertHandler handles PDF upload and conversion requests
type ConvertHandler struct {
	conversionService domain.ConversionService
	maxFileSize       int64
	logger            domain.Logger
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(conversionService domain.ConversionService, maxFileSize int64, logger domain.Logger) *ConvertHandler {
	return &ConvertHandler{
		conversionService: conversionService,
		maxFileSize:       maxFileSize,
		logger:            logger,
	}
}

// Convert handles a multipart upload with a single "file" field, converts the
// PDF and returns the page mapping. The part is streamed straight to disk.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	part, err := h.findFilePart(r)
	if err != nil {
		writeAppError(w, r, h.logger, h.classifyBodyError(err))
		return
	}
	defer part.Close()

	filename, _ := partFilename(part)
	h.logger.Info("Upload received", "filename", filename, "request_id", GetRequestIDFromContext(r))

	result, err := h.conversionService.Convert(r.Context(), &domain.UploadedFile{
		Filename: filename,
		Content:  part,
	})
	if err != nil {
		if tooLarge, ok := payloadTooLarge(err); ok {
			err = tooLarge
		}
		writeAppError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Message:  successMessage,
		Contents: result.Pages,
	})
}

// findFilePart advances the multipart stream to the first "file" part that
// carries a filename attribute. Parts without one are plain form values.
func (h *ConvertHandler) findFilePart(r *http.Request) (*multipart.Part, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, apperrors.NewMissingFieldError()
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewMissingFieldError()
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == uploadFieldName {
			if _, ok := partFilename(part); ok {
				return part, nil
			}
		}
		part.Close()
	}
}

// classifyBodyError turns multipart read failures into client errors.
func (h *ConvertHandler) classifyBodyError(err error) error {
	if tooLarge, ok := payloadTooLarge(err); ok {
		return tooLarge
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	// Anything else from the multipart reader is a malformed body.
	return &apperrors.AppError{
		Type:       apperrors.ErrorTypeMissingField,
		Message:    apperrors.MessageMissingField,
		StatusCode: http.StatusBadRequest,
		Cause:      err,
	}
}

func payloadTooLarge(err error) (*apperrors.AppError, bool) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apperrors.NewPayloadTooLargeError(maxErr.Limit, err), true
	}
	return nil, false
}

// partFilename returns the raw filename parameter of a part's Content-Disposition.
// multipart.Part.FileName strips directories, so the header is parsed directly
// to keep the name exactly as the client sent it.
func partFilename(part *multipart.Part) (string, bool) {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return "", false
	}
	filename, ok := params["filename"]
	return filename, ok
}
