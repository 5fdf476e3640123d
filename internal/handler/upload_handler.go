package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"roster/internal/config"
	"roster/internal/service"
)

// UploadService is the bulk import behaviour the upload handlers use.
type UploadService interface {
	Import(fileName string, r io.Reader) (*service.ImportReport, error)
	GetImportReport(fileName string) *service.ImportReport
	GetAllImportReports() []*service.ImportReport
}

type UploadHandler struct {
	uploadService UploadService
	flash         *Flasher
}

func NewUploadHandler(uploadService UploadService, flash *Flasher) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, flash: flash}
}

func (h *UploadHandler) UploadForm(w http.ResponseWriter, r *http.Request) {
	render(w, "upload", "Upload students", h.flash.Pop(w, r), nil)
}

func (h *UploadHandler) UploadStudents(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(config.MaxUploadBytes)
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
		return
	case errors.Is(err, http.ErrNotMultipart):
		h.redirectWithError(w, r, "No file part")
		return
	case err != nil:
		http.Error(w, "Bad upload request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		// A part named "file" without a filename arrives as a plain value.
		if _, ok := r.MultipartForm.Value["file"]; ok {
			h.redirectWithError(w, r, "No selected file")
			return
		}
		h.redirectWithError(w, r, "No file part")
		return
	}
	if err != nil {
		h.redirectWithError(w, r, "Failed to read file: "+err.Error())
		return
	}
	defer file.Close()

	if header.Filename == "" {
		h.redirectWithError(w, r, "No selected file")
		return
	}

	report, err := h.uploadService.Import(header.Filename, file)
	if err != nil {
		log.Printf("Error importing %s: %v", header.Filename, err)
		h.redirectWithError(w, r, "Failed to import file: "+err.Error())
		return
	}

	h.flash.Add(w, r, categorySuccess, fmt.Sprintf("Uploaded: %d students added, %d lines skipped.", report.Added, report.Skipped))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UploadHandler) redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	h.flash.Add(w, r, categoryDanger, message)
	http.Redirect(w, r, "/upload", http.StatusSeeOther)
}
