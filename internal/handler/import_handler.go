package handler

import (
	"net/http"
	"path/filepath"
)

type ImportHandler struct {
	uploadService UploadService
}

func NewImportHandler(uploadService UploadService) *ImportHandler {
	return &ImportHandler{uploadService: uploadService}
}

// GetFileImport returns the report of the latest import of one file
func (h *ImportHandler) GetFileImport(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("fileName")
	if fileName == "" {
		http.Error(w, "fileName parameter is required", http.StatusBadRequest)
		return
	}

	report := h.uploadService.GetImportReport(filepath.Base(fileName))
	if report == nil {
		http.Error(w, "File not found or never imported", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetAllImports returns the reports of every import since startup
func (h *ImportHandler) GetAllImports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.uploadService.GetAllImportReports())
}
