package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/becom/pointage-backend-go/internal/domain/export"
	"github.com/becom/pointage-backend-go/internal/handler/http/response"
	"github.com/becom/pointage-backend-go/internal/pkg/storage"
)

type ExportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
	fileStorage   storage.FileStorage
}

func NewExportHandler(exportService export.ExportService, fileStorage storage.FileStorage) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
		fileStorage:   fileStorage,
	}
}

// Generate implements ExportHandler. Safe to call repeatedly for the same
// month: the engine atomically replaces the prior archive.
func (h *exportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req export.GenerateExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode generate export request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.exportService.GenerateMonthlyExport(r.Context(), req.Year, req.Month)
	if err != nil {
		// Not a failure: the month simply has no approved records, and no
		// archive was published.
		if errors.Is(err, export.ErrEmptyResult) {
			response.SuccessWithMessage(w, "No approved records for the requested month, nothing exported", nil)
			return
		}
		slog.Error("Monthly export failed", "year", req.Year, "month", req.Month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Monthly export published", result)
}

// Download streams a published archive from the export storage.
func (h *exportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	archivePath := chi.URLParam(r, "*")
	if archivePath == "" {
		response.NotFound(w, "Archive not found")
		return
	}

	file, err := h.fileStorage.Open(r.Context(), archivePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, "Archive not found")
			return
		}
		slog.Error("Failed to open export archive", "path", archivePath, "error", err)
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(archivePath)+`"`)
	if _, err := io.Copy(w, file); err != nil {
		slog.Error("Failed to stream export archive", "path", archivePath, "error", err)
	}
}
