package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/naanu1/pdf-comparison/extract"
	"github.com/naanu1/pdf-comparison/ocr"
	"github.com/naanu1/pdf-comparison/pkg/metrics"
)

// handleCompare accepts two uploaded PDFs (multipart fields "pdf1" and
// "pdf2") and responds with the classified diff:
//
//	{"differences": [{"kind": "...", ...}, ...],
//	 "summary": {"added": N, "removed": N, "modified": N}}
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	s.setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
		// fall through
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Two documents plus multipart framing overhead.
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.cfg.MaxUploadBytes+1<<20)

	oldPDF, err := s.readUpload(r, "pdf1")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	newPDF, err := s.readUpload(r, "pdf2")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.comparer.Compare(r.Context(), oldPDF, newPDF)
	if err != nil {
		// A scanned document on a build without recognition support is a
		// server capability gap, not a bad upload.
		if errors.Is(err, ocr.ErrNotEnabled) {
			metrics.ComparisonsTotal.WithLabelValues("error").Inc()
			writeError(w, http.StatusInternalServerError, "OCR support is not enabled on this server")
			return
		}
		var exErr *extract.Error
		if errors.As(err, &exErr) {
			metrics.ComparisonsTotal.WithLabelValues("unreadable").Inc()
			writeError(w, http.StatusBadRequest, fmt.Sprintf("could not read this PDF: %v", err))
			return
		}
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "failed to process PDFs")
		return
	}

	metrics.ComparisonsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, result)
}

// readUpload pulls one uploaded PDF out of the multipart form, enforcing
// the filename extension and the per-file size cap.
func (s *Server) readUpload(r *http.Request, field string) ([]byte, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing upload %q", field)
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return nil, fmt.Errorf("%q: only PDF files are supported", header.Filename)
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%q: file size exceeds %d byte limit", header.Filename, s.cfg.MaxUploadBytes)
	}

	return readAll(file, s.cfg.MaxUploadBytes)
}

// readAll reads the upload, guarding against a lying multipart Size header.
func readAll(file multipart.File, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file size exceeds %d byte limit", limit)
	}
	return data, nil
}

func (s *Server) setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", s.cfg.FrontendOrigin)
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
