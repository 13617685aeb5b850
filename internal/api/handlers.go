package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/LizeLing/JSONVisualizer/pkg/errors"
	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
	"github.com/LizeLing/JSONVisualizer/pkg/observability"
)

// uploadResponse is returned after a successful document upload.
type uploadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Size      int       `json:"size"`
	Nodes     int       `json:"nodes"`
	ExpiresAt time.Time `json:"expires_at"`
}

// searchResponse carries the hits for one search request.
type searchResponse struct {
	Term  string         `json:"term"`
	Count int            `json:"count"`
	Hits  []jsontree.Hit `json:"hits"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload parses the request body as JSON and stores the document.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				apperrors.New(apperrors.ErrCodeInvalidInput, "request body exceeds upload limit"))
			return
		}
		s.writeError(w, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "failed to read request body"))
		return
	}

	label := r.URL.Query().Get("name")
	observability.Document().OnParseStart(r.Context(), label)
	start := time.Now()
	value, err := jsontree.ParseBytes(data)
	observability.Document().OnParseComplete(r.Context(), label, jsontree.Count(value), time.Since(start), err)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	doc := s.store.Put(label, value, len(data))
	s.logger.Info("document stored", "id", doc.ID, "size", doc.Size, "nodes", doc.Nodes)

	writeJSON(w, http.StatusCreated, uploadResponse{
		ID:        doc.ID,
		Name:      doc.Name,
		Size:      doc.Size,
		Nodes:     doc.Nodes,
		ExpiresAt: doc.ExpiresAt,
	})
}

// handleTree builds and returns the document's render tree. An optional
// "search" query parameter highlights matching subtrees.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.store.Get(chi.URLParam(r, "docID"))
	if !ok {
		s.writeError(w, http.StatusNotFound,
			apperrors.New(apperrors.ErrCodeDocumentNotFound, "document not found"))
		return
	}

	label := doc.Name
	if label == "" {
		label = "root"
	}
	root, err := jsontree.Build(doc.Value, jsontree.BuildOptions{
		Label:      label,
		SearchTerm: r.URL.Query().Get("search"),
		MaxDepth:   s.cfg.MaxDepth,
	})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, root)
}

// handleSearch runs a substring search over the stored document.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.store.Get(chi.URLParam(r, "docID"))
	if !ok {
		s.writeError(w, http.StatusNotFound,
			apperrors.New(apperrors.ErrCodeDocumentNotFound, "document not found"))
		return
	}

	term := r.URL.Query().Get("term")
	start := time.Now()
	hits, err := jsontree.Search(doc.Value, term, jsontree.SearchOptions{MaxDepth: s.cfg.MaxDepth})
	observability.Document().OnSearchComplete(r.Context(), term, len(hits), time.Since(start), err)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if hits == nil {
		hits = []jsontree.Hit{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Term: term, Count: len(hits), Hits: hits})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docID")
	if !s.store.Delete(id) {
		s.writeError(w, http.StatusNotFound,
			apperrors.New(apperrors.ErrCodeDocumentNotFound, "document not found"))
		return
	}
	s.logger.Info("document deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  string(apperrors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
