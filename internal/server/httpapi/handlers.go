package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/models"
	"github.com/go-chi/chi/v5"
)

// multipart overhead allowed on top of the file itself
const formOverhead = 1 << 20

type uploadResponse struct {
	Handle string    `json:"handle"`
	Expiry time.Time `json:"expiry"`
}

type viewTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+formOverhead)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, fmt.Errorf("%w: %w", common.ErrInvalidRequest, err))
			return
		}
		s.writeError(w, r, fmt.Errorf("%w: missing file part", common.ErrInvalidRequest))
		return
	}
	defer file.Close()

	seconds, err := strconv.ParseInt(r.FormValue("duration"), 10, 64)
	if err != nil || seconds <= 0 {
		s.writeError(w, r, fmt.Errorf("%w: duration must be a positive number of seconds", common.ErrInvalidRequest))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", common.ErrInvalidRequest, err))
		return
	}

	receipt, err := s.gateway.Upload(ctx, &models.UploadRequest{
		Data:        data,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Duration:    time.Duration(seconds) * time.Second,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Handle: receipt.Handle, Expiry: receipt.ExpiresAt})
}

func (s *Server) access(w http.ResponseWriter, r *http.Request) {
	content, err := s.gateway.Retrieve(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeContent(w, content, "attachment")
}

func (s *Server) issueViewToken(w http.ResponseWriter, r *http.Request) {
	token, err := s.gateway.IssueViewToken(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewTokenResponse{Token: token.ID, ExpiresAt: token.ExpiresAt})
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	tokenID := r.URL.Query().Get("token")
	if tokenID == "" {
		s.writeError(w, r, common.ErrTokenInvalidOrExpired)
		return
	}

	content, err := s.gateway.View(r.Context(), chi.URLParam(r, "handle"), tokenID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeContent(w, content, "inline")
}

func (s *Server) evict(w http.ResponseWriter, r *http.Request) {
	if err := s.gateway.Evict(r.Context(), chi.URLParam(r, "handle")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) reconcile(w http.ResponseWriter, r *http.Request) {
	res, ran, err := s.reconciler.RunOnce(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ran {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "reconcile-in-progress", Message: "a reconciliation pass is already running"})
		return
	}
	writeJSON(w, http.StatusOK, res)
}
