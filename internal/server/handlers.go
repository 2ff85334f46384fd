package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/anchor-insight/internal/scoring"
)

// maxBodyBytes caps request bodies; score and generate payloads are small.
const maxBodyBytes = 1 << 20

// handleScore scores raw Likert answers into the full scoring envelope.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to read request body.", nil)
		return
	}

	req, err := scoring.ParseScoreRequest(raw)
	if err != nil {
		s.writeError(w, err)
		return
	}

	envelope, err := scoring.Score(s.bank, req, s.now())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope)
}

// handleGenerateReport runs the report orchestrator end to end.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "INVALID_REQUEST", "Failed to read request body.", nil)
		return
	}

	envelope, err := s.orch.Generate(r.Context(), raw)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, envelope)
}

// handleQuestionBank serves the embedded question bank.
func (s *Server) handleQuestionBank(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.bank)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
