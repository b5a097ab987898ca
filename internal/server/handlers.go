package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
)

type checkRequest struct {
	Text string `json:"text"`
}

type checkResponse struct {
	Misspelled  []string           `json:"misspelled"`
	Corrections []spell.Correction `json:"corrections"`
}

type wordRequest struct {
	Word string `json:"word"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		s.writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	misspelled := s.checker.Check(req.Text)
	resp := checkResponse{
		Misspelled:  misspelled,
		Corrections: s.checker.Suggest(misspelled),
	}
	if resp.Misspelled == nil {
		resp.Misspelled = []string{}
	}
	if resp.Corrections == nil {
		resp.Corrections = []spell.Correction{}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	word := spell.Normalize(req.Word)
	if word == "" {
		s.writeError(w, http.StatusBadRequest, "word must contain letters")
		return
	}
	// Persist before mutating the in-memory dictionary; a store failure
	// must leave the session state unchanged.
	if s.store != nil {
		if _, err := s.store.Add(r.Context(), word); err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	added := s.dict.Add(word)
	s.writeJSON(w, http.StatusCreated, map[string]any{"word": word, "added": added})
}

// handleRemoveWord drops a word from the persistent store only. The loaded
// dictionary never shrinks; the removal is visible after the next load.
func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	word := spell.Normalize(mux.Vars(r)["word"])
	if word == "" {
		s.writeError(w, http.StatusBadRequest, "word must contain letters")
		return
	}
	if s.store == nil {
		s.writeError(w, http.StatusNotImplemented, "no persistent word store configured")
		return
	}
	if err := s.store.Remove(r.Context(), word); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"word": word, "removed": true})
}

func (s *Server) handlePurgeCache(w http.ResponseWriter, r *http.Request) {
	purged := s.checker.PurgeCache()
	s.writeJSON(w, http.StatusOK, map[string]int{"purged": purged})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.checker.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "words": s.dict.Len()})
}

// methodNotAllowed answers a known path hit with an unsupported method,
// naming the method the path accepts.
func (s *Server) methodNotAllowed(allowed string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allowed)
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
