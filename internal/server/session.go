package server

import (
	"net/http"
	"strings"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
)

type sessionRequest struct {
	Text string `json:"text"`
}

type sessionPrompt struct {
	Type       string   `json:"type"`
	Index      int      `json:"index"`
	Token      string   `json:"token"`
	Candidates []string `json:"candidates"`
}

type sessionChoice struct {
	Choice int `json:"choice"`
}

type sessionResult struct {
	Type      string             `json:"type"`
	Original  string             `json:"original"`
	Corrected string             `json:"corrected"`
	Applied   []spell.Correction `json:"applied"`
}

// handleSession upgrades to a WebSocket and runs interactive correction
// rounds: for each text the client sends, every misspelled token is offered
// back as a prompt with ranked candidates, and the client answers with the
// chosen index (0 skips). The round ends with a result message.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()
	s.logger.Info("correction session opened", "remote", conn.RemoteAddr().String())

	for {
		var req sessionRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			continue
		}

		// The chooser blocks on the client's answer, so each session
		// handles one text at a time. Index numbers the prompts within
		// the round so answers can be correlated client-side.
		broken := false
		prompts := 0
		choose := func(token string, candidates []string) int {
			if broken {
				return 0
			}
			prompt := sessionPrompt{Type: "prompt", Index: prompts, Token: token, Candidates: candidates}
			prompts++
			if err := conn.WriteJSON(prompt); err != nil {
				broken = true
				return 0
			}
			var choice sessionChoice
			if err := conn.ReadJSON(&choice); err != nil {
				broken = true
				return 0
			}
			return choice.Choice
		}

		corrected, applied := s.checker.CorrectText(req.Text, choose)
		if broken {
			return
		}
		if applied == nil {
			applied = []spell.Correction{}
		}
		result := sessionResult{
			Type:      "result",
			Original:  req.Text,
			Corrected: corrected,
			Applied:   applied,
		}
		if err := conn.WriteJSON(result); err != nil {
			return
		}
	}
}
