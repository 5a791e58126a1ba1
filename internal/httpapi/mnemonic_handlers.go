package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/arcsign/derive/internal/apierr"
	"github.com/arcsign/derive/internal/mnemonic"
)

type mnemonicGenerateRequest struct {
	Language  mnemonic.Language `json:"language"`
	WordCount int               `json:"wordCount"`
}

type mnemonicGenerateResponse struct {
	Mnemonic    string            `json:"mnemonic"`
	Language    mnemonic.Language `json:"language"`
	WordCount   int               `json:"wordCount"`
	GeneratedAt string            `json:"generatedAt"`
}

func (s *Server) handleMnemonicGenerate(w http.ResponseWriter, r *http.Request) {
	var req mnemonicGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierr.New(apierr.CodeBadRequest, "invalid request body: %v", err))
		return
	}
	phrase, err := mnemonic.Generate(req.WordCount, req.Language)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mnemonicGenerateResponse{
		Mnemonic:    phrase,
		Language:    req.Language,
		WordCount:   req.WordCount,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

type mnemonicValidateRequest struct {
	Mnemonic string            `json:"mnemonic"`
	Language mnemonic.Language `json:"language"`
}

type mnemonicValidateResponse struct {
	Valid     bool              `json:"valid"`
	WordCount int               `json:"wordCount,omitempty"`
	Message   string            `json:"message,omitempty"`
}

func (s *Server) handleMnemonicValidate(w http.ResponseWriter, r *http.Request) {
	var req mnemonicValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierr.New(apierr.CodeBadRequest, "invalid request body: %v", err))
		return
	}
	if err := mnemonic.Validate(req.Mnemonic, req.Language); err != nil {
		writeJSON(w, http.StatusOK, mnemonicValidateResponse{Valid: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, mnemonicValidateResponse{
		Valid:     true,
		WordCount: len(strings.Fields(req.Mnemonic)),
	})
}
