// Package httpapi exposes the seven endpoints SPEC_FULL.md §6 documents
// over net/http. No router library appears anywhere in the retrieved
// pack (the teacher's only net/http usage was an outbound JSON-RPC
// client in src/chainadapter/rpc/http.go, never an inbound server), so
// this is built on http.ServeMux directly rather than importing a router
// dependency with no grounding anywhere in the corpus.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/arcsign/derive/internal/apierr"
	"github.com/arcsign/derive/internal/chainregistry"
)

const version = "1.0.0"

// Server holds the dependencies every handler needs.
type Server struct {
	log    *zap.Logger
	apiKey string
	reg    *chainregistry.Registry
	mux    *http.ServeMux
}

// New builds a Server with every route registered.
func New(log *zap.Logger, apiKey string, reg *chainregistry.Registry) *Server {
	s := &Server{log: log, apiKey: apiKey, reg: reg, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /languages", s.withAuth(s.handleLanguages))
	s.mux.HandleFunc("POST /mnemonic/generate", s.withAuth(s.handleMnemonicGenerate))
	s.mux.HandleFunc("POST /mnemonic/validate", s.withAuth(s.handleMnemonicValidate))
	s.mux.HandleFunc("POST /wallet/generate", s.withAuth(s.handleWalletGenerate))
	s.mux.HandleFunc("POST /wallet/batch", s.withAuth(s.handleWalletBatch))
	s.mux.HandleFunc("GET /wallet/types", s.withAuth(s.handleWalletTypes))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// withAuth enforces the x-api-key header against the configured key.
// Every endpoint except /health requires it, per SPEC_FULL.md §6.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" || r.Header.Get("x-api-key") != s.apiKey {
			writeError(w, apierr.New(apierr.CodeAuthenticationError, "missing or invalid API key"))
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"version":   version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the {error:{code,message,type}} shape SPEC_FULL.md §6
// names; "code" duplicates "type" for clients that key off either field.
func writeError(w http.ResponseWriter, err error) {
	apiErr := apierr.As(err)
	writeJSON(w, apierr.StatusCode(apiErr.Code), map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
			"type":    apiErr.Code,
		},
	})
}
