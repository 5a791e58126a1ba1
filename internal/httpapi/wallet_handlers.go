package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/arcsign/derive/internal/apierr"
	"github.com/arcsign/derive/internal/chainregistry"
	"github.com/arcsign/derive/internal/wallet"
	"github.com/arcsign/derive/internal/walletservice"
)

type walletGenerateRequest struct {
	Mnemonic   string `json:"mnemonic"`
	Passphrase string `json:"passphrase"`
	Symbol     string `json:"symbol"`
	Index      uint32 `json:"index"`
}

func (s *Server) handleWalletGenerate(w http.ResponseWriter, r *http.Request) {
	var req walletGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierr.New(apierr.CodeBadRequest, "invalid request body: %v", err))
		return
	}
	chainTypes := s.reg.ChainTypesBySymbol(req.Symbol)
	if len(chainTypes) == 0 {
		writeError(w, apierr.New(apierr.CodeBadRequest, "unknown symbol %q", req.Symbol))
		return
	}
	genReq := walletservice.GenerateRequest{Mnemonic: req.Mnemonic, Passphrase: req.Passphrase}

	if len(chainTypes) == 1 {
		addr, err := walletservice.GenerateOne(genReq, chainTypes[0], req.Index)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, addr)
		return
	}

	addrs := make([]wallet.Address, 0, len(chainTypes))
	for _, ct := range chainTypes {
		addr, err := walletservice.GenerateOne(genReq, ct, req.Index)
		if err != nil {
			writeError(w, err)
			return
		}
		addrs = append(addrs, addr)
	}
	writeJSON(w, http.StatusOK, addrs)
}

type walletBatchRequest struct {
	Mnemonic   string   `json:"mnemonic"`
	Passphrase string   `json:"passphrase"`
	Symbols    []string `json:"symbols"`
	StartIndex uint32   `json:"startIndex"`
	Count      int      `json:"count"`
}

func (s *Server) handleWalletBatch(w http.ResponseWriter, r *http.Request) {
	var req walletBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierr.New(apierr.CodeBadRequest, "invalid request body: %v", err))
		return
	}
	var chainTypes []chainregistry.ChainType
	for _, sym := range req.Symbols {
		cts := s.reg.ChainTypesBySymbol(sym)
		if len(cts) == 0 {
			writeError(w, apierr.New(apierr.CodeBadRequest, "unknown symbol %q", sym))
			return
		}
		chainTypes = append(chainTypes, cts...)
	}

	addrs, err := walletservice.GenerateBatch(r.Context(), walletservice.BatchRequest{
		GenerateRequest: walletservice.GenerateRequest{Mnemonic: req.Mnemonic, Passphrase: req.Passphrase},
		ChainTypes:      chainTypes,
		StartIndex:      req.StartIndex,
		Count:           req.Count,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"addresses": addrs})
}

func (s *Server) handleWalletTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, walletservice.ChainInfos())
}
