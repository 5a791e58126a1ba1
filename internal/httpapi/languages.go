package httpapi

import (
	"net/http"

	"github.com/arcsign/derive/internal/mnemonic"
)

type languageInfo struct {
	Code       mnemonic.Language `json:"code"`
	Name       string            `json:"name"`
	NativeName string            `json:"nativeName"`
}

var languageCatalog = []languageInfo{
	{mnemonic.English, "English", "English"},
	{mnemonic.Japanese, "Japanese", "日本語"},
	{mnemonic.Korean, "Korean", "한국어"},
	{mnemonic.Spanish, "Spanish", "Español"},
	{mnemonic.ChineseSimplified, "Chinese (Simplified)", "简体中文"},
	{mnemonic.ChineseTraditional, "Chinese (Traditional)", "繁體中文"},
	{mnemonic.French, "French", "Français"},
	{mnemonic.Italian, "Italian", "Italiano"},
	{mnemonic.Czech, "Czech", "Čeština"},
	{mnemonic.Portuguese, "Portuguese", "Português"},
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languageCatalog)
}
