// Package mnemonic is a BIP-39 codec over 10 languages, generalized from
// internal/services/bip39service/service.go (teacher), which only ever
// called bip39.SetWordList(wordlists.English) once at construction. The
// library's wordlist is process-global state, so every call here that
// depends on the wordlist takes a mutex and sets the requested language's
// wordlist before calling into the library; the wordlist is left in place
// afterwards. That is how tyler-smith/go-bip39 is used across concurrent
// requests in more than one language.
package mnemonic

import (
	"crypto/rand"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/arcsign/derive/internal/apierr"
)

// Language is a supported BIP-39 wordlist.
type Language string

const (
	English            Language = "english"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	French             Language = "french"
	Italian            Language = "italian"
	Czech              Language = "czech"
	Portuguese         Language = "portuguese"
)

var wordlistFor = map[Language][]string{
	English:            wordlists.English,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	Spanish:            wordlists.Spanish,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Czech:              wordlists.Czech,
	Portuguese:         wordlists.Portuguese,
}

// entropyBitsForWordCount holds the five valid BIP-39 word counts and
// their corresponding entropy sizes (entropy_bits = word_count*11 - word_count/3).
var entropyBitsForWordCount = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// mu guards the wordlist-dependent calls into the bip39 package, since
// SetWordList mutates shared process state that NewMnemonic/IsMnemonicValid
// read. ToSeedUnchecked's NewSeed call does not read the wordlist and runs
// without it.
var mu sync.Mutex

func useLanguage(lang Language) (bool, error) {
	words, ok := wordlistFor[lang]
	if !ok {
		return false, apierr.New(apierr.CodeInvalidLanguage, "unsupported mnemonic language %q", lang)
	}
	bip39.SetWordList(words)
	return true, nil
}

// Generate produces a new mnemonic of wordCount words in lang.
func Generate(wordCount int, lang Language) (string, error) {
	bits, ok := entropyBitsForWordCount[wordCount]
	if !ok {
		return "", apierr.New(apierr.CodeInvalidWordCount, "invalid word count %d: must be one of 12,15,18,21,24", wordCount)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, err := useLanguage(lang); err != nil {
		return "", err
	}
	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return "", apierr.Wrap(apierr.CodeCryptoError, err)
	}
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", apierr.Wrap(apierr.CodeCryptoError, err)
	}
	return m, nil
}

// Validate checks a mnemonic's word count, wordlist membership, and
// checksum against lang.
func Validate(phrase string, lang Language) error {
	if phrase == "" {
		return apierr.New(apierr.CodeInvalidMnemonic, "mnemonic cannot be empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, err := useLanguage(lang); err != nil {
		return err
	}
	if !bip39.IsMnemonicValid(phrase) {
		return apierr.New(apierr.CodeInvalidMnemonic, "mnemonic failed checksum or wordlist validation")
	}
	return nil
}

// ToSeed converts a validated mnemonic and optional passphrase into a
// 64-byte BIP-39 seed via PBKDF2-HMAC-SHA512 with 2048 iterations and
// salt "mnemonic"+passphrase.
func ToSeed(phrase, passphrase string, lang Language) ([]byte, error) {
	if err := Validate(phrase, lang); err != nil {
		return nil, err
	}
	mu.Lock()
	defer mu.Unlock()
	return bip39.NewSeed(phrase, passphrase), nil
}

// ToSeedUnchecked converts a mnemonic straight to a seed without wordlist
// or checksum validation. PBKDF2 over a phrase's canonical byte form has
// no dependency on which language's wordlist produced it, so derivation
// endpoints that only ever receive a phrase (no language) use this
// instead of picking an arbitrary wordlist to validate against.
func ToSeedUnchecked(phrase, passphrase string) ([]byte, error) {
	if phrase == "" {
		return nil, apierr.New(apierr.CodeInvalidMnemonic, "mnemonic cannot be empty")
	}
	return bip39.NewSeed(phrase, passphrase), nil
}

// Languages lists every supported language, for API discovery endpoints.
func Languages() []Language {
	out := make([]Language, 0, len(wordlistFor))
	for l := range wordlistFor {
		out = append(out, l)
	}
	return out
}
