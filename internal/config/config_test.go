package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "API_KEY"} {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty by default", cfg.APIKey)
	}
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("HOST", "127.0.0.1")
	os.Setenv("PORT", "9090")
	os.Setenv("API_KEY", "secret-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want 127.0.0.1", cfg.Host)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.APIKey != "secret-key" {
		t.Errorf("APIKey = %q, want secret-key", cfg.APIKey)
	}
}

func TestAddrFormatsHostPort(t *testing.T) {
	cfg := Config{Host: "0.0.0.0", Port: 8080}
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Fatalf("Addr() = %q, want 0.0.0.0:8080", got)
	}
}
