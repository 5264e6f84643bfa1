package config

import (
	"errors"
	"strings"
	"testing"
)

func emptyEnv(string) (string, bool) {
	return "", false
}

func envWith(vars map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

func TestFromArgs(t *testing.T) {
	cfg, err := FromArgs([]string{"greplit", "needle", "haystack.txt"}, emptyEnv)
	if err != nil {
		t.Fatalf("FromArgs failed: %v", err)
	}

	if cfg.Query != "needle" {
		t.Errorf("Expected query 'needle', got '%s'", cfg.Query)
	}
	if cfg.Path != "haystack.txt" {
		t.Errorf("Expected path 'haystack.txt', got '%s'", cfg.Path)
	}
	if !cfg.CaseSensitive {
		t.Error("Expected case-sensitive search by default")
	}
}

func TestFromArgs_MissingQuery(t *testing.T) {
	_, err := FromArgs([]string{"greplit"}, emptyEnv)
	if err == nil {
		t.Fatal("Expected error for missing query")
	}

	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingArgumentError, got %T: %v", err, err)
	}
	if missing.Name != "query" {
		t.Errorf("Expected missing argument 'query', got '%s'", missing.Name)
	}
}

func TestFromArgs_MissingFilePath(t *testing.T) {
	_, err := FromArgs([]string{"greplit", "needle"}, emptyEnv)
	if err == nil {
		t.Fatal("Expected error for missing file path")
	}

	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingArgumentError, got %T: %v", err, err)
	}
	if missing.Name != "file path" {
		t.Errorf("Expected missing argument 'file path', got '%s'", missing.Name)
	}
	if !strings.Contains(err.Error(), "file path") {
		t.Errorf("Expected error message to name the file path, got: %v", err)
	}
}

func TestFromArgs_EmptyArgs(t *testing.T) {
	_, err := FromArgs(nil, emptyEnv)
	if err == nil {
		t.Fatal("Expected error for empty argument list")
	}

	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingArgumentError, got %T: %v", err, err)
	}
}

func TestFromArgs_CaseInsensitiveEnvPresent(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty value", ""},
		{"arbitrary value", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := envWith(map[string]string{CaseInsensitiveVar: tt.value})

			cfg, err := FromArgs([]string{"greplit", "needle", "haystack.txt"}, lookup)
			if err != nil {
				t.Fatalf("FromArgs failed: %v", err)
			}
			if cfg.CaseSensitive {
				t.Error("Expected case-insensitive search when CASE_INSENSITIVE is set")
			}
		})
	}
}

func TestFromArgs_NoValidationBeyondPresence(t *testing.T) {
	// Empty query and nonexistent files are accepted here; they surface
	// later, at search or read time.
	cfg, err := FromArgs([]string{"greplit", "", "no/such/file.txt"}, emptyEnv)
	if err != nil {
		t.Fatalf("FromArgs failed: %v", err)
	}
	if cfg.Query != "" {
		t.Errorf("Expected empty query to pass through, got '%s'", cfg.Query)
	}
}
