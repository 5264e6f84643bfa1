package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/greplit/greplit/internal/config"
	"github.com/greplit/greplit/internal/search"
	"github.com/spf13/pflag"
)

// FileAccessError reports a target file that could not be read as text.
// It wraps the underlying cause.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// RunParams contains dependencies for the run function
type RunParams struct {
	LoadSettings  func(*pflag.FlagSet) (*config.Settings, error)
	ValidSettings func(*config.Settings) error
	SetupLogging  func(*config.Settings)
	LookupEnv     config.LookupEnv
	ReadFile      func(string) ([]byte, error)
	Stdout        io.Writer
}

// DefaultRunParams returns production dependencies
func DefaultRunParams() RunParams {
	return RunParams{
		LoadSettings:  config.LoadSettingsWithFlags,
		ValidSettings: config.ValidateSettings,
		SetupLogging:  config.SetupLogging,
		LookupEnv:     os.LookupEnv,
		ReadFile:      os.ReadFile,
		Stdout:        os.Stdout,
	}
}

// RunWithDeps executes one search with the provided dependencies. args is
// the full process argument list including the program name; flags carries
// optional overrides registered by RegisterFlags. Either the result lines
// are printed in full, or an error is returned and nothing is printed.
func RunWithDeps(ctx context.Context, params RunParams, flags *pflag.FlagSet, args []string) error {
	// Load settings
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Validate settings before acting on them
	if err := params.ValidSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Configure logging - always on stderr so match output stays clean
	params.SetupLogging(settings)
	config.Log(settings)

	cfg, err := config.FromArgs(args, params.LookupEnv)
	if err != nil {
		return err
	}

	contents, err := readDocument(params.ReadFile, cfg.Path)
	if err != nil {
		return err
	}

	caseSensitive := cfg.CaseSensitive && !settings.IgnoreCase

	var results []string
	if caseSensitive {
		results = search.Search(cfg.Query, contents)
	} else {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	}

	slog.DebugContext(ctx, "Search finished",
		"path", cfg.Path, "case_sensitive", caseSensitive, "matches", len(results))

	if settings.MaxResults > 0 && len(results) > settings.MaxResults {
		results = results[:settings.MaxResults]
	}

	for _, line := range results {
		if _, err := fmt.Fprintln(params.Stdout, line); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	return nil
}

// readDocument loads the whole target file into memory as one UTF-8 string.
// Any open, read or decoding failure becomes a FileAccessError.
func readDocument(readFile func(string) ([]byte, error), path string) (string, error) {
	raw, err := readFile(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &FileAccessError{Path: path, Err: errors.New("content is not valid UTF-8 text")}
	}
	return string(raw), nil
}
