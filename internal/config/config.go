// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjklukowski/rofi-apps/internal/issue"
	"github.com/mjklukowski/rofi-apps/internal/rule"
	"github.com/mjklukowski/rofi-apps/pkg/cueutil"
)

const (
	// AppName is the application name used for XDG sub-directories.
	AppName = "rofi-apps"
	// ConfigFileName is the rule file name at every candidate location.
	ConfigFileName = "config.json"
)

var (
	//go:embed config_schema.cue
	configSchema []byte

	//go:embed default_config.json
	defaultConfig []byte

	requiredKeys = []string{"blacklist", "pinned", "customs"}
)

// ConfigDir returns the user configuration directory,
// $XDG_CONFIG_HOME/rofi-apps (defaulting to ~/.config/rofi-apps).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, AppName), nil
}

// CandidatePaths returns the rule file locations in precedence order:
// user override, system global, bundled default.
func CandidatePaths(configDirPath string) ([]string, error) {
	userDir, err := configDirWithOverride(configDirPath)
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(userDir, ConfigFileName),
		filepath.Join(systemConfigDir, AppName, ConfigFileName),
		filepath.Join(bundledConfigDir, AppName, ConfigFileName),
	}, nil
}

// configDirWithOverride resolves the user configuration directory, honoring
// explicit provider options before XDG defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// resolvePath returns the explicit path when set, else the first existing
// candidate. No candidate existing is a *NotFoundError.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		path := string(opts.ConfigFilePath)
		if !fileExists(path) {
			return "", &NotFoundError{Candidates: []string{path}}
		}
		return path, nil
	}

	candidates, err := CandidatePaths(string(opts.ConfigDirPath))
	if err != nil {
		return "", err
	}
	for _, path := range candidates {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", &NotFoundError{Candidates: candidates}
}

// loadWithOptions finds, reads and parses the rule file.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	path, err := resolvePath(opts)
	if err != nil {
		var nfErr *NotFoundError
		if !errors.As(err, &nfErr) {
			return nil, err
		}
		suggestions := make([]string, 0, len(nfErr.Candidates)+1)
		for _, candidate := range nfErr.Candidates {
			suggestions = append(suggestions, "Create "+candidate)
		}
		suggestions = append(suggestions, "Run 'rofi-apps config init' to write the default rules")
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithIssue(issue.ConfigNotFoundId).
			WithSuggestions(suggestions...).
			Wrap(err).
			BuildError()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.WrapWithContext(&ParseError{Path: path, Cause: err}, "read configuration", path)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		id := issue.ConfigParseErrorId
		if errors.Is(err, ErrMissingKey) {
			id = issue.ConfigMissingKeyId
		}
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithIssue(id).
			WithSuggestion("Check that the file is valid JSON once // comments are removed").
			WithSuggestion("The top-level keys blacklist, pinned and customs must all be present").
			WithSuggestion("Patterns use RE2 regular expression syntax").
			Wrap(err).
			BuildError()
	}

	return cfg, nil
}

// Parse decodes and compiles rule file content read from path.
func Parse(path string, data []byte) (*Config, error) {
	specs, err := cueutil.Decode[Specs](
		configSchema,
		lastKeyWins(StripComments(data)),
		"#Config",
		cueutil.WithFilename(path),
		cueutil.WithRequired(requiredKeys...),
	)
	if err != nil {
		var mfErr *cueutil.MissingFieldError
		if errors.As(err, &mfErr) {
			return nil, &MissingKeyError{Path: path, Key: mfErr.Field}
		}
		return nil, &ParseError{Path: path, Cause: err}
	}

	cfg := &Config{Path: path, Specs: *specs}
	sets := []struct {
		key   string
		specs []rule.Spec
		dst   *rule.Set
	}{
		{"blacklist", specs.Blacklist, &cfg.Blacklist},
		{"pinned", specs.Pinned, &cfg.Pinned},
		{"customs", specs.Customs, &cfg.Customs},
	}
	for _, s := range sets {
		set, err := rule.CompileSet(s.specs)
		if err != nil {
			return nil, &ParseError{Path: path, Cause: fmt.Errorf("%s: %w", s.key, err)}
		}
		*s.dst = set
	}

	return cfg, nil
}

// StripComments removes // line comments. Each line is scanned on its own and
// a // inside a double-quoted string is kept, so patterns such as "://" survive.
func StripComments(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	return []byte(strings.Join(lines, "\n"))
}

func stripLineComment(line string) string {
	inString := false
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case c == '/' && !inString && i+1 < len(line) && line[i+1] == '/':
			return line[:i]
		}
	}
	return line
}

// lastKeyWins re-encodes JSON so a key repeated within one object keeps its
// last value, as JSON decoders do; CUE would report the repeat as a conflict.
// Input that is not plain JSON is returned unchanged for CUE to diagnose.
func lastKeyWins(data []byte) []byte {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return data
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return data
	}
	return buf.Bytes()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DefaultRules returns the rule file shipped with rofi-apps.
func DefaultRules() []byte {
	return append([]byte(nil), defaultConfig...)
}

// CreateDefaultConfig writes the default rule file to the user override path
// unless a file already exists there. It returns the path and whether it wrote.
func CreateDefaultConfig(configDirPath string) (string, bool, error) {
	cfgDir, err := configDirWithOverride(configDirPath)
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := os.WriteFile(cfgPath, defaultConfig, 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, true, nil
}
