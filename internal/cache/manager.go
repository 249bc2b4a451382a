// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// PayloadFile holds the serialized list.
	PayloadFile = "apps"
	// TokenFile holds the validity token.
	TokenFile = "apps.token"
)

const (
	// ReasonValid means both token components match.
	ReasonValid Reason = "valid"
	// ReasonNoPayload means no list has been stored yet.
	ReasonNoPayload Reason = "no cached list"
	// ReasonBadToken means the token file is missing or unreadable.
	ReasonBadToken Reason = "token missing or corrupt"
	// ReasonConfigChanged means the rule file's modification time differs.
	ReasonConfigChanged Reason = "rule file changed"
	// ReasonCountChanged means entry files were added or removed.
	ReasonCountChanged Reason = "entry files added or removed"
)

// ErrNoCache is returned by Load when no payload has been stored.
var ErrNoCache = errors.New("no cached list")

type (
	// Counter counts entry files across the search directories.
	Counter interface {
		Count() int
	}

	// Reason explains a validity decision.
	Reason string

	// Manager reads and writes the cache files in one directory.
	Manager struct {
		dir     string
		counter Counter
	}

	// Status is the outcome of a validity check.
	Status struct {
		Valid  bool
		Reason Reason
		// Stored is nil when no readable token exists.
		Stored *Token
		// Current is the token for the present state. Store it after
		// regenerating so files changed mid-run invalidate the next read.
		Current Token
	}
)

// NewManager creates a Manager for dir using counter for the entry count.
func NewManager(dir string, counter Counter) *Manager {
	return &Manager{dir: dir, counter: counter}
}

// Dir returns the cache directory.
func (m *Manager) Dir() string { return m.dir }

// PayloadPath returns the path of the serialized list.
func (m *Manager) PayloadPath() string { return filepath.Join(m.dir, PayloadFile) }

// TokenPath returns the path of the validity token.
func (m *Manager) TokenPath() string { return filepath.Join(m.dir, TokenFile) }

// CurrentToken computes the token for the rule file at configPath and the
// current search directories.
func (m *Manager) CurrentToken(configPath string) (Token, error) {
	mtime, err := ConfigMtime(configPath)
	if err != nil {
		return Token{}, err
	}
	return Token{ConfigMtime: mtime, Count: m.counter.Count()}, nil
}

// Check decides whether the stored list is valid for the rule file at
// configPath. A stale or absent cache is not an error.
func (m *Manager) Check(configPath string) (*Status, error) {
	current, err := m.CurrentToken(configPath)
	if err != nil {
		return nil, err
	}
	status := &Status{Current: current}

	if !regularFile(m.PayloadPath()) {
		status.Reason = ReasonNoPayload
		return status, nil
	}

	stored, err := m.StoredToken()
	if err != nil {
		status.Reason = ReasonBadToken
		return status, nil
	}
	status.Stored = &stored

	switch {
	case stored.Equal(current):
		status.Valid = true
		status.Reason = ReasonValid
	case stored.ConfigMtime != current.ConfigMtime:
		status.Reason = ReasonConfigChanged
	default:
		status.Reason = ReasonCountChanged
	}
	return status, nil
}

// Valid reports whether the stored list may be served for configPath. Any
// failure to compute the current token counts as invalid.
func (m *Manager) Valid(configPath string) bool {
	status, err := m.Check(configPath)
	return err == nil && status.Valid
}

// StoredToken reads the token file.
func (m *Manager) StoredToken() (Token, error) {
	data, err := os.ReadFile(m.TokenPath())
	if err != nil {
		return Token{}, fmt.Errorf("failed to read cache token: %w", err)
	}
	return ParseToken(string(data))
}

// Load returns the stored list exactly as written.
func (m *Manager) Load() (string, error) {
	data, err := os.ReadFile(m.PayloadPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoCache
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached list: %w", err)
	}
	return string(data), nil
}

// Store writes payload, then token. Each file is replaced atomically; two
// concurrent writers leave whichever finished last.
func (m *Manager) Store(token Token, payload string) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := writeAtomic(m.PayloadPath(), []byte(payload)); err != nil {
		return err
	}
	return writeAtomic(m.TokenPath(), []byte(token.String()))
}

// Clear removes both cache files. Missing files are not an error.
func (m *Manager) Clear() error {
	for _, path := range []string{m.TokenPath(), m.PayloadPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func regularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
