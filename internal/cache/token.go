// SPDX-License-Identifier: MPL-2.0

package cache

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidToken is the sentinel wrapped by token parse failures.
var ErrInvalidToken = errors.New("invalid cache token")

// Token is the validity token. Mtime is kept in its serialized form so
// comparison is exact equality on what was written.
type Token struct {
	// ConfigMtime is the rule file's modification time in seconds since the
	// epoch, formatted as a decimal number.
	ConfigMtime string
	// Count is the number of entry files across all search directories.
	Count int
}

// FormatMtime renders t as fractional seconds since the epoch.
func FormatMtime(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixNano())/1e9, 'f', -1, 64)
}

// ConfigMtime returns the serialized modification time of the file at path.
func ConfigMtime(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat rule file: %w", err)
	}
	return FormatMtime(info.ModTime()), nil
}

// String returns the two-line file form of t.
func (t Token) String() string {
	return t.ConfigMtime + "\n" + strconv.Itoa(t.Count) + "\n"
}

// Equal reports whether both token components match exactly.
func (t Token) Equal(other Token) bool {
	return t.ConfigMtime == other.ConfigMtime && t.Count == other.Count
}

// ParseToken reads the two-line file form.
func ParseToken(data string) (Token, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) != 2 {
		return Token{}, fmt.Errorf("%w: want 2 lines, got %d", ErrInvalidToken, len(lines))
	}

	mtime := strings.TrimSpace(lines[0])
	if _, err := strconv.ParseFloat(mtime, 64); err != nil {
		return Token{}, fmt.Errorf("%w: modification time %q", ErrInvalidToken, mtime)
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil || count < 0 {
		return Token{}, fmt.Errorf("%w: entry count %q", ErrInvalidToken, lines[1])
	}

	return Token{ConfigMtime: mtime, Count: count}, nil
}
