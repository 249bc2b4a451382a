// SPDX-License-Identifier: MPL-2.0

package rule

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/mjklukowski/rofi-apps/internal/entry"
)

// ErrInvalidPattern is the sentinel wrapped by PatternError.
var ErrInvalidPattern = errors.New("invalid rule pattern")

type (
	// Spec is the declarative form of a rule as read from the rule file. A nil
	// field means the key was absent.
	Spec struct {
		Name    *string `json:"name,omitempty"`
		Exec    *string `json:"exec,omitempty"`
		NewName *string `json:"newName,omitempty"`
	}

	// Rule is a compiled Spec.
	Rule struct {
		name    *regexp.Regexp
		exec    *regexp.Regexp
		newName *string
		empty   bool
	}

	// Set is an ordered list of rules.
	Set []*Rule

	// PatternError reports a name or exec pattern that does not compile.
	PatternError struct {
		Field   string
		Pattern string
		Cause   error
	}
)

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("%s pattern %q: %v", e.Field, e.Pattern, e.Cause)
}

// Unwrap returns ErrInvalidPattern.
func (e *PatternError) Unwrap() error { return ErrInvalidPattern }

// Compile validates the patterns of s.
func Compile(s Spec) (*Rule, error) {
	r := &Rule{
		newName: s.NewName,
		empty:   s.Name == nil && s.Exec == nil && s.NewName == nil,
	}
	var err error
	if r.name, err = compilePattern("name", s.Name); err != nil {
		return nil, err
	}
	if r.exec, err = compilePattern("exec", s.Exec); err != nil {
		return nil, err
	}
	return r, nil
}

// MustCompile is like Compile but panics on an invalid pattern.
func MustCompile(s Spec) *Rule {
	r, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileSet compiles specs in order. The error names the failing index.
func CompileSet(specs []Spec) (Set, error) {
	set := make(Set, 0, len(specs))
	for i, s := range specs {
		r, err := Compile(s)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		set = append(set, r)
	}
	return set, nil
}

func compilePattern(field string, pattern *string) (*regexp.Regexp, error) {
	if pattern == nil {
		return nil, nil
	}
	re, err := regexp.Compile(*pattern)
	if err != nil {
		return nil, &PatternError{Field: field, Pattern: *pattern, Cause: err}
	}
	return re, nil
}

// IsEmpty reports whether the rule declares none of name, exec or newName.
func (r *Rule) IsEmpty() bool { return r.empty }

// NewName returns the replacement display name, if the rule carries one.
func (r *Rule) NewName() (string, bool) {
	if r.newName == nil {
		return "", false
	}
	return *r.newName, true
}

// Matches reports whether e satisfies every pattern the rule declares. Patterns
// match anywhere in the field. The empty rule matches nothing.
func (r *Rule) Matches(e *entry.Entry) bool {
	if r.empty {
		return false
	}
	if r.name != nil && !r.name.MatchString(e.Name) {
		return false
	}
	if r.exec != nil && !r.exec.MatchString(e.Exec) {
		return false
	}
	return true
}

// Any reports whether some rule in s matches e.
func (s Set) Any(e *entry.Entry) bool {
	return s.First(e) >= 0
}

// First returns the index of the first rule matching e, or -1.
func (s Set) First(e *entry.Entry) int {
	for i, r := range s {
		if r.Matches(e) {
			return i
		}
	}
	return -1
}
