// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"testing"
)

func TestJSONPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		selectors []string
		want      string
	}{
		{nil, ""},
		{[]string{"customs"}, "customs"},
		{[]string{"pinned", "0", "name"}, "pinned[0].name"},
		{[]string{"0", "exec"}, "0.exec"},
		{[]string{"a", "1", "b", "22"}, "a[1].b[22]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := jsonPath(tt.selectors); got != tt.want {
				t.Errorf("jsonPath(%q) = %q, want %q", tt.selectors, got, tt.want)
			}
		})
	}
}

func TestNewDocumentError(t *testing.T) {
	t.Parallel()

	if err := newDocumentError(nil, "rules.json"); err != nil {
		t.Fatalf("newDocumentError(nil) = %v, want nil", err)
	}

	cause := errors.New("disk on fire")
	err := newDocumentError(cause, "rules.json")
	if !errors.Is(err, cause) {
		t.Errorf("error %v does not wrap its cause", err)
	}
	var docErr *DocumentError
	if !errors.As(err, &docErr) || docErr.File != "rules.json" {
		t.Fatalf("error = %#v, want *DocumentError for rules.json", err)
	}
}

func TestDocumentErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *DocumentError
		want string
	}{
		{
			name: "single field",
			err:  &DocumentError{File: "rules.json", Fields: []FieldError{{Path: "pinned[0].name", Message: "expected string"}}},
			want: "rules.json: pinned[0].name: expected string",
		},
		{
			name: "no path",
			err:  &DocumentError{File: "rules.json", Fields: []FieldError{{Message: "unexpected EOF"}}},
			want: "rules.json: unexpected EOF",
		},
		{
			name: "several fields",
			err: &DocumentError{File: "rules.json", Fields: []FieldError{
				{Path: "blacklist", Message: "not a list"},
				{Path: "customs[1].newName", Message: "expected string"},
			}},
			want: "rules.json: invalid document:\n  blacklist: not a list\n  customs[1].newName: expected string",
		},
		{
			name: "cause only",
			err:  &DocumentError{File: "rules.json", cause: errors.New("boom")},
			want: "rules.json: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
