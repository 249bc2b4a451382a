// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Item: {
	name?: string
	...
}

#Doc: {
	items: [...#Item]
	...
}
`

type (
	testItem struct {
		Name *string `json:"name,omitempty"`
	}

	testDoc struct {
		Items []testItem `json:"items"`
	}
)

func TestDecode(t *testing.T) {
	t.Parallel()

	data := []byte(`{"items": [{"name": "foo"}, {"other": 1}, {}]}`)
	doc, err := Decode[testDoc]([]byte(testSchema), data, "#Doc",
		WithFilename("doc.json"), WithRequired("items"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	items := doc.Items
	if len(items) != 3 {
		t.Fatalf("decoded %d items, want 3", len(items))
	}
	if items[0].Name == nil || *items[0].Name != "foo" {
		t.Errorf("items[0].Name = %v, want foo", items[0].Name)
	}
	if items[1].Name != nil || items[2].Name != nil {
		t.Error("items without a name key should decode with a nil Name")
	}
}

func TestDecode_MissingRequired(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc]([]byte(testSchema), []byte(`{"other": []}`), "#Doc",
		WithFilename("doc.json"), WithRequired("items"))
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("error = %v, want ErrMissingField", err)
	}

	var mfErr *MissingFieldError
	if !errors.As(err, &mfErr) || mfErr.Field != "items" {
		t.Errorf("error should be *MissingFieldError for items, got %#v", err)
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "syntax error", data: `{"items": [`},
		{name: "wrong type", data: `{"items": [{"name": 3}]}`},
		{name: "items not a list", data: `{"items": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode[testDoc]([]byte(testSchema), []byte(tt.data), "#Doc", WithFilename("doc.json"))
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrMissingField) {
				t.Errorf("error should not be ErrMissingField: %v", err)
			}
			var docErr *DocumentError
			if !errors.As(err, &docErr) || docErr.File != "doc.json" {
				t.Errorf("error = %v, want *DocumentError for doc.json", err)
			}
			if !strings.Contains(err.Error(), "doc.json") {
				t.Errorf("error should mention the file name, got: %v", err)
			}
		})
	}
}

func TestDecode_FileTooLarge(t *testing.T) {
	t.Parallel()

	_, err := Decode[testDoc]([]byte(testSchema), []byte(`{"items": []}`), "#Doc", WithSizeLimit(4))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("error = %v, want size limit error", err)
	}
}
