// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mjklukowski/rofi-apps/internal/discovery"
)

func TestDiagnosticRenderer(t *testing.T) {
	t.Parallel()

	skipped := func(path string) discovery.Diagnostic {
		return discovery.NewDiagnosticWithCause(discovery.SeverityWarning, discovery.CodeEntryParseSkipped,
			"skipped entry file", path, errors.New("missing Name key"))
	}
	icon := discovery.NewDiagnosticWithCause(discovery.SeverityWarning, discovery.CodeIconUnresolved,
		"dropped icon", "/apps/c.desktop", errors.New("unknown icon kind"))

	render := func(diags []discovery.Diagnostic, verbose bool) string {
		var buf bytes.Buffer
		defaultDiagnosticRenderer{}.Render(context.Background(), diags, &buf, verbose)
		return buf.String()
	}

	if out := render([]discovery.Diagnostic{skipped("/apps/a.desktop")}, false); out != "" {
		t.Errorf("quiet render wrote %q, want nothing", out)
	}
	if out := render([]discovery.Diagnostic{icon}, true); out != "" {
		t.Errorf("icon diagnostic has no card, but render wrote %q", out)
	}

	one := render([]discovery.Diagnostic{skipped("/apps/a.desktop")}, true)
	if one == "" {
		t.Fatal("verbose render of a skipped entry wrote no help card")
	}
	two := render([]discovery.Diagnostic{skipped("/apps/a.desktop"), icon, skipped("/apps/b.desktop")}, true)
	if two != one {
		t.Errorf("card repeated for the same issue:\n%s", two)
	}
}
